package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"quwastudio/internal/domain"
	"quwastudio/internal/notification"
	"quwastudio/internal/pkg/validator"
	"quwastudio/internal/repository"
)

// SubmitResult reports what a submission produced.
type SubmitResult struct {
	Booking   *domain.Booking
	Notified  bool
	Duplicate bool
}

// RetryReport summarizes a pass over unnotified bookings.
type RetryReport struct {
	Attempted int
	Notified  int
	Failed    int
}

type Service struct {
	bookings BookingRepository
	notifs   notification.Notifier
	now      func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(bookings BookingRepository, notifs notification.Notifier) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// Submit validates the form, creates one booking and then notifies the team.
// The booking is durable once Create returns; a failed notification is
// recorded on the row and reported through SubmitResult.Notified.
func (s *Service) Submit(ctx context.Context, req SubmitBookingRequest, meta SubmitMeta) (*SubmitResult, error) {
	req = req.normalized()

	industry, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	key := req.SubmissionKey
	if key == "" {
		key = uuid.NewString()
	}

	if !s.acquire(key) {
		return nil, ErrSubmissionInFlight
	}
	defer s.release(key)

	existing, err := s.bookings.GetBySubmissionKey(ctx, key)
	if err != nil {
		log.Printf("booking_lookup_failed submission_key=%s error=%q", key, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if existing != nil {
		return &SubmitResult{Booking: existing, Notified: existing.IsNotified(), Duplicate: true}, nil
	}

	b := &domain.Booking{
		SubmissionKey: key,
		FullName:      req.FullName,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		WhatsApp:      req.WhatsApp,
		Industry:      industry,
		Message:       req.Message,
		SourceIP:      meta.IP,
		UserAgent:     meta.UserAgent,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Another instance stored the same key between lookup and insert.
			if stored, gerr := s.bookings.GetBySubmissionKey(ctx, key); gerr == nil && stored != nil {
				return &SubmitResult{Booking: stored, Notified: stored.IsNotified(), Duplicate: true}, nil
			}
		}
		log.Printf("booking_create_failed submission_key=%s error=%q", key, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Printf("booking_created id=%d industry=%q", b.ID, b.Industry)

	notified := s.notify(ctx, b)
	return &SubmitResult{Booking: b, Notified: notified}, nil
}

// Get returns one booking.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// List returns a page of bookings, newest first.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Booking, int64, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return s.bookings.List(ctx, q.Pending, q.Limit, q.Offset)
}

// ResendNotification notifies the team again about one booking.
func (s *Service) ResendNotification(ctx context.Context, id int64) (*domain.Booking, bool, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return b, s.notify(ctx, b), nil
}

// RetryPendingNotifications re-sends notifications that never went out.
func (s *Service) RetryPendingNotifications(ctx context.Context, maxAttempts, limit int) (RetryReport, error) {
	var report RetryReport

	pending, err := s.bookings.ListPendingNotification(ctx, maxAttempts, limit)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	for i := range pending {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Attempted++
		if s.notify(ctx, &pending[i]) {
			report.Notified++
		} else {
			report.Failed++
		}
	}
	return report, nil
}

func (s *Service) notify(ctx context.Context, b *domain.Booking) bool {
	if s.notifs == nil {
		return false
	}

	err := s.notifs.NotifyBookingCreated(ctx, notification.BookingCreated{
		BookingID:   b.ID,
		FullName:    b.FullName,
		CompanyName: b.CompanyName,
		Email:       b.Email,
		WhatsApp:    b.WhatsApp,
		Industry:    b.Industry,
		Message:     b.Message,
		CreatedAt:   b.CreatedAt,
	})

	b.NotifyAttempts++
	if err != nil {
		log.Printf("booking_notify_failed id=%d attempts=%d error=%q", b.ID, b.NotifyAttempts, err.Error())
		b.LastNotifyError = err.Error()
		if rerr := s.bookings.RecordNotifyFailure(ctx, b.ID, err.Error()); rerr != nil {
			log.Printf("booking_notify_bookkeeping_failed id=%d error=%q", b.ID, rerr.Error())
		}
		return false
	}

	now := s.now()
	b.NotifiedAt = &now
	b.LastNotifyError = ""
	if merr := s.bookings.MarkNotified(ctx, b.ID, now); merr != nil {
		log.Printf("booking_notify_bookkeeping_failed id=%d error=%q", b.ID, merr.Error())
	}
	return true
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
}

// validateRequest checks the form and returns the industry value to store.
func validateRequest(req SubmitBookingRequest) (string, error) {
	fields := validator.Validate(&req)
	if fields == nil {
		fields = map[string]string{}
	}

	var industry string
	if _, failed := fields["industry"]; !failed {
		ind, err := domain.ParseIndustry(req.Industry)
		if err != nil {
			fields["industry"] = "oneof"
		} else if industry, err = domain.ResolveIndustry(ind, req.OtherIndustry); err != nil {
			fields["other_industry"] = "required_if"
		}
	}

	if len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}
	return industry, nil
}
