package booking

import (
	"context"
	"time"

	"quwastudio/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBySubmissionKey(ctx context.Context, key string) (*domain.Booking, error)
	List(ctx context.Context, pendingOnly bool, limit, offset int) ([]domain.Booking, int64, error)
	ListPendingNotification(ctx context.Context, maxAttempts, limit int) ([]domain.Booking, error)
	MarkNotified(ctx context.Context, id int64, at time.Time) error
	RecordNotifyFailure(ctx context.Context, id int64, reason string) error
}
