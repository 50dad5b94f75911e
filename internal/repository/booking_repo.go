package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quwastudio/internal/domain"
)

var ErrDuplicateKey = errors.New("duplicate key")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	SubmissionKey   string     `gorm:"column:submission_key;size:64;not null;uniqueIndex:idx_bookings_submission_key"`
	FullName        string     `gorm:"column:full_name;not null"`
	CompanyName     *string    `gorm:"column:company_name"`
	Email           string     `gorm:"column:email;not null;index"`
	WhatsApp        string     `gorm:"column:whatsapp;not null"`
	Industry        string     `gorm:"column:industry;not null"`
	Message         *string    `gorm:"column:message;type:text"`
	SourceIP        *string    `gorm:"column:source_ip"`
	UserAgent       *string    `gorm:"column:user_agent"`
	NotifiedAt      *time.Time `gorm:"column:notified_at;index"`
	NotifyAttempts  int        `gorm:"column:notify_attempts;not null;default:0"`
	LastNotifyError *string    `gorm:"column:last_notify_error;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// Migrate creates or updates the bookings table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&bookingModel{})
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		SubmissionKey:   m.SubmissionKey,
		FullName:        m.FullName,
		CompanyName:     deref(m.CompanyName),
		Email:           m.Email,
		WhatsApp:        m.WhatsApp,
		Industry:        m.Industry,
		Message:         deref(m.Message),
		SourceIP:        deref(m.SourceIP),
		UserAgent:       deref(m.UserAgent),
		NotifiedAt:      m.NotifiedAt,
		NotifyAttempts:  m.NotifyAttempts,
		LastNotifyError: deref(m.LastNotifyError),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		SubmissionKey:   b.SubmissionKey,
		FullName:        b.FullName,
		CompanyName:     optional(b.CompanyName),
		Email:           b.Email,
		WhatsApp:        b.WhatsApp,
		Industry:        b.Industry,
		Message:         optional(b.Message),
		SourceIP:        optional(b.SourceIP),
		UserAgent:       optional(b.UserAgent),
		NotifiedAt:      b.NotifiedAt,
		NotifyAttempts:  b.NotifyAttempts,
		LastNotifyError: optional(b.LastNotifyError),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Create inserts b and fills in the store-assigned ID and timestamps.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetBySubmissionKey(ctx context.Context, key string) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).First(&m, "submission_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// List returns bookings newest first. pendingOnly keeps rows whose
// notification has not gone out yet.
func (r *BookingRepository) List(ctx context.Context, pendingOnly bool, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if pendingOnly {
		q = q.Where("notified_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []bookingModel
	if err := q.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// ListPendingNotification returns the oldest unnotified rows that still
// have attempts left.
func (r *BookingRepository) ListPendingNotification(ctx context.Context, maxAttempts, limit int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("notified_at IS NULL AND notify_attempts < ?", maxAttempts).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) MarkNotified(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notified_at":       at,
			"notify_attempts":   gorm.Expr("notify_attempts + 1"),
			"last_notify_error": nil,
			"updated_at":        at,
		}).Error
}

func (r *BookingRepository) RecordNotifyFailure(ctx context.Context, id int64, reason string) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notify_attempts":   gorm.Expr("notify_attempts + 1"),
			"last_notify_error": reason,
			"updated_at":        time.Now(),
		}).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc.org/sqlite errors are not translated by the gorm dialector.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
