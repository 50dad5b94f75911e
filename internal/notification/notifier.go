package notification

import (
	"context"
	"log"
	"time"
)

// BookingCreated is what the team is told about a new booking request.
type BookingCreated struct {
	BookingID   int64
	FullName    string
	CompanyName string
	Email       string
	WhatsApp    string
	Industry    string
	Message     string
	CreatedAt   time.Time
}

// Notifier delivers the "new booking" side effect.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n BookingCreated) error
}

// LogNotifier only writes the notification to the log. Used in development.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) NotifyBookingCreated(_ context.Context, n BookingCreated) error {
	log.Printf("booking_notification provider=log booking_id=%d name=%q company=%q email=%q industry=%q",
		n.BookingID, n.FullName, n.CompanyName, n.Email, n.Industry)
	return nil
}
