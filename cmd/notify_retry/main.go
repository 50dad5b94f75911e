package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"quwastudio/internal/config"
	"quwastudio/internal/database"
	"quwastudio/internal/modules/booking"
	"quwastudio/internal/notification"
	"quwastudio/internal/repository"
)

func main() {
	limit := flag.Int("limit", 100, "maximum bookings to retry")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer database.Close(db)

	notifier, err := notification.FromConfig(cfg)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := booking.NewService(repository.NewBookingRepository(db), notifier)
	if err := run(ctx, svc, cfg.NotifyMaxAttempts, *limit); err != nil {
		stop()
		database.Close(db)
		log.Fatalf("notify retry failed: %v", err)
	}
}

type retrier interface {
	RetryPendingNotifications(ctx context.Context, maxAttempts, limit int) (booking.RetryReport, error)
}

func run(ctx context.Context, r retrier, maxAttempts, limit int) error {
	report, err := r.RetryPendingNotifications(ctx, maxAttempts, limit)
	if err != nil {
		return err
	}

	log.Printf("notify retry completed: attempted=%d notified=%d failed=%d max_attempts=%d",
		report.Attempted, report.Notified, report.Failed, maxAttempts)
	return nil
}
