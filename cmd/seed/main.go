package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"quwastudio/internal/config"
	"quwastudio/internal/database"
	"quwastudio/internal/domain"
	"quwastudio/internal/repository"
)

var sampleNames = []string{"Asel Nurlanova", "John Carter", "Maria Silva", "Kenji Sato", "Amina Yusuf", "Lucas Meyer"}
var sampleCompanies = []string{"Luxe Finance", "", "Verde Studio", "Nova Tech", "Wellness Hub", "Bakery & Co"}

func main() {
	count := flag.Int("n", 12, "bookings to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	created, pending, err := seed(context.Background(), repository.NewBookingRepository(db), *count)
	if err != nil {
		log.Fatalf("create booking failed: %v", err)
	}

	log.Printf("seed completed: created=%d pending_notification=%d", created, pending)
}

type seedStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	MarkNotified(ctx context.Context, id int64, at time.Time) error
	RecordNotifyFailure(ctx context.Context, id int64, reason string) error
}

// seed creates count sample bookings. Keys already stored are skipped.
// Bookkeeping failures are logged and do not stop the run.
func seed(ctx context.Context, repo seedStore, count int) (created, pending int, err error) {
	for i := 0; i < count; i++ {
		ind := domain.Industries[rand.IntN(len(domain.Industries))]
		industry, _ := domain.ResolveIndustry(ind.Value, "Bakery")

		b := &domain.Booking{
			SubmissionKey: fmt.Sprintf("seed-%03d", i),
			FullName:      sampleNames[i%len(sampleNames)],
			CompanyName:   sampleCompanies[i%len(sampleCompanies)],
			Email:         fmt.Sprintf("lead%d@example.com", i),
			WhatsApp:      fmt.Sprintf("+1 555 010 %04d", rand.IntN(10000)),
			Industry:      industry,
			Message:       "Looking for a redesign of our marketing site.",
			SourceIP:      "127.0.0.1",
			UserAgent:     "seed",
		}
		if err := repo.Create(ctx, b); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				continue
			}
			return created, pending, err
		}
		created++

		// Leave every third booking unnotified so notify_retry has work.
		if i%3 == 2 {
			if err := repo.RecordNotifyFailure(ctx, b.ID, "seeded failure"); err != nil {
				log.Printf("record notify failure: booking_id=%d error=%v", b.ID, err)
			}
			pending++
			continue
		}
		if err := repo.MarkNotified(ctx, b.ID, time.Now()); err != nil {
			log.Printf("mark notified: booking_id=%d error=%v", b.ID, err)
		}
	}
	return created, pending, nil
}
