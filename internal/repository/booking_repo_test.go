package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"quwastudio/internal/database"
	"quwastudio/internal/domain"
)

func newTestRepo(t *testing.T) *BookingRepository {
	t.Helper()
	db, err := database.Open(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return NewBookingRepository(db)
}

func sampleBooking(key string) *domain.Booking {
	return &domain.Booking{
		SubmissionKey: key,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		WhatsApp:      "+1 234 567 8900",
		Industry:      "Bakery",
	}
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := sampleBooking("key-1")
	b.CompanyName = "Crumbs"
	require.NoError(t, repo.Create(ctx, b))
	assert.NotZero(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "Crumbs", got.CompanyName)
	assert.Equal(t, "Bakery", got.Industry)
	assert.Empty(t, got.Message)
	assert.False(t, got.IsNotified())

	byKey, err := repo.GetBySubmissionKey(ctx, "key-1")
	require.NoError(t, err)
	require.NotNil(t, byKey)
	assert.Equal(t, b.ID, byKey.ID)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBookingRepository_DuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleBooking("same")))
	err := repo.Create(ctx, sampleBooking("same"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBookingRepository_NotificationBookkeeping(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := sampleBooking("a")
	second := sampleBooking("b")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.RecordNotifyFailure(ctx, first.ID, "smtp down"))
	require.NoError(t, repo.MarkNotified(ctx, second.ID, time.Now()))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NotifyAttempts)
	assert.Equal(t, "smtp down", got.LastNotifyError)
	assert.False(t, got.IsNotified())

	got, err = repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, got.IsNotified())
	assert.Equal(t, 1, got.NotifyAttempts)

	pending, err := repo.ListPendingNotification(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	pending, err = repo.ListPendingNotification(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	list, total, err := repo.List(ctx, true, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)

	list, total, err = repo.List(ctx, false, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 1)
}
