package bookingRepo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"fotoagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, date, start string) *models.Booking {
	return &models.Booking{ID: id, BusinessID: "demo", Date: date, StartTime: start, Status: models.BookingStatusConfirmed}
}

func TestMemoryCreateIfAbsentRejectsDuplicateSlot(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateIfAbsent(ctx, booking("a", "2025-05-13", "09:00")))
	err := repo.CreateIfAbsent(ctx, booking("b", "2025-05-13", "09:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Same time on another business is independent.
	other := booking("c", "2025-05-13", "09:00")
	other.BusinessID = "other"
	assert.NoError(t, repo.CreateIfAbsent(ctx, other))
}

func TestMemoryConcurrentCommitsExactlyOneWins(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	var wins, conflicts int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.CreateIfAbsent(ctx, booking(string(rune('a'+i)), "2025-05-13", "10:00"))
			switch err {
			case nil:
				atomic.AddInt32(&wins, 1)
			case ErrSlotTaken:
				atomic.AddInt32(&conflicts, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, int32(19), conflicts)
}

func TestMemoryFindListAndDelete(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateIfAbsent(ctx, booking("late", "2025-05-13", "15:00")))
	require.NoError(t, repo.CreateIfAbsent(ctx, booking("early", "2025-05-13", "09:00")))
	require.NoError(t, repo.CreateIfAbsent(ctx, booking("next", "2025-05-14", "09:00")))

	day, err := repo.FindByDate(ctx, "demo", "2025-05-13")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "early", day[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late", "next"}, []string{all[0].ID, all[1].ID, all[2].ID})

	require.NoError(t, repo.DeleteByID(ctx, "early"))
	assert.ErrorIs(t, repo.DeleteByID(ctx, "early"), ErrBookingNotFound)
	_, err = repo.FindByID(ctx, "early")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// The freed slot can be booked again.
	assert.NoError(t, repo.CreateIfAbsent(ctx, booking("again", "2025-05-13", "09:00")))
}
