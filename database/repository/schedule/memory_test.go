package scheduleRepo

import (
	"context"
	"testing"

	"fotoagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmptyOnlySeedsOnce(t *testing.T) {
	repo := NewMemoryScheduleRepo()
	ctx := context.Background()

	seeded, err := repo.SeedIfEmpty(ctx, "demo", DefaultWeek("demo"))
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.SeedIfEmpty(ctx, "demo", DefaultWeek("demo"))
	require.NoError(t, err)
	assert.False(t, seeded)

	rows, err := repo.ListByBusiness(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, rows, 6)
	assert.Equal(t, 0, rows[0].Weekday)
	assert.Equal(t, 5, rows[5].Weekday)
}

func TestGetByWeekdayClosedDay(t *testing.T) {
	repo := NewMemoryScheduleRepo(DefaultWeek("demo")...)
	ctx := context.Background()

	sunday, err := repo.GetByWeekday(ctx, "demo", 6)
	require.NoError(t, err)
	assert.Nil(t, sunday)

	require.NoError(t, repo.Upsert(ctx, models.WeeklySchedule{BusinessID: "demo", Weekday: 6, OpenTime: "10:00", CloseTime: "14:00"}))
	sunday, err = repo.GetByWeekday(ctx, "demo", 6)
	require.NoError(t, err)
	require.NotNil(t, sunday)
	assert.Equal(t, "10:00", sunday.OpenTime)
}
