package availability

import (
	"context"
	"testing"
	"time"

	bookingRepo "fotoagenda/database/repository/booking"
	scheduleRepo "fotoagenda/database/repository/schedule"
	"fotoagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-05-12, mid-morning.
var fixedNow = time.Date(2025, 5, 12, 10, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T, rows ...models.WeeklySchedule) (*Engine, bookingRepo.BookingRepository) {
	t.Helper()
	if len(rows) == 0 {
		rows = scheduleRepo.DefaultWeek("demo")
	}
	bookings := bookingRepo.NewMemoryBookingRepo()
	engine := NewEngine(
		scheduleRepo.NewMemoryScheduleRepo(rows...),
		bookings,
		NewStaticHolidays("2025-01-01", "2025-01-06", "2025-12-25"),
		time.UTC,
	)
	engine.Now = func() time.Time { return fixedNow }
	return engine, bookings
}

func day(s string) time.Time {
	d, err := models.ParseDate(s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func clocks(ss ...string) []models.ClockTime {
	out := make([]models.ClockTime, len(ss))
	for i, s := range ss {
		out[i] = models.MustClock(s)
	}
	return out
}

func TestAvailableSlotsFullDay(t *testing.T) {
	engine, _ := newTestEngine(t)

	slots, err := engine.AvailableSlots(context.Background(), "demo", day("2025-05-13"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
		"15:00", "16:00", "17:00", "18:00", "19:00",
	}, models.FormatSlots(slots))
}

func TestAvailableSlotsTodayIsNotPast(t *testing.T) {
	engine, _ := newTestEngine(t)

	slots, err := engine.AvailableSlots(context.Background(), "demo", day("2025-05-12"))
	require.NoError(t, err)
	assert.Len(t, slots, 11)
}

func TestAvailableSlotsEmptyForPastDates(t *testing.T) {
	engine, bookings := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "x", BusinessID: "demo", Date: "2025-05-10", StartTime: "09:00"}))

	for _, d := range []string{"2025-05-11", "2025-05-10", "2024-12-31"} {
		slots, err := engine.AvailableSlots(ctx, "demo", day(d))
		require.NoError(t, err)
		assert.Empty(t, slots, d)
	}

	avail, err := engine.Check(ctx, "demo", day("2025-05-11"))
	require.NoError(t, err)
	assert.Equal(t, ReasonPast, avail.Reason)
}

func TestAvailableSlotsEmptyOnHoliday(t *testing.T) {
	engine, _ := newTestEngine(t)

	avail, err := engine.Check(context.Background(), "demo", day("2025-12-25"))
	require.NoError(t, err)
	assert.Equal(t, ReasonHoliday, avail.Reason)
	assert.Empty(t, avail.Slots)
}

func TestCheckClosedDaySuggestsNextOpenDay(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Sunday has no schedule row.
	avail, err := engine.Check(context.Background(), "demo", day("2025-05-18"))
	require.NoError(t, err)
	assert.Equal(t, ReasonClosed, avail.Reason)
	assert.Empty(t, avail.Slots)
	require.True(t, avail.HasNextOpen)
	assert.Equal(t, "2025-05-19", avail.NextOpen.Format(models.DateLayout))
}

func TestNextOpenDaySkipsHolidays(t *testing.T) {
	engine, _ := newTestEngine(t)
	holidays := NewStaticHolidays()
	holidays.SetForBusiness("demo", "2025-05-19")
	engine.Holidays = holidays

	next, found, err := engine.NextOpenDay(context.Background(), "demo", day("2025-05-18"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2025-05-20", next.Format(models.DateLayout))
}

func TestNextOpenDayNotFoundWithoutSchedule(t *testing.T) {
	engine, _ := newTestEngine(t, models.WeeklySchedule{BusinessID: "other", Weekday: 0, OpenTime: "09:00", CloseTime: "10:00"})

	_, found, err := engine.NextOpenDay(context.Background(), "demo", day("2025-05-18"))
	require.NoError(t, err)
	assert.False(t, found)

	avail, err := engine.Check(context.Background(), "demo", day("2025-05-13"))
	require.NoError(t, err)
	assert.Equal(t, ReasonClosed, avail.Reason)
	assert.False(t, avail.HasNextOpen)
}

func TestAvailableSlotsExcludeBookedStarts(t *testing.T) {
	engine, bookings := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "a", BusinessID: "demo", Date: "2025-05-13", StartTime: "09:00"}))
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "b", BusinessID: "demo", Date: "2025-05-13", StartTime: "17:00"}))
	// Other dates and businesses do not interfere.
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "c", BusinessID: "demo", Date: "2025-05-14", StartTime: "10:00"}))
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "d", BusinessID: "other", Date: "2025-05-13", StartTime: "10:00"}))

	slots, err := engine.AvailableSlots(ctx, "demo", day("2025-05-13"))
	require.NoError(t, err)
	assert.Len(t, slots, 9)
	assert.False(t, Contains(slots, models.MustClock("09:00")))
	assert.False(t, Contains(slots, models.MustClock("17:00")))
	assert.True(t, Contains(slots, models.MustClock("10:00")))
}

func TestCheckFullyBooked(t *testing.T) {
	engine, bookings := newTestEngine(t, models.WeeklySchedule{BusinessID: "demo", Weekday: 1, OpenTime: "09:00", CloseTime: "11:00"})
	ctx := context.Background()
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "a", BusinessID: "demo", Date: "2025-05-13", StartTime: "09:00"}))
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "b", BusinessID: "demo", Date: "2025-05-13", StartTime: "10:00"}))

	avail, err := engine.Check(ctx, "demo", day("2025-05-13"))
	require.NoError(t, err)
	assert.Equal(t, ReasonFullyBooked, avail.Reason)
	assert.Empty(t, avail.Slots)
}

func TestGenerateHourSlotsEdgeCases(t *testing.T) {
	assert.Empty(t, GenerateHourSlots(models.MustClock("09:00"), models.MustClock("09:00")))
	assert.Empty(t, GenerateHourSlots(models.MustClock("20:00"), models.MustClock("09:00")))
	assert.Empty(t, GenerateHourSlots(models.MustClock("09:00"), models.MustClock("09:59")))
	// No partial trailing slot.
	assert.Equal(t, clocks("09:30"), GenerateHourSlots(models.MustClock("09:30"), models.MustClock("11:00")))
	assert.Equal(t, clocks("09:00", "10:00"), GenerateHourSlots(models.MustClock("09:00"), models.MustClock("11:00")))
}

func TestSubtractBookedIsIdempotent(t *testing.T) {
	all := GenerateHourSlots(models.MustClock("09:00"), models.MustClock("20:00"))
	once := SubtractBooked(all, []models.Booking{{StartTime: "12:00"}})
	twice := SubtractBooked(all, []models.Booking{{StartTime: "12:00"}, {StartTime: "12:00"}})
	again := SubtractBooked(once, []models.Booking{{StartTime: "12:00"}})

	assert.Equal(t, once, twice)
	assert.Equal(t, once, again)
	assert.Len(t, once, 10)
}

func TestSortByProximity(t *testing.T) {
	all := GenerateHourSlots(models.MustClock("09:00"), models.MustClock("20:00"))

	sorted := SortByProximity(all, PreferredHour)
	assert.Equal(t, []string{
		"17:00", "16:00", "18:00", "15:00", "19:00", "14:00",
		"13:00", "12:00", "11:00", "10:00", "09:00",
	}, models.FormatSlots(sorted))

	// Input is left untouched.
	assert.Equal(t, "09:00", all[0].String())
}

func TestStaticHolidaysOverride(t *testing.T) {
	h := NewStaticHolidays("2025-12-25")
	h.SetForBusiness("studio", "2025-08-15")

	assert.True(t, h.IsHoliday("demo", day("2025-12-25")))
	assert.False(t, h.IsHoliday("studio", day("2025-12-25")))
	assert.True(t, h.IsHoliday("studio", day("2025-08-15")))
}

func TestCheckKeepsFullGrid(t *testing.T) {
	engine, bookings := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, bookings.CreateIfAbsent(ctx, &models.Booking{ID: "a", BusinessID: "demo", Date: "2025-05-13", StartTime: "12:00"}))

	avail, err := engine.Check(ctx, "demo", day("2025-05-13"))
	require.NoError(t, err)
	assert.Len(t, avail.Grid, 11)
	assert.Len(t, avail.Slots, 10)
	assert.True(t, Contains(avail.Grid, models.MustClock("12:00")))
}

func TestCheckFailsOnMalformedScheduleWindow(t *testing.T) {
	engine, _ := newTestEngine(t, models.WeeklySchedule{
		BusinessID: "demo", Weekday: 1, OpenTime: "9am", CloseTime: "20:00",
	})

	_, err := engine.Check(context.Background(), "demo", day("2025-05-13"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed schedule")
}
