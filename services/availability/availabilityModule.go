package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "fotoagenda/database/repository/booking"
	scheduleRepo "fotoagenda/database/repository/schedule"
	"fotoagenda/models"
)

// DefaultLookAheadDays bounds the next-open-day scan.
const DefaultLookAheadDays = 7

// Reason explains the outcome of an availability check.
type Reason int

const (
	ReasonOpen Reason = iota
	ReasonPast
	ReasonHoliday
	ReasonClosed
	ReasonFullyBooked
)

func (r Reason) String() string {
	switch r {
	case ReasonOpen:
		return "open"
	case ReasonPast:
		return "past"
	case ReasonHoliday:
		return "holiday"
	case ReasonClosed:
		return "closed"
	case ReasonFullyBooked:
		return "fully_booked"
	default:
		return "unknown"
	}
}

// Availability is the result of the diagnostic cascade for one date.
type Availability struct {
	Date   time.Time
	Reason Reason
	// Slots holds the free slots in chronological order; empty unless Reason is ReasonOpen.
	Slots []models.ClockTime
	// Grid is every slot the opening window allows, booked or not.
	Grid []models.ClockTime
	// NextOpen is only set for ReasonClosed when an open day was found.
	NextOpen    time.Time
	HasNextOpen bool
}

// Engine computes free one-hour slots from the weekly schedule, the holiday
// calendar and existing bookings. It holds no state between calls.
type Engine struct {
	Schedules     scheduleRepo.ScheduleRepository
	Bookings      bookingRepo.BookingRepository
	Holidays      HolidayCalendar
	Location      *time.Location
	Now           func() time.Time
	LookAheadDays int
}

// NewEngine wires an Engine with the wall clock and a seven-day look-ahead.
func NewEngine(
	schedules scheduleRepo.ScheduleRepository,
	bookings bookingRepo.BookingRepository,
	holidays HolidayCalendar,
	loc *time.Location,
) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		Schedules:     schedules,
		Bookings:      bookings,
		Holidays:      holidays,
		Location:      loc,
		Now:           time.Now,
		LookAheadDays: DefaultLookAheadDays,
	}
}

// Today returns midnight of the current day in the business time zone.
func (e *Engine) Today() time.Time {
	return e.dayOf(e.Now())
}

func (e *Engine) dayOf(t time.Time) time.Time {
	t = t.In(e.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.Location)
}

// IsPast reports whether date is strictly before today.
func (e *Engine) IsPast(date time.Time) bool {
	return e.dayOf(date).Before(e.Today())
}

// AvailableSlots returns the free slots of businessID on date, chronologically.
// Past dates, holidays and days without a schedule have no slots.
func (e *Engine) AvailableSlots(ctx context.Context, businessID string, date time.Time) ([]models.ClockTime, error) {
	avail, err := e.Check(ctx, businessID, date)
	if err != nil {
		return nil, err
	}
	return avail.Slots, nil
}

// Check runs the diagnostic cascade: past, holiday, closed, fully booked, open.
// The first matching reason wins.
func (e *Engine) Check(ctx context.Context, businessID string, date time.Time) (Availability, error) {
	day := e.dayOf(date)
	result := Availability{Date: day}

	if e.IsPast(day) {
		result.Reason = ReasonPast
		return result, nil
	}

	if e.Holidays != nil && e.Holidays.IsHoliday(businessID, day) {
		result.Reason = ReasonHoliday
		return result, nil
	}

	schedule, err := e.Schedules.GetByWeekday(ctx, businessID, models.WeekdayOf(day))
	if err != nil {
		return Availability{}, fmt.Errorf("availability: load schedule: %w", err)
	}
	if schedule == nil {
		result.Reason = ReasonClosed
		next, found, err := e.NextOpenDay(ctx, businessID, day)
		if err != nil {
			return Availability{}, err
		}
		result.NextOpen, result.HasNextOpen = next, found
		return result, nil
	}

	open, closeAt, err := schedule.Window()
	if err != nil {
		return Availability{}, fmt.Errorf("availability: malformed schedule for %s weekday %d: %w",
			businessID, schedule.Weekday, err)
	}

	bookings, err := e.Bookings.FindByDate(ctx, businessID, day.Format(models.DateLayout))
	if err != nil {
		return Availability{}, fmt.Errorf("availability: load bookings: %w", err)
	}

	result.Grid = GenerateHourSlots(open, closeAt)
	result.Slots = SubtractBooked(result.Grid, bookings)
	if len(result.Slots) == 0 {
		result.Reason = ReasonFullyBooked
		return result, nil
	}
	result.Reason = ReasonOpen
	return result, nil
}

// NextOpenDay scans forward from the day after date for the first day that
// has a schedule and is not a holiday.
func (e *Engine) NextOpenDay(ctx context.Context, businessID string, date time.Time) (time.Time, bool, error) {
	day := e.dayOf(date)
	for i := 1; i <= e.LookAheadDays; i++ {
		candidate := day.AddDate(0, 0, i)
		schedule, err := e.Schedules.GetByWeekday(ctx, businessID, models.WeekdayOf(candidate))
		if err != nil {
			return time.Time{}, false, fmt.Errorf("availability: scan next open day: %w", err)
		}
		if schedule == nil {
			continue
		}
		if e.Holidays != nil && e.Holidays.IsHoliday(businessID, candidate) {
			continue
		}
		return candidate, true, nil
	}
	return time.Time{}, false, nil
}
