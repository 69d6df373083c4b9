package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of every calendar date.
const DateLayout = "2006-01-02"

// SlotDuration is the fixed length of a bookable slot.
const SlotDuration = 60

// ClockTime is a wall-clock time expressed in minutes from midnight (e.g. 540 for 09:00).
type ClockTime int

// ParseClockTime accepts "HH:MM" and "HH:MM:SS"; seconds are dropped.
// Anything else, including trailing text such as "09:00 pm", is rejected.
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
}

// MustClock is ParseClockTime for literals known to be valid.
func MustClock(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Minutes returns the number of minutes from midnight.
func (c ClockTime) Minutes() int { return int(c) }

// FormatSlots renders slots as "HH:MM" strings, preserving order.
func FormatSlots(slots []ClockTime) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

// ParseDate parses a "YYYY-MM-DD" date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// WeekdayOf returns the Monday-based weekday index (0=Monday .. 6=Sunday).
func WeekdayOf(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}
