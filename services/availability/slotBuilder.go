package availability

import (
	"sort"

	"fotoagenda/models"
)

// PreferredHour is the slot the studio would rather fill first (17:00).
const PreferredHour models.ClockTime = 17 * 60

// GenerateHourSlots returns every one-hour slot start in [open, close) whose
// full hour fits before close. Zero-length or inverted windows yield nothing.
func GenerateHourSlots(open, closeAt models.ClockTime) []models.ClockTime {
	var slots []models.ClockTime
	for t := open; t+models.SlotDuration <= closeAt; t += models.SlotDuration {
		slots = append(slots, t)
	}
	return slots
}

// SubtractBooked drops slots whose start matches a booking's start time exactly.
func SubtractBooked(slots []models.ClockTime, bookings []models.Booking) []models.ClockTime {
	taken := make(map[models.ClockTime]struct{}, len(bookings))
	for _, b := range bookings {
		start, err := models.ParseClockTime(b.StartTime)
		if err != nil {
			continue
		}
		taken[start] = struct{}{}
	}

	free := make([]models.ClockTime, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// SortByProximity returns a copy of slots ordered by distance to preferred.
// Equal distances keep their original (chronological) order.
func SortByProximity(slots []models.ClockTime, preferred models.ClockTime) []models.ClockTime {
	out := append([]models.ClockTime(nil), slots...)
	sort.SliceStable(out, func(i, j int) bool {
		return distance(out[i], preferred) < distance(out[j], preferred)
	})
	return out
}

func distance(a, b models.ClockTime) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Contains reports whether slot is in slots.
func Contains(slots []models.ClockTime, slot models.ClockTime) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
