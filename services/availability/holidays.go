package availability

import (
	"sync"
	"time"

	"fotoagenda/models"
)

// HolidayCalendar reports closed dates.
type HolidayCalendar interface {
	IsHoliday(businessID string, date time.Time) bool
}

// StaticHolidays is a fixed set of closed dates shared by every business,
// optionally replaced per business.
type StaticHolidays struct {
	mu          sync.RWMutex
	global      map[string]struct{}
	perBusiness map[string]map[string]struct{}
}

// NewStaticHolidays builds a calendar from "YYYY-MM-DD" dates.
func NewStaticHolidays(dates ...string) *StaticHolidays {
	return &StaticHolidays{
		global:      toSet(dates),
		perBusiness: make(map[string]map[string]struct{}),
	}
}

// SetForBusiness replaces the shared set for one business.
func (h *StaticHolidays) SetForBusiness(businessID string, dates ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.perBusiness[businessID] = toSet(dates)
}

func (h *StaticHolidays) IsHoliday(businessID string, date time.Time) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.global
	if override, ok := h.perBusiness[businessID]; ok {
		set = override
	}
	_, closed := set[date.Format(models.DateLayout)]
	return closed
}

func toSet(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}
