// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"fotoagenda/models"
)

// ScheduleRepository reads and seeds weekly opening windows.
type ScheduleRepository interface {
	// GetByWeekday returns nil, nil when the business is closed that weekday.
	GetByWeekday(ctx context.Context, businessID string, weekday int) (*models.WeeklySchedule, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.WeeklySchedule, error)
	Upsert(ctx context.Context, schedule models.WeeklySchedule) error
	// SeedIfEmpty inserts rows only when the business has no schedule at all.
	SeedIfEmpty(ctx context.Context, businessID string, rows []models.WeeklySchedule) (bool, error)
}

// DefaultWeek returns the Monday to Saturday 09:00-20:00 week used to seed a new business.
func DefaultWeek(businessID string) []models.WeeklySchedule {
	rows := make([]models.WeeklySchedule, 0, 6)
	for day := 0; day < 6; day++ {
		rows = append(rows, models.WeeklySchedule{
			BusinessID: businessID,
			Weekday:    day,
			OpenTime:   "09:00",
			CloseTime:  "20:00",
		})
	}
	return rows
}
