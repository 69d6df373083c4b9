package scheduleRepo

import (
	"context"
	"sort"
	"sync"

	"fotoagenda/models"
)

type weekKey struct {
	businessID string
	weekday    int
}

type memoryScheduleRepo struct {
	mu   sync.RWMutex
	rows map[weekKey]models.WeeklySchedule
}

// NewMemoryScheduleRepo constructs an in-memory ScheduleRepository holding rows.
func NewMemoryScheduleRepo(rows ...models.WeeklySchedule) ScheduleRepository {
	r := &memoryScheduleRepo{rows: make(map[weekKey]models.WeeklySchedule)}
	for _, row := range rows {
		r.rows[weekKey{row.BusinessID, row.Weekday}] = row
	}
	return r
}

func (r *memoryScheduleRepo) GetByWeekday(ctx context.Context, businessID string, weekday int) (*models.WeeklySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[weekKey{businessID, weekday}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memoryScheduleRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.WeeklySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.WeeklySchedule
	for k, row := range r.rows {
		if k.businessID == businessID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}

func (r *memoryScheduleRepo) Upsert(ctx context.Context, schedule models.WeeklySchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[weekKey{schedule.BusinessID, schedule.Weekday}] = schedule
	return nil
}

func (r *memoryScheduleRepo) SeedIfEmpty(ctx context.Context, businessID string, rows []models.WeeklySchedule) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.rows {
		if k.businessID == businessID {
			return false, nil
		}
	}
	for _, row := range rows {
		r.rows[weekKey{row.BusinessID, row.Weekday}] = row
	}
	return true, nil
}
