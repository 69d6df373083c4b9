package scheduleRepo

import (
	"context"
	"errors"
	"fmt"

	"fotoagenda/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormScheduleRepo struct {
	db *gorm.DB
}

// NewGormScheduleRepo constructs a SQL ScheduleRepository.
func NewGormScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &gormScheduleRepo{db: db}
}

func (r *gormScheduleRepo) GetByWeekday(ctx context.Context, businessID string, weekday int) (*models.WeeklySchedule, error) {
	var row models.WeeklySchedule
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND weekday = ?", businessID, weekday).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	return &row, nil
}

func (r *gormScheduleRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.WeeklySchedule, error) {
	var rows []models.WeeklySchedule
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("weekday ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}
	return rows, nil
}

func (r *gormScheduleRepo) Upsert(ctx context.Context, schedule models.WeeklySchedule) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time"}),
		}).
		Create(&schedule).Error
	if err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return nil
}

func (r *gormScheduleRepo) SeedIfEmpty(ctx context.Context, businessID string, rows []models.WeeklySchedule) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WeeklySchedule{}).Where("business_id = ?", businessID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed schedule: %w", err)
	}
	return seeded, nil
}
