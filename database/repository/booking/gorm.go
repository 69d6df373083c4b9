package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"fotoagenda/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormBookingRepo struct {
	db *gorm.DB
}

// NewGormBookingRepo constructs a SQL BookingRepository. The bookings table
// must carry the idx_business_slot unique index (see database.InitPostgres).
func NewGormBookingRepo(db *gorm.DB) BookingRepository {
	return &gormBookingRepo{db: db}
}

func (r *gormBookingRepo) CreateIfAbsent(ctx context.Context, booking *models.Booking) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(booking)
	if res.Error != nil {
		return fmt.Errorf("insert booking failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSlotTaken
	}
	return nil
}

func (r *gormBookingRepo) FindByDate(ctx context.Context, businessID, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND date = ?", businessID, date).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return bookings, nil
}

func (r *gormBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *gormBookingRepo) List(ctx context.Context, businessID string) ([]models.Booking, error) {
	q := r.db.WithContext(ctx)
	if businessID != "" {
		q = q.Where("business_id = ?", businessID)
	}
	var bookings []models.Booking
	if err := q.Order("date ASC, start_time ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return bookings, nil
}

func (r *gormBookingRepo) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("delete booking failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
