// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"fotoagenda/models"
)

var (
	// ErrSlotTaken is returned when a booking already exists for the same
	// (business, date, start time).
	ErrSlotTaken = errors.New("slot already booked")
	// ErrBookingNotFound is returned when no booking matches the given ID.
	ErrBookingNotFound = errors.New("booking not found")
)

// BookingRepository persists confirmed bookings. Implementations must make
// CreateIfAbsent atomic: of two concurrent inserts for the same slot exactly
// one succeeds and the other gets ErrSlotTaken.
type BookingRepository interface {
	CreateIfAbsent(ctx context.Context, booking *models.Booking) error
	FindByDate(ctx context.Context, businessID, date string) ([]models.Booking, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, businessID string) ([]models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
}
