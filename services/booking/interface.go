package booking

import (
	"context"
	"time"

	bookingRepo "fotoagenda/database/repository/booking"
	"fotoagenda/models"
)

// BookingService commits and manages confirmed bookings.
type BookingService interface {
	Create(ctx context.Context, draft Draft) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// Draft carries what the agent collected before committing a slot.
type Draft struct {
	BusinessID    string
	Date          string
	StartTime     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventDate     string
	EventDetails  string

	// ExternalCalendarRef links the booking to an event in an external calendar.
	ExternalCalendarRef string
}

// DefaultBookingService implements BookingService on top of a BookingRepository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
	Now  func() time.Time
}

func NewBookingService(repo bookingRepo.BookingRepository) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Now: time.Now}
}
