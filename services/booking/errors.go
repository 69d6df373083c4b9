package booking

import (
	"fmt"

	bookingRepo "fotoagenda/database/repository/booking"
)

// ValidationError reports a draft that cannot be committed as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// Store errors surfaced unchanged by BookingService.
var (
	ErrSlotTaken       = bookingRepo.ErrSlotTaken
	ErrBookingNotFound = bookingRepo.ErrBookingNotFound
)
