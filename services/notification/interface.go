package notification

import (
	"context"
	"errors"

	"fotoagenda/models"
)

// Message is one outbound notification.
type Message = models.NotificationMessage

// ErrNotConfigured is returned by a sink whose credentials or target are missing.
// Callers treat it as a skipped delivery, not a failure.
var ErrNotConfigured = errors.New("notification channel not configured")

// ErrUnknownChannel is returned when a pinned message names no configured sink.
var ErrUnknownChannel = errors.New("notification: unknown channel")

// Sink delivers messages over one channel.
type Sink interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// BookingNotifier announces committed bookings without blocking the caller.
type BookingNotifier interface {
	NotifyBookingConfirmed(booking models.Booking)
}
