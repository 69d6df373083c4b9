package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fotoagenda/models"
	"fotoagenda/utils"

	"go.uber.org/zap"
)

const defaultSendTimeout = 30 * time.Second

// Notifier builds booking notifications and fans them out to every sink.
type Notifier struct {
	Sinks []Sink
	// BusinessRecipients receive the new-booking notice.
	BusinessRecipients []string
	Timeout            time.Duration
}

func NewNotifier(recipients []string, sinks ...Sink) *Notifier {
	return &Notifier{
		Sinks:              sinks,
		BusinessRecipients: recipients,
		Timeout:            defaultSendTimeout,
	}
}

// NotifyBookingConfirmed sends the booking notifications in the background.
// Failures are logged and counted, never returned.
func (n *Notifier) NotifyBookingConfirmed(booking models.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.Timeout)
		defer cancel()
		_ = n.SendBookingConfirmed(ctx, booking)
	}()
}

// SendBookingConfirmed delivers the customer confirmation (only when the
// customer left an email) and the business notice.
func (n *Notifier) SendBookingConfirmed(ctx context.Context, booking models.Booking) error {
	var errs []error
	for _, msg := range BookingMessages(booking, n.BusinessRecipients) {
		if err := n.Deliver(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Deliver sends msg through every sink, or only through msg.Channel when it
// is pinned. Unconfigured sinks are skipped with a warning.
func (n *Notifier) Deliver(ctx context.Context, msg Message) error {
	if msg.Channel != "" {
		for _, sink := range n.Sinks {
			if sink.Name() == msg.Channel {
				return n.send(ctx, sink, msg)
			}
		}
		return fmt.Errorf("%w: %q", ErrUnknownChannel, msg.Channel)
	}

	var errs []error
	for _, sink := range n.Sinks {
		if err := n.send(ctx, sink, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Channels returns the sink names, in order.
func (n *Notifier) Channels() []string {
	names := make([]string, 0, len(n.Sinks))
	for _, sink := range n.Sinks {
		names = append(names, sink.Name())
	}
	return names
}

func (n *Notifier) send(ctx context.Context, sink Sink, msg Message) error {
	logger := utils.GetLogger()

	err := sink.Send(ctx, msg)
	switch {
	case err == nil:
		logger.Debug("Notification sent",
			zap.String("channel", sink.Name()), zap.String("audience", msg.Audience), zap.String("subject", msg.Subject))
		return nil
	case errors.Is(err, ErrNotConfigured):
		logger.Warn("Notification channel not configured, skipping",
			zap.String("channel", sink.Name()), zap.String("audience", msg.Audience))
		return nil
	default:
		utils.GetMetrics().NotificationFailures.WithLabelValues(sink.Name()).Inc()
		logger.Error("Notification failed",
			zap.String("channel", sink.Name()), zap.String("audience", msg.Audience), zap.Error(err))
		return err
	}
}

// BookingMessages renders the notifications for a committed booking.
func BookingMessages(b models.Booking, businessRecipients []string) []Message {
	data := map[string]string{
		"bookingId": b.ID,
		"date":      b.Date,
		"time":      b.StartTime,
	}

	var msgs []Message
	if b.CustomerEmail != "" {
		msgs = append(msgs, Message{
			Audience: models.AudienceCustomer,
			To:       []string{b.CustomerEmail},
			Subject:  "Confirmación de Cita - Estudio de Fotografía",
			Body: fmt.Sprintf("Hola %s,\n\nTu cita ha sido confirmada correctamente.\n\n📅 Fecha: %s\n⏰ Hora: %s\n\n¡Gracias por confiar en nosotros!\n",
				orDefault(b.CustomerName, "Cliente"), b.Date, b.StartTime),
			Data: data,
		})
	}

	msgs = append(msgs, Message{
		Audience: models.AudienceBusiness,
		To:       businessRecipients,
		Subject:  fmt.Sprintf("Nueva Reserva: %s a las %s", b.Date, b.StartTime),
		Body: fmt.Sprintf("¡Hola! Tenéis una nueva cita confirmada.\n\n👤 Cliente: %s\n📧 Email: %s\n📞 Teléfono: %s\n\n📅 Fecha: %s\n⏰ Hora: %s\n🎉 Fecha del evento: %s\n\n📝 Detalles:\n%s\n",
			orDefault(b.CustomerName, "N/A"),
			orDefault(b.CustomerEmail, "N/A"),
			orDefault(b.CustomerPhone, "N/A"),
			b.Date, b.StartTime,
			orDefault(b.EventDate, "N/A"),
			orDefault(b.EventDetails, "Sin detalles adicionales")),
		Data: data,
	})
	return msgs
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
