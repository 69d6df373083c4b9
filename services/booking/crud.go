package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "fotoagenda/database/repository/booking"
	"fotoagenda/models"
	"fotoagenda/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the draft and inserts it. A slot that is already taken
// surfaces as bookingRepo.ErrSlotTaken, unwrapped by errors.Is.
func (s *DefaultBookingService) Create(ctx context.Context, draft Draft) (*models.Booking, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(draft.BusinessID) == "" {
		return nil, newValidationError("business_id", "is required")
	}
	if _, err := models.ParseDate(draft.Date, time.UTC); err != nil {
		return nil, newValidationError("date", err.Error())
	}
	start, err := models.ParseClockTime(draft.StartTime)
	if err != nil {
		return nil, newValidationError("start_time", err.Error())
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		BusinessID:    draft.BusinessID,
		Date:          draft.Date,
		StartTime:     start.String(),
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		CustomerPhone: draft.CustomerPhone,
		EventDate:     draft.EventDate,
		EventDetails:  draft.EventDetails,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     s.Now().UTC(),

		ExternalCalendarRef: draft.ExternalCalendarRef,
	}

	if err := s.Repo.CreateIfAbsent(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			utils.GetMetrics().BookingConflicts.Inc()
			logger.Info("Slot already taken",
				zap.String("businessID", b.BusinessID), zap.String("date", b.Date), zap.String("time", b.StartTime))
			return nil, err
		}
		logger.Error("Failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetMetrics().BookingsCreated.Inc()
	logger.Info("Booking confirmed",
		zap.String("bookingID", b.ID), zap.String("businessID", b.BusinessID),
		zap.String("date", b.Date), zap.String("time", b.StartTime))
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.FindByID(ctx, id)
}

// ListByBusiness returns every booking of a business ordered by date and time.
func (s *DefaultBookingService) ListByBusiness(ctx context.Context, businessID string) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Cancel deletes a booking, freeing its slot. Unknown IDs return
// bookingRepo.ErrBookingNotFound.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return err
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	utils.GetLogger().Info("Booking cancelled", zap.String("bookingID", id))
	return nil
}
