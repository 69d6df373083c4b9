package handlers

import (
	"net/http"

	scheduleRepo "fotoagenda/database/repository/schedule"
	"fotoagenda/models"
	"fotoagenda/services/booking"
	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates studio-side operations.
type AdminHandler struct {
	Bookings          booking.BookingService
	Schedules         scheduleRepo.ScheduleRepository
	DefaultBusinessID string
}

func NewAdminHandler(bookings booking.BookingService, schedules scheduleRepo.ScheduleRepository, defaultBusinessID string) *AdminHandler {
	return &AdminHandler{
		Bookings:          bookings,
		Schedules:         schedules,
		DefaultBusinessID: defaultBusinessID,
	}
}

// ListBookings returns every booking of a business ordered by date and time.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	businessID := c.DefaultQuery("business_id", ah.DefaultBusinessID)

	bookings, err := ah.Bookings.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		getLogger(c).Error("Failed to fetch bookings", zap.String("businessID", businessID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"business_id": businessID, "bookings": bookings})
}

// GetSchedule returns the weekly opening windows of a business.
func (ah *AdminHandler) GetSchedule(c *gin.Context) {
	businessID := c.DefaultQuery("business_id", ah.DefaultBusinessID)

	rows, err := ah.Schedules.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		getLogger(c).Error("Failed to fetch schedule", zap.String("businessID", businessID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"business_id": businessID, "schedule": rows})
}

// UpsertSchedule sets the opening window of one weekday.
func (ah *AdminHandler) UpsertSchedule(c *gin.Context) {
	logger := getLogger(c)

	var req models.ScheduleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	row := models.WeeklySchedule{
		BusinessID: req.BusinessID,
		Weekday:    *req.Weekday,
		OpenTime:   req.OpenTime,
		CloseTime:  req.CloseTime,
	}
	open, closeAt, err := row.Window()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if closeAt <= open {
		utils.JSONError(c, http.StatusBadRequest, "close_time must be after open_time")
		return
	}
	row.OpenTime, row.CloseTime = open.String(), closeAt.String()

	if err := ah.Schedules.Upsert(c.Request.Context(), row); err != nil {
		logger.Error("Failed to upsert schedule", zap.String("businessID", row.BusinessID), zap.Int("weekday", row.Weekday), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save schedule")
		return
	}

	logger.Info("Schedule updated", zap.String("businessID", row.BusinessID), zap.Int("weekday", row.Weekday),
		zap.String("open", row.OpenTime), zap.String("close", row.CloseTime))
	c.JSON(http.StatusOK, row)
}
