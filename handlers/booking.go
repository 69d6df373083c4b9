package handlers

import (
	"errors"
	"net/http"

	"fotoagenda/services/booking"
	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler manages committed bookings.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Cita no encontrada")
			return
		}
		getLogger(c).Error("Failed to delete booking", zap.String("bookingID", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo eliminar la cita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada correctamente"})
}
