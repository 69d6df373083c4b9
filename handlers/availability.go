package handlers

import (
	"net/http"

	"fotoagenda/models"
	"fotoagenda/services/availability"
	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves free slots straight from the slot engine.
type AvailabilityHandler struct {
	Engine *availability.Engine
}

func NewAvailabilityHandler(engine *availability.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailability handles GET /availability?business_id=&date=YYYY-MM-DD.
// Slots are listed chronologically.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	logger := getLogger(c)

	businessID := c.Query("business_id")
	if businessID == "" {
		utils.JSONError(c, http.StatusBadRequest, "business_id es obligatorio")
		return
	}

	dateStr := c.Query("date")
	date, err := models.ParseDate(dateStr, h.Engine.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Formato de fecha inválido. Usa YYYY-MM-DD")
		return
	}

	slots, err := h.Engine.AvailableSlots(c.Request.Context(), businessID, date)
	if err != nil {
		logger.Error("Failed to compute availability", zap.String("businessID", businessID), zap.String("date", dateStr), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo consultar la disponibilidad")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"available_slots": models.FormatSlots(slots),
	})
}
