package handlers

import (
	"net/http"

	"fotoagenda/models"
	"fotoagenda/services/intelligence"
	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the booking assistant.
type ChatHandler struct {
	AI intelligence.AIService
}

func NewChatHandler(ai intelligence.AIService) *ChatHandler {
	return &ChatHandler{AI: ai}
}

// Chat handles POST /agent/chat. Conversation outcomes, errors included,
// are reported through the reply status with 200.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	resp, err := h.AI.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat turn failed", zap.String("sessionID", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{
			Reply:  "Error procesando la respuesta.",
			Status: models.StatusError,
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
