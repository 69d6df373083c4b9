package handlers

import (
	"net/http"

	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
)

// Root reports that the API is up.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API corriendo correctamente"})
}

// Health returns the latest dependency snapshot, 503 when any probe failed.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
