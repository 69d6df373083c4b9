package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers from panics in later handlers and answers 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestID", c.GetString("requestID")))
				JSONError(c, http.StatusInternalServerError, "Error interno del servidor")
			}
		}()
		c.Next()
	}
}

// JSONError aborts the request with an ErrorResponse.
func JSONError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
