package routes

import (
	"time"

	"fotoagenda/config"
	"fotoagenda/handlers"
	"fotoagenda/middleware"
	"fotoagenda/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAgentRoutes registers the conversational booking endpoint.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	agent := r.Group("/agent")
	{
		agent.POST("/chat", hb.Chat.Chat)
	}
}

// RegisterBookingRoutes registers slot lookup and booking management.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/availability", hb.Availability.GetAvailability)
	r.DELETE("/bookings/:id", hb.Booking.DeleteBooking)
}

// RegisterAdminRoutes sets up endpoints for studio operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.GET("/schedule", hb.Admin.GetSchedule)
		adminGroup.PUT("/schedule", hb.Admin.UpsertSchedule)
	}
}

// RegisterHealthRoute exposes liveness, health and metrics.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.SplitList(config.AppConfig.CORSOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger())
	r.Use(utils.ErrorHandler())
	if perMin := config.AppConfig.MaxRequestsPerMin; perMin > 0 {
		r.Use(middleware.RateLimitMiddleware(perMin))
	}

	RegisterHealthRoute(r)
	RegisterAgentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
