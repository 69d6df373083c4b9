package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fotoagenda/config"
	"fotoagenda/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig.CORSOrigins = "http://localhost:5173"
	config.AppConfig.MaxRequestsPerMin = 0

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Chat:         &handlers.ChatHandler{},
		Availability: &handlers.AvailabilityHandler{},
		Booking:      &handlers.BookingHandler{},
		Admin:        &handlers.AdminHandler{},
	})
	return r
}

func TestPublicRoutes(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouter()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/admin/bookings", nil),
		httptest.NewRequest(http.MethodGet, "/admin/schedule", nil),
		httptest.NewRequest(http.MethodPut, "/admin/schedule", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, req.URL.Path)
	}
}
