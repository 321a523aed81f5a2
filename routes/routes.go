package routes

import (
	"net/http"
	"time"

	"cardoctor/handlers"
	"cardoctor/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.Root)
	r.GET("/health", hb.Health.Health)
}

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueToken)
}

// RegisterServiceRoutes registers read-only service catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.Services.ListServices)
		api.GET("/:id", hb.Services.GetServiceByID)
	}
}

// RegisterBookingRoutes registers booking endpoints. Only listing requires a token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.GET("", middleware.VerifyJWT(hb.TokenValidator), hb.Bookings.ListBookings)
		api.POST("", hb.Bookings.CreateBooking)
		api.PATCH("/:id", hb.Bookings.UpdateBookingStatus)
		api.DELETE("/:id", hb.Bookings.DeleteBooking)
	}
	r.GET("/bookingSearchServices/:text", hb.Bookings.SearchBookings)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
