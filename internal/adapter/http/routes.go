package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all reservation API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.POST("/:id/cancel", h.CancelBooking)

	alerts := api.Group("/alerts")
	alerts.POST("", h.CreateAlert)
	alerts.GET("", h.ListAlerts)
	alerts.DELETE("/:id", h.DeleteAlert)

	api.POST("/chat", h.Chat)

	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
}
