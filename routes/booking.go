package routes

import (
	"bistrovoice/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking pipeline.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", h.CreateBooking)               // Voice pipeline: utterance in, response out
		bookings.GET("", h.ListBookings)                 // Newest-created first
		bookings.GET("/:bookingId", h.GetBooking)        // Lookup by external identifier
		bookings.DELETE("/:bookingId", h.CancelBooking)  // Soft cancel, record retained
	}
}
