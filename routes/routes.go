package routes

import (
	"bistrovoice/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up every endpoint on the router.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	RegisterBookingRoutes(r, bookingHandler)
	r.GET("/health", handlers.HealthHandler)
}
