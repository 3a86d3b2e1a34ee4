package handlers

import (
	"errors"
	"net/http"

	bookingRepo "bistrovoice/database/repository/booking"
	"bistrovoice/resolvers"
	"bistrovoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking pipeline and the CRUD surface over HTTP.
type BookingHandler struct {
	Resolver resolvers.BookingResolver
	Repo     bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(resolver resolvers.BookingResolver, repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Resolver: resolver, Repo: repo, Logger: logger}
}

// CreateBooking runs an utterance through the resolver. Only actual creation
// returns 201; clarification, rejection and server-error replies all return
// 200 with success=false so the voice client handles every outcome uniformly.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		UserText string `json:"userText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp := h.Resolver.Resolve(c.Request.Context(), input.UserText)
	if resp.Success {
		c.JSON(http.StatusCreated, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBookings returns all bookings, newest-created first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by its external identifier.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, err := h.Repo.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a booking. The record is retained with status
// "cancelled" so past reservations stay queryable.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, err := h.Repo.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("failed to cancel booking", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Booking cancelled successfully",
		"cancelledBookingId": booking.BookingID,
	})
}
