package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingRepo "bistrovoice/database/repository/booking"
	"bistrovoice/models"
	"bistrovoice/resolvers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	resp *models.AgentResponse
}

func (s *stubResolver) Resolve(_ context.Context, _ string) *models.AgentResponse {
	return s.resp
}

// fakeRepo is an in-memory BookingRepository keyed by bookingId.
type fakeRepo struct {
	bookings map[string]models.Booking
	order    []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]models.Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, booking models.Booking) error {
	r.bookings[booking.BookingID] = booking
	r.order = append([]string{booking.BookingID}, r.order...)
	return nil
}

func (r *fakeRepo) GetByBookingID(_ context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id])
	}
	return out, nil
}

func (r *fakeRepo) Cancel(_ context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = models.StatusCancelled
	r.bookings[bookingID] = b
	return &b, nil
}

type errorRepo struct{ fakeRepo }

func (r *errorRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	return nil, errors.New("mongo down")
}

func newTestRouter(resolver resolvers.BookingResolver, repo bookingRepo.BookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(resolver, repo, zap.NewNop())

	bookings := router.Group("/api/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:bookingId", h.GetBooking)
	bookings.DELETE("/:bookingId", h.CancelBooking)
	return router
}

func confirmedBooking(id string) models.Booking {
	return models.Booking{
		BookingID:      id,
		CustomerName:   "Guest",
		NumberOfGuests: 2,
		BookingDate:    time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
		BookingTime:    "19:00",
		Status:         models.StatusConfirmed,
		CreatedAt:      time.Now(),
	}
}

func TestCreateBooking_CreatedReturns201(t *testing.T) {
	booking := confirmedBooking("b-1")
	resolver := &stubResolver{resp: &models.AgentResponse{
		Success:       true,
		AgentResponse: "Confirmed. Table for 2 on 2025-03-14 at 19:00.",
		Booking:       &booking,
	}}
	router := newTestRouter(resolver, newFakeRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"userText":"Book a table for 2 this Friday at 7pm"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "b-1", resp.Booking.BookingID)
}

func TestCreateBooking_ClarificationReturns200(t *testing.T) {
	resolver := &stubResolver{resp: &models.AgentResponse{
		Success:       false,
		AgentResponse: resolvers.ReplyAskDate,
	}}
	router := newTestRouter(resolver, newFakeRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"userText":"book a table at 7"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "What date would you like to book for?", resp.AgentResponse)
	assert.Nil(t, resp.Booking)
}

func TestCreateBooking_MissingUserTextReturns400(t *testing.T) {
	router := newTestRouter(&stubResolver{}, newFakeRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookings_NewestFirst(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(context.Background(), confirmedBooking("older")))
	require.NoError(t, repo.Create(context.Background(), confirmedBooking("newer")))
	router := newTestRouter(&stubResolver{}, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].BookingID)
	assert.Equal(t, "older", got[1].BookingID)
}

func TestListBookings_RepoErrorReturns500(t *testing.T) {
	router := newTestRouter(&stubResolver{}, &errorRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetBooking_FoundAndNotFound(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(context.Background(), confirmedBooking("b-1")))
	router := newTestRouter(&stubResolver{}, repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/b-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestCancelBooking_MarksCancelled(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(context.Background(), confirmedBooking("b-1")))
	router := newTestRouter(&stubResolver{}, repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking cancelled successfully")
	assert.Contains(t, w.Body.String(), "b-1")

	// Cancelled bookings stay queryable for audit.
	cancelled, err := repo.GetByBookingID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCancelBooking_NotFoundMutatesNothing(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(context.Background(), confirmedBooking("b-1")))
	router := newTestRouter(&stubResolver{}, repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	remaining, err := repo.GetByBookingID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, remaining.Status)
}
