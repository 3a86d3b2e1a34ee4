package resolvers

import (
	"context"
	"fmt"
	"time"

	bookingRepo "bistrovoice/database/repository/booking"
	"bistrovoice/models"
	"bistrovoice/services/booking"
	ai "bistrovoice/services/intelligence"
	"bistrovoice/services/tasks"
	"bistrovoice/services/weather"
	"bistrovoice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spoken replies, fixed so the voice client can rely on their wording.
const (
	ReplyDidNotCatch  = "I'm sorry, I didn't catch that. Could you please repeat?"
	ReplyAskDate      = "What date would you like to book for?"
	ReplyAskTime      = "What time should I book the table for?"
	ReplyAskGuests    = "How many people will be joining?"
	ReplyInvalidDate  = "I understood the date, but it seems invalid. Could you say it again?"
	ReplyPastDate     = "I cannot book a table in the past. Please choose a future time."
	ReplyBeyondWindow = "I can only book up to 4 days in advance due to weather forecast limits."
	ReplyServerError  = "I encountered a server error. Please try again."
)

// BookingResolver runs one utterance through the full pipeline and composes
// the spoken response. It never returns a raw error: every failure mode maps
// to a reply the voice client can read back.
type BookingResolver interface {
	Resolve(ctx context.Context, userText string) *models.AgentResponse
}

// Resolver sequences extraction, validation, forecast lookup, persistence and
// notification dispatch. It holds no cross-request state.
type Resolver struct {
	Extractor  ai.IntentExtractor
	Forecast   weather.ForecastService
	Repo       bookingRepo.BookingRepository
	Dispatcher tasks.Dispatcher
	// FallbackPhone receives the confirmation when the caller gave no number.
	FallbackPhone string
	// Now is injectable for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

func NewResolver(
	extractor ai.IntentExtractor,
	forecast weather.ForecastService,
	repo bookingRepo.BookingRepository,
	dispatcher tasks.Dispatcher,
	fallbackPhone string,
) *Resolver {
	return &Resolver{
		Extractor:     extractor,
		Forecast:      forecast,
		Repo:          repo,
		Dispatcher:    dispatcher,
		FallbackPhone: fallbackPhone,
		Now:           time.Now,
	}
}

// Resolve turns free-form text into a committed reservation, or into the
// clarification or rejection prompt explaining why not.
func (r *Resolver) Resolve(ctx context.Context, userText string) *models.AgentResponse {
	logger := utils.GetLogger()
	now := r.Now()

	// Extraction failure is the lowest-information failure: re-prompt without
	// attempting validation.
	intent := r.Extractor.Extract(ctx, userText, now)
	if intent == nil {
		return &models.AgentResponse{Success: false, AgentResponse: ReplyDidNotCatch}
	}

	result := booking.Validate(intent, now)
	if result.Outcome != booking.OutcomeValid {
		return &models.AgentResponse{Success: false, AgentResponse: replyForReason(result.Reason)}
	}

	// Forecast never fails outward; a lookup failure degrades to Unknown/indoor.
	forecast := r.Forecast.Forecast(ctx, result.When)

	record := r.buildBooking(intent, result.When, forecast, now)
	if err := r.Repo.Create(ctx, record); err != nil {
		logger.Error("failed to persist booking", zap.Error(err))
		return &models.AgentResponse{Success: false, AgentResponse: ReplyServerError}
	}

	// Fire-and-forget: the response below does not depend on SMS delivery.
	if r.Dispatcher != nil {
		if err := r.Dispatcher.DispatchBookingConfirmation(ctx, record); err != nil {
			logger.Warn("failed to queue confirmation SMS",
				zap.String("bookingId", record.BookingID), zap.Error(err))
		}
	}

	return &models.AgentResponse{
		Success: true,
		Booking: &record,
		AgentResponse: fmt.Sprintf(
			"Confirmed. Table for %d on %s at %s. The forecast is %s, so I've assigned %s seating.",
			record.NumberOfGuests,
			*intent.BookingDate,
			*intent.BookingTime,
			forecast.Condition,
			forecast.SuggestedSeating,
		),
	}
}

func (r *Resolver) buildBooking(intent *models.BookingIntent, when time.Time, forecast models.ForecastResult, now time.Time) models.Booking {
	name := intent.CustomerName
	if name == "" {
		name = "Guest"
	}
	phone := r.FallbackPhone
	if intent.CustomerPhone != nil && *intent.CustomerPhone != "" {
		phone = *intent.CustomerPhone
	}

	return models.Booking{
		BookingID:         uuid.New().String(),
		CustomerName:      name,
		CustomerPhone:     phone,
		NumberOfGuests:    *intent.NumberOfGuests,
		BookingDate:       when,
		BookingTime:       *intent.BookingTime,
		CuisinePreference: deref(intent.CuisinePreference),
		SpecialRequests:   deref(intent.SpecialRequests),
		WeatherInfo:       forecast,
		SeatingPreference: forecast.SuggestedSeating,
		Status:            models.StatusConfirmed,
		CreatedAt:         now,
	}
}

func replyForReason(reason booking.Reason) string {
	switch reason {
	case booking.ReasonMissingDate:
		return ReplyAskDate
	case booking.ReasonMissingTime:
		return ReplyAskTime
	case booking.ReasonMissingGuests:
		return ReplyAskGuests
	case booking.ReasonInvalidDateTime:
		return ReplyInvalidDate
	case booking.ReasonPastDate:
		return ReplyPastDate
	case booking.ReasonForecastWindow:
		return ReplyBeyondWindow
	default:
		return ReplyServerError
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
