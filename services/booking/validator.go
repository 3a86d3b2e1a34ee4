package booking

import (
	"time"

	"bistrovoice/models"
)

// ForecastHorizon is the window covered by the weather data source. Bookings
// beyond it would force the indoor fallback for every request, so the limit
// is enforced as a hard business rule instead of silently degrading.
const ForecastHorizon = 4 * 24 * time.Hour

// Outcome classifies a validation result.
type Outcome int

const (
	OutcomeValid Outcome = iota
	OutcomeNeedsClarification
	OutcomeOutOfRange
)

// Reason narrows a non-valid outcome to the specific missing or invalid field.
type Reason string

const (
	ReasonMissingDate     Reason = "missing_date"
	ReasonMissingTime     Reason = "missing_time"
	ReasonMissingGuests   Reason = "missing_guests"
	ReasonInvalidDateTime Reason = "invalid_datetime"
	ReasonPastDate        Reason = "past_date"
	ReasonForecastWindow  Reason = "forecast_window_exceeded"
)

// Result is the outcome of validating an extracted intent.
type Result struct {
	Outcome Outcome
	Reason  Reason
	// When is the combined reservation timestamp, set only when valid.
	When time.Time
}

// Validate enforces field completeness and the temporal range rules. Checks
// run in a fixed order so the first failure decides which clarification the
// caller hears: date, then time, then guests, then range. Both range
// boundaries are inclusive-valid.
func Validate(intent *models.BookingIntent, now time.Time) Result {
	if intent.BookingDate == nil || *intent.BookingDate == "" {
		return Result{Outcome: OutcomeNeedsClarification, Reason: ReasonMissingDate}
	}
	if intent.BookingTime == nil || *intent.BookingTime == "" {
		return Result{Outcome: OutcomeNeedsClarification, Reason: ReasonMissingTime}
	}
	if intent.NumberOfGuests == nil || *intent.NumberOfGuests <= 0 {
		return Result{Outcome: OutcomeNeedsClarification, Reason: ReasonMissingGuests}
	}

	when, err := time.ParseInLocation("2006-01-02 15:04", *intent.BookingDate+" "+*intent.BookingTime, now.Location())
	if err != nil {
		return Result{Outcome: OutcomeOutOfRange, Reason: ReasonInvalidDateTime}
	}
	if when.Before(now) {
		return Result{Outcome: OutcomeOutOfRange, Reason: ReasonPastDate}
	}
	if when.After(now.Add(ForecastHorizon)) {
		return Result{Outcome: OutcomeOutOfRange, Reason: ReasonForecastWindow}
	}

	return Result{Outcome: OutcomeValid, When: when}
}
