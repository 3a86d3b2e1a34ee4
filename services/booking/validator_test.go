package booking

import (
	"testing"
	"time"

	"bistrovoice/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// testNow is a fixed reference so range checks are deterministic.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fullIntent() *models.BookingIntent {
	return &models.BookingIntent{
		CustomerName:   "Asha",
		NumberOfGuests: intPtr(2),
		BookingDate:    strPtr("2025-03-12"),
		BookingTime:    strPtr("19:00"),
	}
}

func TestValidate_MissingFieldsInOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingIntent)
		reason Reason
	}{
		{
			name:   "missing date",
			mutate: func(i *models.BookingIntent) { i.BookingDate = nil },
			reason: ReasonMissingDate,
		},
		{
			name:   "empty date",
			mutate: func(i *models.BookingIntent) { i.BookingDate = strPtr("") },
			reason: ReasonMissingDate,
		},
		{
			name:   "missing time",
			mutate: func(i *models.BookingIntent) { i.BookingTime = nil },
			reason: ReasonMissingTime,
		},
		{
			name:   "missing guests",
			mutate: func(i *models.BookingIntent) { i.NumberOfGuests = nil },
			reason: ReasonMissingGuests,
		},
		{
			name:   "zero guests",
			mutate: func(i *models.BookingIntent) { i.NumberOfGuests = intPtr(0) },
			reason: ReasonMissingGuests,
		},
		{
			// Date is asked for first even when everything is missing.
			name: "all missing surfaces date first",
			mutate: func(i *models.BookingIntent) {
				i.BookingDate = nil
				i.BookingTime = nil
				i.NumberOfGuests = nil
			},
			reason: ReasonMissingDate,
		},
		{
			name: "date and guests missing surfaces date before guests",
			mutate: func(i *models.BookingIntent) {
				i.BookingDate = nil
				i.NumberOfGuests = nil
			},
			reason: ReasonMissingDate,
		},
		{
			name: "time and guests missing surfaces time before guests",
			mutate: func(i *models.BookingIntent) {
				i.BookingTime = nil
				i.NumberOfGuests = nil
			},
			reason: ReasonMissingTime,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent := fullIntent()
			tc.mutate(intent)

			res := Validate(intent, testNow)
			assert.Equal(t, OutcomeNeedsClarification, res.Outcome)
			assert.Equal(t, tc.reason, res.Reason)
		})
	}
}

func TestValidate_RangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		outcome Outcome
		reason  Reason
	}{
		{"unreal calendar date", "2025-02-30", "19:00", OutcomeOutOfRange, ReasonInvalidDateTime},
		{"unparseable time", "2025-03-12", "7pm", OutcomeOutOfRange, ReasonInvalidDateTime},
		{"in the past", "2025-03-09", "19:00", OutcomeOutOfRange, ReasonPastDate},
		{"one minute in the past", "2025-03-10", "11:59", OutcomeOutOfRange, ReasonPastDate},
		{"exactly now is valid", "2025-03-10", "12:00", OutcomeValid, ""},
		{"exactly the horizon edge is valid", "2025-03-14", "12:00", OutcomeValid, ""},
		{"one minute past the horizon", "2025-03-14", "12:01", OutcomeOutOfRange, ReasonForecastWindow},
		{"ten days out", "2025-03-20", "19:00", OutcomeOutOfRange, ReasonForecastWindow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent := fullIntent()
			intent.BookingDate = strPtr(tc.date)
			intent.BookingTime = strPtr(tc.time)

			res := Validate(intent, testNow)
			assert.Equal(t, tc.outcome, res.Outcome)
			assert.Equal(t, tc.reason, res.Reason)
		})
	}
}

func TestValidate_ValidSetsCombinedTimestamp(t *testing.T) {
	res := Validate(fullIntent(), testNow)

	assert.Equal(t, OutcomeValid, res.Outcome)
	assert.Equal(t, time.Date(2025, 3, 12, 19, 0, 0, 0, time.UTC), res.When)
}
