package models

import "time"

// Booking statuses. Creation always yields StatusConfirmed; StatusPending is
// reserved for a future pending-confirmation flow. Cancellation keeps the
// record for audit and flips the status.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Seating assignments derived from the forecast.
const (
	SeatingIndoor  = "indoor"
	SeatingOutdoor = "outdoor"
)

// Booking represents a confirmed reservation record.
type Booking struct {
	BookingID         string         `bson:"bookingId" json:"bookingId"`                               // External reference (UUID), never the Mongo _id
	CustomerName      string         `bson:"customerName" json:"customerName"`                         // Defaults to "Guest"
	CustomerPhone     string         `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`   // SMS recipient, may be empty
	NumberOfGuests    int            `bson:"numberOfGuests" json:"numberOfGuests"`                     // Party size
	BookingDate       time.Time      `bson:"bookingDate" json:"bookingDate"`                           // Combined reservation date and time
	BookingTime       string         `bson:"bookingTime" json:"bookingTime"`                           // "HH:MM" 24-hour, as spoken
	CuisinePreference string         `bson:"cuisinePreference,omitempty" json:"cuisinePreference,omitempty"`
	SpecialRequests   string         `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	WeatherInfo       ForecastResult `bson:"weatherInfo" json:"weatherInfo"`
	SeatingPreference string         `bson:"seatingPreference" json:"seatingPreference"` // Copied from WeatherInfo.SuggestedSeating
	Status            string         `bson:"status" json:"status"`
	CreatedAt         time.Time      `bson:"createdAt" json:"createdAt"`
}
