package models

// BookingIntent is the structured result of extracting a booking request from
// a free-form utterance. Optional fields are pointers so "explicitly absent"
// survives the round trip from the extraction model; the extractor either
// returns a fully-shaped intent or nothing at all.
type BookingIntent struct {
	CustomerName      string  `json:"customerName"`      // "Guest" when the caller never gave a name
	CustomerPhone     *string `json:"customerPhone"`     // E.164 when present
	NumberOfGuests    *int    `json:"numberOfGuests"`    // Positive party size
	BookingDate       *string `json:"bookingDate"`       // "YYYY-MM-DD", relative dates already resolved
	BookingTime       *string `json:"bookingTime"`       // "HH:MM" 24-hour
	CuisinePreference *string `json:"cuisinePreference"` // Free text
	SpecialRequests   *string `json:"specialRequests"`   // Free text
}
