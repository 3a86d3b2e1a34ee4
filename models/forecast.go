package models

// ForecastResult is the weather summary attached to a booking. Condition and
// SuggestedSeating drive the seating decision; the rest is informational.
type ForecastResult struct {
	Condition        string  `bson:"condition" json:"condition"`               // e.g. "Rain", "Clear", or "Unknown" on lookup failure
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
	Temperature      float64 `bson:"temp,omitempty" json:"temp,omitempty"`     // Celsius
	SuggestedSeating string  `bson:"suggestedSeating" json:"suggestedSeating"` // SeatingIndoor or SeatingOutdoor
	SourceTime       string  `bson:"sourceTime,omitempty" json:"sourceTime,omitempty"` // Timestamp of the forecast sample used
}

// UnknownForecast is the fail-safe result used whenever the forecast source is
// unreachable: indoor seating is the conservative default.
func UnknownForecast() ForecastResult {
	return ForecastResult{
		Condition:        "Unknown",
		SuggestedSeating: SeatingIndoor,
	}
}
