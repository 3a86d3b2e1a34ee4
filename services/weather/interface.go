package weather

import (
	"context"
	"time"

	"bistrovoice/models"
)

// ForecastService resolves the expected weather for a reservation time.
// Forecast never fails outward: internal failures degrade to the Unknown
// sentinel with indoor seating.
type ForecastService interface {
	Forecast(ctx context.Context, target time.Time) models.ForecastResult
}
