package notification

import (
	"context"

	"bistrovoice/models"
)

// NotificationService sends the customer-facing booking confirmation. All
// implementations are best-effort: missing configuration or a missing
// recipient are no-op conditions, not errors.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
}
