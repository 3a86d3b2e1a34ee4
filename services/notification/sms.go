package notification

import (
	"context"
	"fmt"

	"bistrovoice/models"
	"bistrovoice/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// snsAPI is the slice of the SNS client we use, so tests can stub delivery.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSNotificationService delivers booking confirmations as direct SMS via
// AWS SNS.
type SMSNotificationService struct {
	client         snsAPI
	restaurantName string
	fallbackPhone  string
}

// NewSMSNotificationService builds the SNS-backed sender. An empty region
// disables delivery entirely: every send becomes a logged no-op.
func NewSMSNotificationService(ctx context.Context, region, restaurantName, fallbackPhone string) (*SMSNotificationService, error) {
	svc := &SMSNotificationService{
		restaurantName: restaurantName,
		fallbackPhone:  fallbackPhone,
	}
	if region == "" {
		return svc, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	svc.client = sns.NewFromConfig(cfg)
	return svc, nil
}

// SendBookingConfirmation texts the customer. Missing credentials or a
// missing recipient are skipped with a warning; delivery failures are logged
// and not retried.
func (s *SMSNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking) error {
	logger := utils.GetLogger()

	if s.client == nil {
		logger.Warn("SMS credentials missing, skipping confirmation",
			zap.String("bookingId", booking.BookingID))
		return nil
	}

	recipient := booking.CustomerPhone
	if recipient == "" {
		recipient = s.fallbackPhone
	}
	if recipient == "" {
		logger.Warn("no recipient phone number found, skipping confirmation",
			zap.String("bookingId", booking.BookingID))
		return nil
	}

	message := confirmationMessage(booking, s.restaurantName)
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		Message:     aws.String(message),
		PhoneNumber: aws.String(recipient),
	})
	if err != nil {
		logger.Error("failed to send confirmation SMS",
			zap.String("bookingId", booking.BookingID), zap.Error(err))
		return err
	}

	logger.Info("confirmation SMS sent", zap.String("bookingId", booking.BookingID))
	return nil
}

func confirmationMessage(booking models.Booking, restaurantName string) string {
	name := booking.CustomerName
	if name == "" {
		name = "Guest"
	}
	return fmt.Sprintf("Booking Confirmed! Hi %s, table for %d at %s. %s @ %s. See you soon!",
		name,
		booking.NumberOfGuests,
		restaurantName,
		booking.BookingDate.Format("Mon, 2 Jan 2006"),
		booking.BookingTime,
	)
}
