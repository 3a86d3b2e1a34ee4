package tasks

import (
	"context"
	"encoding/json"

	"bistrovoice/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmSMS = "notify:booking_sms"

// Dispatcher queues a confirmation message for background delivery. Enqueue
// failures are the caller's to log; they never fail the booking.
type Dispatcher interface {
	DispatchBookingConfirmation(ctx context.Context, booking models.Booking) error
}

// NewBookingSMSTask builds the asynq task carrying a booking snapshot.
func NewBookingSMSTask(payload models.SMSPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmSMS, b), nil
}

// AsynqDispatcher enqueues confirmation tasks on the Redis-backed queue.
type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(redisOpt asynq.RedisClientOpt) *AsynqDispatcher {
	return &AsynqDispatcher{client: asynq.NewClient(redisOpt)}
}

func (d *AsynqDispatcher) DispatchBookingConfirmation(ctx context.Context, booking models.Booking) error {
	task, err := NewBookingSMSTask(models.SMSPayload{Booking: booking})
	if err != nil {
		return err
	}
	// Delivery is best-effort: a failed send is logged by the worker, not retried.
	_, err = d.client.EnqueueContext(ctx, task, asynq.MaxRetry(0))
	return err
}
