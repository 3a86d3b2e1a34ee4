package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bistrovoice/config"
	"bistrovoice/models"
	"bistrovoice/services/notification"
	"bistrovoice/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async SMS worker in background. Delivery is
// best-effort end to end: the worker logs failures and moves on.
func InitNotificationWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmSMS, handleBookingSMSTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingSMSTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SMSPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] Invalid payload: %v", err)
			return err
		}

		// The sender logs skip/failure itself; nothing here surfaces to the
		// booking flow.
		return notifSvc.SendBookingConfirmation(ctx, p.Booking)
	}
}
