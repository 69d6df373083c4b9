package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fotoagenda/config"
	"fotoagenda/services/notification"
	"fotoagenda/services/tasks"
	"fotoagenda/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt returns the asynq connection settings shared by the client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitNotificationWorker runs the async notification worker in background.
// Queued messages are delivered through the notifier's sinks.
func InitNotificationWorker(ctx context.Context, delivery *notification.Notifier) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationSend, handleNotificationTask(delivery))

	go monitorRedisConnection(ctx)

	// Start async worker with retry logic
	go func() {
		logger.Info("[NotificationWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[NotificationWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[NotificationWorker] Max retry attempts reached, queued notifications will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleNotificationTask(delivery *notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		msg, err := tasks.ParseNotificationTask(task)
		if err != nil {
			logger.Error("[NotificationHandler] Invalid payload", zap.Error(err))
			// Malformed payloads never succeed on retry.
			return asynq.SkipRetry
		}

		logger.Info("[NotificationHandler] Delivering notification",
			zap.String("audience", msg.Audience), zap.String("channel", msg.Channel), zap.String("subject", msg.Subject))

		err = delivery.Deliver(ctx, msg)
		if errors.Is(err, notification.ErrUnknownChannel) {
			logger.Error("[NotificationHandler] Dropping task for unknown channel", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}
}

// monitorRedisConnection pings the queue Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context) {
	opt := QueueRedisOpt()
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("[NotificationWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
