package notification

import (
	"context"
	"errors"
	"fmt"

	"fotoagenda/services/tasks"

	"github.com/hibiken/asynq"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueSink hands messages to the asynq worker instead of delivering them
// inline. Each message becomes one task per downstream channel, so a retry
// only repeats the channel that failed.
type QueueSink struct {
	client   enqueuer
	channels []string
}

// NewQueueSink enqueues for the named worker-side channels. With no channels
// a single task targets every sink of the worker.
func NewQueueSink(client *asynq.Client, channels ...string) *QueueSink {
	return &QueueSink{client: client, channels: channels}
}

func (s *QueueSink) Name() string { return "queue" }

func (s *QueueSink) Send(ctx context.Context, msg Message) error {
	if len(s.channels) == 0 {
		return s.enqueue(ctx, msg)
	}

	var errs []error
	for _, channel := range s.channels {
		pinned := msg
		pinned.Channel = channel
		if err := s.enqueue(ctx, pinned); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *QueueSink) enqueue(ctx context.Context, msg Message) error {
	task, opts, err := tasks.NewNotificationTask(msg)
	if err != nil {
		return fmt.Errorf("queue: build task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("queue: enqueue %q for %q: %w", msg.Subject, msg.Channel, err)
	}
	return nil
}
