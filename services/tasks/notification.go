package tasks

import (
	"encoding/json"
	"time"

	"fotoagenda/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationSend = "notification:send"

func NewNotificationTask(msg models.NotificationMessage) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationSend, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// ParseNotificationTask decodes the payload written by NewNotificationTask.
func ParseNotificationTask(task *asynq.Task) (models.NotificationMessage, error) {
	var msg models.NotificationMessage
	err := json.Unmarshal(task.Payload(), &msg)
	return msg, err
}
