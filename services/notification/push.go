package notification

import (
	"context"
	"fmt"

	"fotoagenda/models"

	"firebase.google.com/go/v4/messaging"
)

type pushClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushSink publishes business notifications to an FCM topic the studio's
// devices subscribe to. Customer messages are ignored.
type PushSink struct {
	client pushClient
	topic  string
}

func NewPushSink(client *messaging.Client, topic string) *PushSink {
	if client == nil {
		return &PushSink{topic: topic}
	}
	return &PushSink{client: client, topic: topic}
}

func (s *PushSink) Name() string { return "push" }

func (s *PushSink) Send(ctx context.Context, msg Message) error {
	if msg.Audience != "" && msg.Audience != models.AudienceBusiness {
		return nil
	}
	if s.client == nil || s.topic == "" {
		return ErrNotConfigured
	}

	data := map[string]string{"type": "booking_confirmed"}
	for k, v := range msg.Data {
		data[k] = v
	}

	_, err := s.client.Send(ctx, &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: msg.Subject,
			Body:  msg.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("push: send to topic %s: %w", s.topic, err)
	}
	return nil
}
