package notification

import (
	"context"
	"fmt"

	"fotoagenda/config"

	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSink sends plain-text mail over SMTP, one message per recipient.
type EmailSink struct {
	sender mailSender
	from   string
}

// NewEmailSink builds a sink from the SMTP settings. Without a user and a
// password every Send returns ErrNotConfigured.
func NewEmailSink(cfg config.Config) *EmailSink {
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		return &EmailSink{}
	}
	return &EmailSink{
		sender: gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPUser,
	}
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Send(ctx context.Context, msg Message) error {
	if s.sender == nil {
		return ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("email: message %q has no recipients: %w", msg.Subject, ErrNotConfigured)
	}

	mails := make([]*gomail.Message, 0, len(msg.To))
	for _, to := range msg.To {
		m := gomail.NewMessage()
		m.SetHeader("From", s.from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", msg.Subject)
		m.SetBody("text/plain", msg.Body)
		mails = append(mails, m)
	}

	if err := s.sender.DialAndSend(mails...); err != nil {
		return fmt.Errorf("email: send %q: %w", msg.Subject, err)
	}
	return nil
}
