package intelligence

import (
	"context"
	"fmt"
	"time"

	"fotoagenda/models"
	"fotoagenda/services/availability"
	"fotoagenda/services/booking"
	"fotoagenda/services/notification"
)

// LLMClient is the intent extractor backend. turns ends with the user's
// latest message; the reply is the raw model text.
type LLMClient interface {
	GenerateContent(ctx context.Context, system string, turns []models.Turn) (string, error)
}

// AIService runs one conversational turn of the booking assistant.
type AIService interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultAIService implements AIService.
type DefaultAIService struct {
	LLM      LLMClient
	Prompt   *PromptBuilder
	Sessions SessionStore
	Locker   *SessionLocker
	Engine   *availability.Engine
	Bookings booking.BookingService
	Notifier notification.BookingNotifier
	// Timeout bounds each extractor call.
	Timeout time.Duration
	Now     func() time.Time
}

func NewAIService(
	llm LLMClient,
	prompt *PromptBuilder,
	sessions SessionStore,
	engine *availability.Engine,
	bookings booking.BookingService,
	notifier notification.BookingNotifier,
	timeout time.Duration,
) (*DefaultAIService, error) {
	if llm == nil || sessions == nil || engine == nil || bookings == nil {
		return nil, fmt.Errorf("ai service initialization error: llm, sessions, engine and bookings are required")
	}
	if prompt == nil {
		prompt = &PromptBuilder{}
	}
	return &DefaultAIService{
		LLM:      llm,
		Prompt:   prompt,
		Sessions: sessions,
		Locker:   NewSessionLocker(),
		Engine:   engine,
		Bookings: bookings,
		Notifier: notifier,
		Timeout:  timeout,
		Now:      time.Now,
	}, nil
}

// SessionKey scopes a frontend session ID to its business.
func SessionKey(businessID, sessionID string) string {
	return businessID + ":" + sessionID
}
