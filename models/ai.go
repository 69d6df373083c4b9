package models

import "time"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentNone              Intent = ""
	IntentCheckAvailability Intent = "check_availability"
	IntentBook              Intent = "book"
	IntentSmalltalk         Intent = "smalltalk"
	IntentUnknown           Intent = "unknown"
)

// Chat reply statuses.
const (
	StatusSuccess  = "success"
	StatusNeedInfo = "need_info"
	StatusError    = "error"
)

// Turn roles, named the way chat-completion APIs expect them.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxHistoryTurns caps the conversation history kept per session.
const MaxHistoryTurns = 10

// ChatRequest is the payload of POST /agent/chat.
type ChatRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
	SessionID  string `json:"session_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// ChatResponse is what the agent returns to the frontend.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

// Turn is one role-tagged message of the conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationSession is the per-session booking state.
type ConversationSession struct {
	Intent        Intent    `json:"intent,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	SlotConfirmed bool      `json:"slotConfirmed"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	EventDate     string    `json:"eventDate,omitempty"`
	EventDetails  string    `json:"eventDetails,omitempty"`
	History       []Turn    `json:"history,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AppendHistory adds turns and keeps only the most recent MaxHistoryTurns.
func (s *ConversationSession) AppendHistory(turns ...Turn) {
	s.History = append(s.History, turns...)
	if len(s.History) > MaxHistoryTurns {
		s.History = append([]Turn(nil), s.History[len(s.History)-MaxHistoryTurns:]...)
	}
}

// Clone returns a deep copy so a failed turn can be discarded without side effects.
func (s *ConversationSession) Clone() *ConversationSession {
	c := *s
	c.History = append([]Turn(nil), s.History...)
	return &c
}

// UpdateOp tells how an extracted field changes the session.
type UpdateOp int

const (
	Unchanged UpdateOp = iota
	Clear
	Set
)

// FieldUpdate is a tagged update for one session field.
type FieldUpdate struct {
	Op    UpdateOp
	Value string
}

// Apply returns the new field value given the current one.
func (u FieldUpdate) Apply(current string) string {
	switch u.Op {
	case Clear:
		return ""
	case Set:
		return u.Value
	default:
		return current
	}
}

// Extraction is the structured output of the intent extractor.
type Extraction struct {
	Intent        FieldUpdate
	Date          FieldUpdate
	Time          FieldUpdate
	EventDetails  FieldUpdate
	CustomerName  FieldUpdate
	CustomerEmail FieldUpdate
	CustomerPhone FieldUpdate
	EventDate     FieldUpdate
	Message       string
}
