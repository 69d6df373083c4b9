package models

// Notification audiences.
const (
	AudienceCustomer = "customer"
	AudienceBusiness = "business"
)

// NotificationMessage is one outbound notification. It is also the payload of
// queued notification tasks.
type NotificationMessage struct {
	Audience string            `json:"audience"`
	To       []string          `json:"to,omitempty"`
	Subject  string            `json:"subject"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`

	// Channel pins a queued message to one sink by name. Empty means every sink.
	Channel string `json:"channel,omitempty"`
}
