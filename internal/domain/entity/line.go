// internal/domain/entity/line.go
package entity

// WebhookRequest is the envelope LINE delivers to the webhook endpoint.
type WebhookRequest struct {
	Destination string         `json:"destination,omitempty"`
	Events      []WebhookEvent `json:"events"`
}

// WebhookEvent is a single event inside a webhook delivery.
type WebhookEvent struct {
	Type       string         `json:"type"`
	ReplyToken string         `json:"replyToken,omitempty"`
	Message    WebhookMessage `json:"message,omitempty"`
}

// WebhookMessage is the message body of a message-type event.
type WebhookMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextMessage is one outbound chat message.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextMessage builds a text-type outbound message.
func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// ReplyRequest is the body of a reply call to the messaging API.
type ReplyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []TextMessage `json:"messages"`
}

// PushRequest is the body of a push call to the messaging API.
type PushRequest struct {
	To       string        `json:"to"`
	Messages []TextMessage `json:"messages"`
}
