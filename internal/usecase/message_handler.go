package usecase

import (
	"context"
)

// MessageHandler defines the interface for chat message handlers
type MessageHandler interface {
	// CanHandle determines if this handler responds to the given message text
	CanHandle(text string) bool

	// Handle composes and sends the reply for the event
	Handle(ctx context.Context, replyToken string) error
}

// MessageRouter routes incoming chat messages to the appropriate handler
type MessageRouter interface {
	// Register registers a handler
	Register(handler MessageHandler)

	// GetHandler returns the appropriate handler for a message text
	GetHandler(text string) MessageHandler
}
