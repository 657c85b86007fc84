package router

import (
	"arrivals-service/internal/usecase"
	"arrivals-service/pkg/logger"
)

// MessageRouter routes chat messages to appropriate handlers based on text
type MessageRouter struct {
	handlers []usecase.MessageHandler
	logger   logger.Logger
}

// NewMessageRouter creates a new message router
func NewMessageRouter(logger logger.Logger) *MessageRouter {
	return &MessageRouter{
		handlers: make([]usecase.MessageHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler
func (r *MessageRouter) Register(handler usecase.MessageHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered handler", "handler", handler)
}

// GetHandler returns the appropriate handler for a given message text
func (r *MessageRouter) GetHandler(text string) usecase.MessageHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(text) {
			return handler
		}
	}
	return nil
}
