package repository

import (
	"context"

	"arrivals-service/internal/domain/entity"
)

// MessengerRepository defines the interface for the chat platform.
type MessengerRepository interface {
	Reply(ctx context.Context, replyToken string, messages []entity.TextMessage) error
	Push(ctx context.Context, to string, messages []entity.TextMessage) error
}
