package router

import (
	"context"
	"testing"

	"arrivals-service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type staticHandler struct {
	trigger string
}

func (h *staticHandler) CanHandle(text string) bool {
	return text == h.trigger
}

func (h *staticHandler) Handle(ctx context.Context, replyToken string) error {
	return nil
}

func TestGetHandler(t *testing.T) {
	r := NewMessageRouter(logger.NewNop())
	first := &staticHandler{trigger: "到着状況"}
	second := &staticHandler{trigger: "ヘルプ"}
	r.Register(first)
	r.Register(second)

	assert.Equal(t, first, r.GetHandler("到着状況"))
	assert.Equal(t, second, r.GetHandler("ヘルプ"))
	assert.Nil(t, r.GetHandler("unknown"))
}

func TestGetHandlerEmptyRouter(t *testing.T) {
	r := NewMessageRouter(logger.NewNop())
	assert.Nil(t, r.GetHandler("到着状況"))
}
