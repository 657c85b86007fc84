package web

import (
	"net/http"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/usecase"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// WebhookHandler receives LINE webhook deliveries and dispatches the
// first event to a registered message handler. The webhook caller always
// gets 200 OK; reply failures stay on our side.
type WebhookHandler struct {
	router  usecase.MessageRouter
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(router usecase.MessageRouter, log logger.Logger, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		router:  router,
		logger:  log,
		metrics: m,
	}
}

// Webhook handles one webhook delivery.
func (h *WebhookHandler) Webhook(c echo.Context) error {
	var request entity.WebhookRequest
	if err := c.Bind(&request); err != nil {
		h.logger.Warn("Failed to decode webhook payload", "error", err)
		return c.String(http.StatusOK, "OK")
	}

	if h.metrics != nil {
		h.metrics.WebhookEvents.Inc()
	}

	if len(request.Events) > 0 {
		event := request.Events[0]
		if event.Type == "message" {
			if handler := h.router.GetHandler(event.Message.Text); handler != nil {
				if err := handler.Handle(c.Request().Context(), event.ReplyToken); err != nil {
					h.logger.Error("Failed to handle webhook message", "error", err)
				}
			}
		}
	}

	return c.String(http.StatusOK, "OK")
}
