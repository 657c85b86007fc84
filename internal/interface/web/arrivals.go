package web

import (
	"context"
	"net/http"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

type arrivalPipeline interface {
	CurrentArrivals(ctx context.Context, now time.Time) []entity.Arrival
}

// ArrivalsHandler serves the JSON projection of the current arrivals.
type ArrivalsHandler struct {
	processor arrivalPipeline
	logger    logger.Logger
}

// NewArrivalsHandler creates a new arrivals handler
func NewArrivalsHandler(processor arrivalPipeline, log logger.Logger) *ArrivalsHandler {
	return &ArrivalsHandler{
		processor: processor,
		logger:    log,
	}
}

// Arrivals returns the windowed arrival list as a JSON array. Upstream
// failures were already absorbed into an empty list; only an internal
// failure while composing the response surfaces as an error.
func (h *ArrivalsHandler) Arrivals(c echo.Context) error {
	arrivals := h.processor.CurrentArrivals(c.Request().Context(), time.Now())

	views := make([]entity.ArrivalView, 0, len(arrivals))
	for _, arrival := range arrivals {
		views = append(views, arrival.View())
	}
	return c.JSON(http.StatusOK, views)
}
