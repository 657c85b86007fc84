package templates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// TriggerPhrase is the chat message that requests the arrival digest.
	TriggerPhrase = "到着状況"

	taxiStatusHeader   = "[タクシー待機所情報]"
	flightStatusHeader = "[フライト到着状況]"

	// NoInformationMessage is sent when neither source produced anything.
	NoInformationMessage = "現在、表示できる情報がありません。"
)

// arrivalPipeline is the slice of the arrival processor this handler
// needs; it keeps now explicit.
type arrivalPipeline interface {
	CurrentArrivals(ctx context.Context, now time.Time) []entity.Arrival
}

// ArrivalStatusHandler answers the arrival-status trigger phrase with the
// taxi stand status and the current arrival digest.
type ArrivalStatusHandler struct {
	processor  arrivalPipeline
	taxiSource repository.TaxiStatusSource
	messenger  repository.MessengerRepository
	logger     logger.Logger
}

// NewArrivalStatusHandler creates a new arrival status handler
func NewArrivalStatusHandler(
	processor arrivalPipeline,
	taxiSource repository.TaxiStatusSource,
	messenger repository.MessengerRepository,
	log logger.Logger,
) *ArrivalStatusHandler {
	return &ArrivalStatusHandler{
		processor:  processor,
		taxiSource: taxiSource,
		messenger:  messenger,
		logger:     log,
	}
}

// CanHandle determines if this handler responds to the given message text
func (h *ArrivalStatusHandler) CanHandle(text string) bool {
	return text == TriggerPhrase
}

// Handle fetches both sources, composes the reply and sends it. The two
// fetches have no data dependency and run concurrently.
func (h *ArrivalStatusHandler) Handle(ctx context.Context, replyToken string) error {
	now := time.Now()

	var (
		arrivals []entity.Arrival
		taxiText string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		arrivals = h.processor.CurrentArrivals(gctx, now)
		return nil
	})
	g.Go(func() error {
		text, err := h.taxiSource.FetchStatusText(gctx)
		if err != nil {
			h.logger.Warn("Failed to fetch taxi status", "error", err)
			return nil
		}
		taxiText = text
		return nil
	})
	g.Wait()

	messages := ComposeStatusMessages(taxiText, arrivals)
	return h.messenger.Reply(ctx, replyToken, messages)
}

// ComposeStatusMessages builds the outbound reply: the taxi block when
// present, then the flight digest when present, else the fixed
// no-information message.
func ComposeStatusMessages(taxiText string, arrivals []entity.Arrival) []entity.TextMessage {
	var messages []entity.TextMessage

	if taxiText != "" {
		messages = append(messages, entity.NewTextMessage(taxiStatusHeader+"\n"+taxiText))
	}
	if len(arrivals) > 0 {
		messages = append(messages, entity.NewTextMessage(flightStatusHeader+"\n"+FormatArrivalDigest(arrivals)))
	}
	if len(messages) == 0 {
		messages = append(messages, entity.NewTextMessage(NoInformationMessage))
	}
	return messages
}

// FormatArrivalDigest renders one paragraph per arrival, blank line
// between paragraphs. The actual-time segment appears only when it
// differs from the scheduled time.
func FormatArrivalDigest(arrivals []entity.Arrival) string {
	paragraphs := make([]string, 0, len(arrivals))
	for _, arrival := range arrivals {
		timeInfo := "予定: " + arrival.ScheduledLabel
		if arrival.ActualLabel != "" && arrival.ActualLabel != arrival.ScheduledLabel {
			timeInfo += " / 実際: " + arrival.ActualLabel
		}
		paragraphs = append(paragraphs, fmt.Sprintf("[%s] [%s]\n%s\nターミナル: %s\n出口: %s",
			arrival.Airline,
			arrival.FlightNumber,
			timeInfo,
			arrival.Terminal,
			arrival.Exit,
		))
	}
	return strings.Join(paragraphs, "\n\n")
}
