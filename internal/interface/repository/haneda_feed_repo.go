package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
)

// DefaultHanedaFeedURL is the public arrival feed of Haneda airport.
const DefaultHanedaFeedURL = "https://tokyo-haneda.com/app_resource/flight/data/dms/hdacfarv_v2.json"

// hanedaEnvelope is the wire shape of the Haneda arrival feed. Field
// names on the wire are Japanese, full-width characters included.
type hanedaEnvelope struct {
	FlightInfo []hanedaFlight `json:"flight_info"`
}

type hanedaFlight struct {
	Airlines  []hanedaAirline `json:"航空会社"`
	Scheduled string          `json:"定刻"`
	Status    string          `json:"状況"`
	Updated   string          `json:"変更時刻"`
	Terminal  string          `json:"ターミナル区分"`
	Wing      string          `json:"ウイング区分"`
	Exit      string          `json:"出口"`
	STA       string          `json:"STA"`
	ETA       string          `json:"ETA"`
	ATA       string          `json:"ATA"`
}

type hanedaAirline struct {
	Code         string `json:"ＡＬコード"`
	Name         string `json:"ＡＬ和名称"`
	NameEnglish  string `json:"ＡＬ英名称"`
	FlightNumber string `json:"便名"`
}

// HanedaFeedRepository fetches arrivals from the Haneda airport feed.
// The feed is credential-free.
type HanedaFeedRepository struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewHanedaFeedRepository creates a new Haneda feed repository
func NewHanedaFeedRepository(url string, log logger.Logger, m *metrics.Metrics) repository.FlightSource {
	if url == "" {
		url = DefaultHanedaFeedURL
	}
	return &HanedaFeedRepository{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log,
		metrics:    m,
	}
}

// FetchArrivals fetches the feed and maps each row into a RawArrival.
// A non-success status is logged and treated as no flights.
func (r *HanedaFeedRepository) FetchArrivals(ctx context.Context) ([]entity.RawArrival, error) {
	start := time.Now()
	if r.metrics != nil {
		r.metrics.UpstreamFetches.WithLabelValues("haneda").Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("haneda").Inc()
		}
		return nil, fmt.Errorf("failed to fetch flight feed: %w", err)
	}
	defer resp.Body.Close()

	if r.metrics != nil {
		r.metrics.FetchDuration.WithLabelValues("haneda").Observe(time.Since(start).Seconds())
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Flight feed returned non-success status",
			"status", resp.StatusCode,
			"body", string(body))
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("haneda").Inc()
		}
		return nil, nil
	}

	var envelope hanedaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("haneda").Inc()
		}
		return nil, fmt.Errorf("failed to decode flight feed: %w", err)
	}

	arrivals := make([]entity.RawArrival, 0, len(envelope.FlightInfo))
	for _, flight := range envelope.FlightInfo {
		if len(flight.Airlines) == 0 {
			continue
		}
		arrivals = append(arrivals, entity.RawArrival{
			Airline:      flight.Airlines[0].Name,
			FlightNumber: flight.Airlines[0].FlightNumber,
			ScheduledRaw: flight.Scheduled,
			ActualRaw:    firstNonEmpty(flight.Updated, flight.ATA, flight.ETA),
			Terminal:     flight.Terminal,
			Wing:         flight.Wing,
			Exit:         flight.Exit,
		})
	}

	r.logger.Debug("Fetched arrivals from Haneda feed", "count", len(arrivals))
	return arrivals, nil
}

// firstNonEmpty resolves the actual-time precedence: updated time wins,
// then the actual arrival, then the estimate.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
