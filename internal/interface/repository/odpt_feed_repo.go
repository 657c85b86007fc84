package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
)

// DefaultOdptEndpoint is the MLIT open-data arrival information endpoint.
const DefaultOdptEndpoint = "https://api.odpt.org/api/v4/odpt:FlightInformationArrival"

// odptFlight is the wire shape of one odpt:FlightInformationArrival
// record. Times are bare HH:MM clock strings; dc:date carries the record
// timestamp in ISO form.
type odptFlight struct {
	Date         string `json:"dc:date"`
	Airline      string `json:"odpt:airline"`
	FlightNumber string `json:"odpt:flightNumber"`
	Scheduled    string `json:"odpt:scheduledArrivalTime"`
	Estimated    string `json:"odpt:estimatedArrivalTime"`
	Actual       string `json:"odpt:actualArrivalTime"`
	Status       string `json:"odpt:flightStatus"`
	Terminal     string `json:"odpt:arrivalAirportTerminal"`
	Gate         string `json:"odpt:arrivalGate"`
	IsDomestic   bool   `json:"odpt:isDomestic"`
}

// OdptFeedRepository fetches arrivals from the ODPT open-data API. The
// API is key-based; a missing key degrades to an empty result.
type OdptFeedRepository struct {
	endpoint    string
	consumerKey string
	httpClient  *http.Client
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewOdptFeedRepository creates a new ODPT feed repository
func NewOdptFeedRepository(endpoint, consumerKey string, log logger.Logger, m *metrics.Metrics) repository.FlightSource {
	if endpoint == "" {
		endpoint = DefaultOdptEndpoint
	}
	return &OdptFeedRepository{
		endpoint:    endpoint,
		consumerKey: consumerKey,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      log,
		metrics:     m,
	}
}

// FetchArrivals fetches domestic arrival records for Haneda and maps
// them into RawArrivals.
func (r *OdptFeedRepository) FetchArrivals(ctx context.Context) ([]entity.RawArrival, error) {
	if r.consumerKey == "" {
		r.logger.Warn("ODPT consumer key not configured, returning no flights")
		return nil, nil
	}

	start := time.Now()
	if r.metrics != nil {
		r.metrics.UpstreamFetches.WithLabelValues("odpt").Inc()
	}

	params := url.Values{}
	params.Set("odpt:arrivalAirport", "odpt.Airport:HND")
	params.Set("acl:consumerKey", r.consumerKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("odpt").Inc()
		}
		return nil, fmt.Errorf("failed to fetch flight feed: %w", err)
	}
	defer resp.Body.Close()

	if r.metrics != nil {
		r.metrics.FetchDuration.WithLabelValues("odpt").Observe(time.Since(start).Seconds())
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("ODPT feed returned non-success status", "status", resp.StatusCode)
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("odpt").Inc()
		}
		return nil, nil
	}

	var flights []odptFlight
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("odpt").Inc()
		}
		return nil, fmt.Errorf("failed to decode flight feed: %w", err)
	}

	arrivals := make([]entity.RawArrival, 0, len(flights))
	for _, flight := range flights {
		if !flight.IsDomestic {
			continue
		}
		arrivals = append(arrivals, entity.RawArrival{
			Airline:      strings.TrimPrefix(flight.Airline, "odpt.Operator:"),
			FlightNumber: flight.FlightNumber,
			ScheduledRaw: flight.Scheduled,
			ActualRaw:    firstNonEmpty(flight.Actual, flight.Estimated),
			Terminal:     odptTerminalCode(flight.Terminal),
			Exit:         flight.Gate,
			Date:         odptRecordDate(flight.Date),
		})
	}

	r.logger.Debug("Fetched arrivals from ODPT feed", "count", len(arrivals))
	return arrivals, nil
}

// odptTerminalCode reduces a terminal identifier such as
// "odpt.AirportTerminal:HND.DomesticTerminal1" or a plain "T1" to the
// bare terminal digit used downstream.
func odptTerminalCode(raw string) string {
	for _, code := range []string{"1", "2", "3"} {
		if strings.Contains(raw, "Terminal"+code) || strings.Contains(raw, "T"+code) {
			return code
		}
	}
	return ""
}

// odptRecordDate extracts the YYYY-MM-DD date portion from the ISO
// record timestamp, empty when absent.
func odptRecordDate(isoDate string) string {
	if len(isoDate) < 10 {
		return ""
	}
	return isoDate[:10]
}
