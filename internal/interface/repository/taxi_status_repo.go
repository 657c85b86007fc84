package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
)

// taxiStatusMarker opens the status block on the taxi stand page; the
// block runs until the first date-like token after it.
const (
	taxiStatusMarker  = "羽田空港TPシステム"
	taxiStatusEndMark = "202"
	taxiStatusMaxLen  = 1000
)

var (
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	multiNewlinePattern = regexp.MustCompile(`\n\n+`)
	multiSpacePattern   = regexp.MustCompile(`\s\s+`)
)

// TaxiStatusRepository scrapes the taxi stand status text out of the
// taxi information page. The page has no stable structure; this is a
// best-effort substring extraction keyed on literal marker text.
type TaxiStatusRepository struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewTaxiStatusRepository creates a new taxi status repository
func NewTaxiStatusRepository(url string, log logger.Logger, m *metrics.Metrics) repository.TaxiStatusSource {
	return &TaxiStatusRepository{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log,
		metrics:    m,
	}
}

// FetchStatusText fetches the page and extracts the status block.
// Any failure yields an empty string, never an error surfaced upward.
func (r *TaxiStatusRepository) FetchStatusText(ctx context.Context) (string, error) {
	start := time.Now()
	if r.metrics != nil {
		r.metrics.UpstreamFetches.WithLabelValues("taxi").Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if r.metrics != nil {
			r.metrics.UpstreamErrors.WithLabelValues("taxi").Inc()
		}
		r.logger.Warn("Failed to fetch taxi status page", "error", err)
		return "", nil
	}
	defer resp.Body.Close()

	if r.metrics != nil {
		r.metrics.FetchDuration.WithLabelValues("taxi").Observe(time.Since(start).Seconds())
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("Taxi status page returned non-success status", "status", resp.StatusCode)
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Warn("Failed to read taxi status page", "error", err)
		return "", nil
	}

	return ExtractTaxiStatus(string(body)), nil
}

// ExtractTaxiStatus pulls the status block out of the raw page text:
// from the marker up to the next date-like token, capped when no end
// token follows, with tags and runs of whitespace cleaned up.
func ExtractTaxiStatus(page string) string {
	text := strings.ReplaceAll(page, "\r\n", "\n")

	start := strings.Index(text, taxiStatusMarker)
	if start < 0 {
		return ""
	}

	end := strings.Index(text[start:], taxiStatusEndMark)
	if end >= 0 {
		text = text[start : start+end]
	} else {
		stop := start + taxiStatusMaxLen
		if stop > len(text) {
			stop = len(text)
		}
		text = text[start:stop]
	}

	text = strings.TrimSpace(text)
	text = multiNewlinePattern.ReplaceAllString(text, "\n")
	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = htmlTagPattern.ReplaceAllString(text, "")
	return text
}
