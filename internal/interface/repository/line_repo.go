package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/domain/repository"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
)

// LineRepository handles sending messages to the LINE messaging API
type LineRepository struct {
	logger       logger.Logger
	metrics      *metrics.Metrics
	baseURL      string
	channelToken string
	httpClient   *http.Client
}

// NewLineRepository creates a new LINE repository
func NewLineRepository(baseURL, channelToken string, log logger.Logger, m *metrics.Metrics) repository.MessengerRepository {
	if baseURL == "" {
		baseURL = "https://api.line.me"
	}
	return &LineRepository{
		logger:       log,
		metrics:      m,
		baseURL:      baseURL,
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Reply answers a webhook event through its reply token.
func (r *LineRepository) Reply(ctx context.Context, replyToken string, messages []entity.TextMessage) error {
	body := entity.ReplyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	}
	if err := r.post(ctx, "/v2/bot/message/reply", body); err != nil {
		return err
	}

	if r.metrics != nil {
		r.metrics.RepliesSent.Inc()
	}
	r.logger.Info("Reply sent", "messages", len(messages))
	return nil
}

// Push sends messages to a user outside of a reply context.
func (r *LineRepository) Push(ctx context.Context, to string, messages []entity.TextMessage) error {
	body := entity.PushRequest{
		To:       to,
		Messages: messages,
	}
	if err := r.post(ctx, "/v2/bot/message/push", body); err != nil {
		return err
	}

	r.logger.Info("Push sent", "to", to, "messages", len(messages))
	return nil
}

func (r *LineRepository) post(ctx context.Context, path string, body interface{}) error {
	if r.channelToken == "" {
		r.logger.Warn("LINE channel token not configured, dropping message")
		return nil
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.channelToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("LINE API returned status %d: %v", resp.StatusCode, errorBody)
	}

	return nil
}
