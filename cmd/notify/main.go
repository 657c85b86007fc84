// Sends a test push message through the configured LINE channel, to
// verify credentials without waiting for a webhook event.
package main

import (
	"context"
	"time"

	"arrivals-service/internal/domain/entity"
	"arrivals-service/internal/infrastructure/config"
	"arrivals-service/internal/interface/repository"
	"arrivals-service/pkg/logger"
)

func main() {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cfg.LineChannelToken == "" || cfg.LineUserID == "" {
		log.Fatal("LINE_CHANNEL_TOKEN and LINE_USER_ID must be set")
	}

	messenger := repository.NewLineRepository(cfg.LineAPIBase, cfg.LineChannelToken, log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	message := entity.NewTextMessage("【テスト通知】\nこれはテストメッセージです。\nこのメッセージが届けば、LINE通知の設定は正常に完了しています。✈")
	if err := messenger.Push(ctx, cfg.LineUserID, []entity.TextMessage{message}); err != nil {
		log.Fatal("Failed to send test notification", "error", err)
	}

	log.Info("Test notification sent", "to", cfg.LineUserID)
}
