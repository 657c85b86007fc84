package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arrivals-service/internal/infrastructure/config"
	"arrivals-service/internal/infrastructure/router"
	"arrivals-service/internal/interface/repository"
	"arrivals-service/internal/interface/web"
	"arrivals-service/internal/usecase"
	"arrivals-service/pkg/logger"
	"arrivals-service/pkg/metrics"
	"arrivals-service/templates"

	domainRepo "arrivals-service/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Arrivals Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	m := metrics.NewMetrics("arrivals")

	// Set up upstream sources
	flightSource := newFlightSource(cfg, log, m)
	taxiSource := repository.NewTaxiStatusRepository(cfg.TaxiInfoURL, log, m)
	messenger := repository.NewLineRepository(cfg.LineAPIBase, cfg.LineChannelToken, log, m)

	// Set up the arrival pipeline
	processor := usecase.NewArrivalProcessor(
		flightSource,
		cfg.WindowBefore,
		cfg.WindowAfter,
		cfg.DisplayLimit,
		log,
		m,
	)

	// Set up chat message routing
	messageRouter := router.NewMessageRouter(log)
	messageRouter.Register(templates.NewArrivalStatusHandler(processor, taxiSource, messenger, log))

	// Set up HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = web.NewHTTPErrorHandler(log)
	e.Use(
		middleware.Recover(),
		web.RequestLogMiddleware(log),
	)

	arrivalsHandler := web.NewArrivalsHandler(processor, log)
	webhookHandler := web.NewWebhookHandler(messageRouter, log, m)

	e.GET("/api/arrivals", arrivalsHandler.Arrivals)
	e.POST("/webhook", webhookHandler.Webhook)

	e.File("/", cfg.StaticDir+"/index.html")
	e.File("/index.html", cfg.StaticDir+"/index.html")
	e.File("/style.css", cfg.StaticDir+"/style.css")
	e.File("/script.js", cfg.StaticDir+"/script.js")
	e.GET("/favicon.ico", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Arrivals Service stopped")
}

// newFlightSource picks the configured upstream feed.
func newFlightSource(cfg *config.Config, log logger.Logger, m *metrics.Metrics) domainRepo.FlightSource {
	switch cfg.FlightSource {
	case "odpt":
		return repository.NewOdptFeedRepository(cfg.FlightFeedURL, cfg.OdptConsumerKey, log, m)
	default:
		return repository.NewHanedaFeedRepository(cfg.FlightFeedURL, log, m)
	}
}
