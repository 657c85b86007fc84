// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string

	// Flight feed
	FlightSource    string // "haneda" or "odpt"
	FlightFeedURL   string
	OdptConsumerKey string

	// Taxi stand status page
	TaxiInfoURL string

	// LINE messaging
	LineChannelToken string
	LineUserID       string
	LineAPIBase      string

	// Arrival window
	WindowBefore time.Duration
	WindowAfter  time.Duration
	DisplayLimit int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		StaticDir:    getEnv("STATIC_DIR", "static"),

		FlightSource:    getEnv("FLIGHT_SOURCE", "haneda"),
		FlightFeedURL:   getEnv("FLIGHT_FEED_URL", ""),
		OdptConsumerKey: getEnv("ODPT_CONSUMER_KEY", ""),

		TaxiInfoURL: getEnv("TAXI_INFO_URL", "https://ttc.taxi-inf.jp/"),

		LineChannelToken: getEnv("LINE_CHANNEL_TOKEN", ""),
		LineUserID:       getEnv("LINE_USER_ID", ""),
		LineAPIBase:      getEnv("LINE_API_BASE", "https://api.line.me"),

		WindowBefore: time.Duration(getEnvAsInt("WINDOW_BEFORE_MIN", 60)) * time.Minute,
		WindowAfter:  time.Duration(getEnvAsInt("WINDOW_AFTER_MIN", 120)) * time.Minute,
		DisplayLimit: getEnvAsInt("DISPLAY_LIMIT", 5),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
