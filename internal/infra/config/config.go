package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	PracticumEndpoint string
	TelegramToken     string
	TelegramChatID    int64
	PollInterval      time.Duration
	HTTPTimeout       time.Duration
	UTCOffset         time.Duration
	CronSpecDigest    string // empty disables the daily digest
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = defaultEndpoint
	}

	cfg.PollInterval, err = durationOrDefault("POLL_INTERVAL", 600*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.HTTPTimeout, err = durationOrDefault("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	// Offset between the Practicum API's clock and local dates entered by
	// users in /status requests.
	cfg.UTCOffset, err = durationOrDefault("UTC_OFFSET", 3*time.Hour)
	if err != nil {
		return nil, err
	}

	if raw, ok := os.LookupEnv("CRON_SPEC_DAILY_DIGEST"); ok {
		cfg.CronSpecDigest = raw
	} else {
		cfg.CronSpecDigest = "0 9 * * *" // Default: 9 AM daily
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func durationOrDefault(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
