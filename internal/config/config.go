package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application. It is read once at
// startup and never mutated.
type Config struct {
	Port            string
	SlackWebhookURL string
	SigningSecret   string
	ForwardTimeout  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	webhookURL := getEnv("SLACK_WEBHOOK_URL", "")
	secret := getEnv("WEBHOOK_SECRET", "")
	timeoutSecs := getEnvInt("FORWARD_TIMEOUT_SECONDS", 10)

	if webhookURL == "" {
		return nil, fmt.Errorf("SLACK_WEBHOOK_URL is required")
	}

	return &Config{
		Port:            port,
		SlackWebhookURL: webhookURL,
		SigningSecret:   secret,
		ForwardTimeout:  time.Duration(timeoutSecs) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
