package config

import (
	"fmt"
	"os"
)

const DefaultAPIBaseURL = "https://api.sportsdata.io"

type Config struct {
	API     APIConfig
	Notify  NotifyConfig
	Logging LoggingConfig
}

type APIConfig struct {
	BaseURL string
	Key     string
}

type NotifyConfig struct {
	// Topic is an SNS topic ARN or a redis:// Pub/Sub URL.
	Topic string
}

type LoggingConfig struct {
	Development bool
	Level       string
}

// LoadFromEnv builds the configuration once per process start.
func LoadFromEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("NBA_API_BASE_URL", DefaultAPIBaseURL),
			Key:     os.Getenv("NBA_API_KEY"),
		},
		Notify: NotifyConfig{
			Topic: os.Getenv("SNS_TOPIC_ARN"),
		},
		Logging: LoggingConfig{
			Development: getEnvBool("LOG_DEVELOPMENT", false),
			Level:       getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate reports the first missing setting. Callers only warn on it:
// a missing key or topic shows up as a fetch or publish failure.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("NBA_API_BASE_URL is required")
	}

	if c.API.Key == "" {
		return fmt.Errorf("NBA_API_KEY is required")
	}

	if c.Notify.Topic == "" {
		return fmt.Errorf("SNS_TOPIC_ARN is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}
