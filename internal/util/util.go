package util

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	AlphaVantageKey   string
	QuoteSyncSchedule string
}

// LoadConfig reads configuration from the environment, loading .env first
// if one exists next to the binary.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AlphaVantageKey:   os.Getenv("ALPHA_VANTAGE_KEY"),
		QuoteSyncSchedule: os.Getenv("QUOTE_SYNC_SCHEDULE"),
	}
	if config.QuoteSyncSchedule == "" {
		// weekdays after market close
		config.QuoteSyncSchedule = "0 18 * * 1-5"
	}

	return &config, nil
}

// RequireAlphaVantageKey is for commands that reach the market data API.
func (c Config) RequireAlphaVantageKey() (string, error) {
	if c.AlphaVantageKey == "" {
		return "", fmt.Errorf("ALPHA_VANTAGE_KEY is not set")
	}
	return c.AlphaVantageKey, nil
}
