package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	CatalogSeed       int64
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	NotifyDelay       time.Duration
}

// LoadConfig reads .env when present, then environment variables,
// applying defaults and validating basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		CatalogSeed:       42,
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		NotifyDelay:       2 * time.Second,
	}
	if raw := strings.TrimSpace(os.Getenv("CATALOG_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CATALOG_SEED must be an integer")
		}
		cfg.CatalogSeed = seed
	}
	if raw := strings.TrimSpace(os.Getenv("NOTIFY_DELAY_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("NOTIFY_DELAY_MS must be a non-negative integer")
		}
		cfg.NotifyDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
