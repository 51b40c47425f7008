// Package config provides application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/retry"
)

// MissingVarError is a fatal startup error: a required environment variable
// is absent and the process must not proceed.
type MissingVarError struct {
	Var string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required env var: %s", e.Var)
}

// Config holds all application configuration.
type Config struct {
	// Polish capability. Enabled when ModelEndpoint is set; then APIKey is
	// required.
	ModelEndpoint string
	APIKey        string
	ModelName     string
	PolishRetry   retry.Policy

	// Enrichment adapter toggle.
	EnableEnrichment bool
	EnrichmentAPIKey string
	EnrichRetry      retry.Policy

	// Optional networked session backend. Empty means in-memory.
	RedisAddr     string
	RedisPassword string

	Port     string
	LogLevel slog.Level
}

// PolishEnabled reports whether the polish capability is configured.
func (c *Config) PolishEnabled() bool {
	return c.ModelEndpoint != ""
}

// EnrichmentEnabled reports whether the enrichment adapter should run.
// Mirrors the toggle-plus-key gate: both must be present.
func (c *Config) EnrichmentEnabled() bool {
	return c.EnableEnrichment && c.EnrichmentAPIKey != ""
}

// Load reads configuration from the environment, after best-effort loading
// of a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ModelEndpoint: getEnv("SALESPIPE_MODEL_ENDPOINT", ""),
		APIKey:        getEnv("SALESPIPE_API_KEY", ""),
		ModelName:     getEnv("SALESPIPE_MODEL", "polish-v1"),
		PolishRetry: retry.Policy{
			Attempts:     getEnvInt("POLISH_RETRY_ATTEMPTS", 2),
			InitialDelay: time.Duration(getEnvInt("POLISH_RETRY_DELAY_MS", 500)) * time.Millisecond,
			Multiplier:   2,
		},
		EnableEnrichment: getEnvBool("ENABLE_ENRICHMENT", false),
		EnrichmentAPIKey: getEnv("ENRICHMENT_API_KEY", ""),
		EnrichRetry: retry.Policy{
			Attempts:     getEnvInt("ENRICH_RETRY_ATTEMPTS", 2),
			InitialDelay: time.Duration(getEnvInt("ENRICH_RETRY_DELAY_MS", 1000)) * time.Millisecond,
			Multiplier:   2,
		},
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.PolishEnabled() && cfg.APIKey == "" {
		return nil, &MissingVarError{Var: "SALESPIPE_API_KEY"}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
