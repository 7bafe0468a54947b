package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// Server configuration
	Port         string
	AllowOrigins string

	// Chat behavior
	FallbackThreshold   float64 // matcher confidence below this escalates to a human
	TrustSessionContext bool    // answer from inherited session context even when this turn matched nothing

	// Session store
	SessionTTLMinutes     int // 0 keeps sessions for the process lifetime
	SessionCleanupMinutes int

	// Logging
	LogDir string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		AllowOrigins:          getEnv("ALLOW_ORIGINS", "http://localhost:5173, http://localhost:3000"),
		FallbackThreshold:     getEnvFloat("FALLBACK_THRESHOLD", 0.25),
		TrustSessionContext:   getEnvBool("TRUST_SESSION_CONTEXT", false),
		SessionTTLMinutes:     getEnvInt("SESSION_TTL_MINUTES", 0),
		SessionCleanupMinutes: getEnvInt("SESSION_CLEANUP_MINUTES", 10),
		LogDir:                getEnv("LOG_DIR", "logs"),
	}

	if cfg.FallbackThreshold < 0 || cfg.FallbackThreshold > 1 {
		slog.Warn("FALLBACK_THRESHOLD out of range, using default", "value", cfg.FallbackThreshold)
		cfg.FallbackThreshold = 0.25
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		slog.Warn("Invalid float in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
