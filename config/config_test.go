package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.InDelta(t, 0.25, cfg.FallbackThreshold, 0.001)
	assert.False(t, cfg.TrustSessionContext)
	assert.Equal(t, 0, cfg.SessionTTLMinutes)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_DIR", "/var/log/faqbot")
	t.Setenv("FALLBACK_THRESHOLD", "0.5")
	t.Setenv("TRUST_SESSION_CONTEXT", "true")
	t.Setenv("SESSION_TTL_MINUTES", "60")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/log/faqbot", cfg.LogDir)
	assert.InDelta(t, 0.5, cfg.FallbackThreshold, 0.001)
	assert.True(t, cfg.TrustSessionContext)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("FALLBACK_THRESHOLD", "nonsense")
	t.Setenv("SESSION_TTL_MINUTES", "soon")
	t.Setenv("TRUST_SESSION_CONTEXT", "maybe")

	cfg := LoadConfig()

	assert.InDelta(t, 0.25, cfg.FallbackThreshold, 0.001)
	assert.Equal(t, 0, cfg.SessionTTLMinutes)
	assert.False(t, cfg.TrustSessionContext)
}

func TestLoadConfig_ThresholdOutOfRange(t *testing.T) {
	t.Setenv("FALLBACK_THRESHOLD", "1.5")

	cfg := LoadConfig()
	assert.InDelta(t, 0.25, cfg.FallbackThreshold, 0.001)
}
