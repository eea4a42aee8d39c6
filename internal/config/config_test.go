package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "ATTENDANT_MOCK_FALLBACK", "PHONE_COOLDOWN_SECONDS", "WIDGET_EVENTS_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	// empty values are "set", so string keys keep the empty string; numeric/bool fall back
	assert.Equal(t, "", cfg.App.Port)
	assert.True(t, cfg.Attendant.MockFallback)
	assert.Equal(t, 300, cfg.Phone.CooldownSeconds)
	assert.Equal(t, "https://teste.aiatende.dev.br/api/openai-web", cfg.Attendant.BaseURL)
}

func TestLoadTracing(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4318")
	t.Setenv("LEAD_TTL_MINUTES", "30")

	cfg := Load()

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "jaeger:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, 30, cfg.Lead.TTLMinutes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("ATTENDANT_MOCK_FALLBACK", "false")
	t.Setenv("ATTENDANT_MOCK_DELAY_MS", "1500")
	t.Setenv("PHONE_COOLDOWN_SECONDS", "42")
	t.Setenv("WIDGET_EVENTS_TOPIC", "custom.topic")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Attendant.MockFallback)
	assert.Equal(t, 1500, cfg.Attendant.MockDelayMs)
	assert.Equal(t, 42, cfg.Phone.CooldownSeconds)
	assert.Equal(t, "custom.topic", cfg.Events.Topic)
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("PHONE_COOLDOWN_SECONDS", "five minutes")
	assert.Equal(t, 300, getEnvAsInt("PHONE_COOLDOWN_SECONDS", 300))
}
