package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/cointrack")
	t.Setenv("AUTH0_DOMAIN", "cointrack.eu.auth0.com")
	t.Setenv("AUTH0_AUDIENCE", "https://api.cointrack.app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 6, cfg.TrendMonths)
	assert.Nil(t, cfg.RecurringHistoryCutoff)
	assert.Equal(t, time.Hour, cfg.RecurringScheduleInterval)
	assert.Equal(t, ProviderOpenRouter, cfg.AI.Provider)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.S3.URLExpiry)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://cointrack.app,")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("WRITE_TIMEOUT", "5s")
	t.Setenv("TREND_MONTHS", "12")
	t.Setenv("RECURRING_HISTORY_CUTOFF", "2026-01-01")
	t.Setenv("RECURRING_SCHEDULE_INTERVAL", "15m")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("OPENROUTER_BASE_URL", "http://localhost:9999/v1/")
	t.Setenv("AI_MAX_RETRIES", "0")
	t.Setenv("S3_BUCKET", "cointrack-reports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "https://cointrack.app"}, cfg.CORSOrigins)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 12, cfg.TrendMonths)
	require.NotNil(t, cfg.RecurringHistoryCutoff)
	assert.Equal(t, 2026, cfg.RecurringHistoryCutoff.Year())
	assert.Equal(t, time.January, cfg.RecurringHistoryCutoff.Month())
	assert.Equal(t, 15*time.Minute, cfg.RecurringScheduleInterval)
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, "http://localhost:9999/v1", cfg.AI.BaseURL)
	assert.Equal(t, 0, cfg.AI.MaxRetries)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoad_GeminiProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("OPENROUTER_API_KEY", "sk-ignored")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "gm-test", cfg.AI.APIKey)
	assert.Equal(t, "gemini-2.0-flash-001", cfg.AI.Model)
	assert.Empty(t, cfg.AI.BaseURL)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing database url", "DATABASE_URL", ""},
		{"missing audience", "AUTH0_AUDIENCE", ""},
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"bad write timeout", "WRITE_TIMEOUT", "ten"},
		{"trend months too large", "TREND_MONTHS", "24"},
		{"bad cutoff", "RECURRING_HISTORY_CUTOFF", "01/01/2026"},
		{"negative retries", "AI_MAX_RETRIES", "-1"},
		{"unknown provider", "AI_PROVIDER", "llama"},
		{"zero burst", "AI_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
