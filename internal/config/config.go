package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Auth0
	Auth0Domain   string
	Auth0Audience string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Aggregation
	Location     *time.Location
	WriteTimeout time.Duration
	TrendMonths  int
	// RecurringHistoryCutoff hides recurring spend in trend months before it; nil disables
	RecurringHistoryCutoff *time.Time
	// RecurringScheduleInterval is how often overdue next dates are advanced
	RecurringScheduleInterval time.Duration

	AI AIConfig

	// S3 Storage
	S3 S3Config
}

// AI providers
const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// AIConfig holds the text-generation provider configuration.
// APIKey and Model belong to the selected Provider.
type AIConfig struct {
	Provider           string
	APIKey             string
	Model              string
	BaseURL            string
	Timeout            time.Duration
	MaxRetries         int
	RateLimitPerMinute int
	Burst              int
}

// Enabled reports whether an API key is configured
func (a AIConfig) Enabled() bool {
	return a.APIKey != ""
}

// S3Config holds AWS S3 configuration for report exports
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
	URLExpiry       time.Duration
}

// Enabled reports whether a bucket is configured
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Auth0Domain:   getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience: getEnv("AUTH0_AUDIENCE", ""),
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:           getEnv("ENV", "development"),
		AI: AIConfig{
			Provider: strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenRouter)),
			APIKey:   getEnv("OPENROUTER_API_KEY", ""),
			Model:    getEnv("OPENROUTER_MODEL", "deepseek/deepseek-r1-0528:free"),
			BaseURL:  strings.TrimRight(getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"), "/"),
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if cfg.AI.Provider == ProviderGemini {
		cfg.AI.APIKey = getEnv("GEMINI_API_KEY", "")
		cfg.AI.Model = getEnv("GEMINI_MODEL", "gemini-2.0-flash-001")
		cfg.AI.BaseURL = ""
	}

	var err error
	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "UTC")); err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	if cfg.WriteTimeout, err = getDuration("WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.TrendMonths, err = getInt("TREND_MONTHS", 6); err != nil {
		return nil, err
	}
	if cfg.RecurringScheduleInterval, err = getDuration("RECURRING_SCHEDULE_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cutoff := getEnv("RECURRING_HISTORY_CUTOFF", ""); cutoff != "" {
		t, err := time.ParseInLocation("2006-01-02", cutoff, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("RECURRING_HISTORY_CUTOFF must be YYYY-MM-DD: %w", err)
		}
		cfg.RecurringHistoryCutoff = &t
	}
	if cfg.AI.Timeout, err = getDuration("AI_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.AI.MaxRetries, err = getInt("AI_MAX_RETRIES", 2); err != nil {
		return nil, err
	}
	if cfg.AI.RateLimitPerMinute, err = getInt("AI_RATE_LIMIT_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.AI.Burst, err = getInt("AI_BURST", 3); err != nil {
		return nil, err
	}
	if cfg.S3.URLExpiry, err = getDuration("REPORT_URL_EXPIRY", 15*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth0Domain == "" {
		return fmt.Errorf("AUTH0_DOMAIN is required")
	}
	if c.Auth0Audience == "" {
		return fmt.Errorf("AUTH0_AUDIENCE is required")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("WRITE_TIMEOUT must be positive")
	}
	if c.TrendMonths < 1 || c.TrendMonths > 12 {
		return fmt.Errorf("TREND_MONTHS must be between 1 and 12")
	}
	if c.AI.Provider != ProviderOpenRouter && c.AI.Provider != ProviderGemini {
		return fmt.Errorf("AI_PROVIDER must be openrouter or gemini")
	}
	if c.AI.MaxRetries < 0 {
		return fmt.Errorf("AI_MAX_RETRIES must not be negative")
	}
	if c.AI.RateLimitPerMinute < 1 || c.AI.Burst < 1 {
		return fmt.Errorf("AI_RATE_LIMIT_PER_MINUTE and AI_BURST must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 10s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
