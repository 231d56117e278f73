// Package config loads server settings from the environment (and an optional
// .env file) and validates them.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"resume-builder/internal/synth"
	ai "resume-builder/pkg/ai"
)

// AI providers.
const (
	ProviderService = "service"
	ProviderGemini  = "gemini"
	ProviderNone    = "none"
)

type Config struct {
	Port string `validate:"required,numeric"`

	AIProvider   string        `validate:"oneof=service gemini none"`
	AIServiceURL string        `validate:"omitempty,url"`
	AITimeout    time.Duration `validate:"gt=0"`
	GeminiAPIKey string        `validate:"required_if=AIProvider gemini"`
	GeminiModel  string

	JobsDatabaseURL string
	ChromePath      string
	RenderAttempts  int `validate:"min=1,max=10"`

	YearsOfExperience  int `validate:"min=1,max=60"`
	RateLimitPerMinute int `validate:"min=0"`

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json text"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset values.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:            get("PORT", "3000"),
		AIProvider:      strings.ToLower(get("AI_PROVIDER", ProviderService)),
		AIServiceURL:    get("AI_SERVICE_URL", ai.DefaultServiceURL),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		GeminiModel:     get("GEMINI_MODEL", ai.DefaultGeminiModel),
		JobsDatabaseURL: get("JOBS_DATABASE_URL", ""),
		ChromePath:      get("CHROME_PATH", ""),
		LogLevel:        strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(get("LOG_FORMAT", "json")),
	}

	var err error
	if cfg.AITimeout, err = time.ParseDuration(get("AI_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("config error: AI_TIMEOUT: %w", err)
	}
	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"RENDER_ATTEMPTS", 3, &cfg.RenderAttempts},
		{"SYNTH_YEARS_OF_EXPERIENCE", synth.DefaultYearsOfExperience, &cfg.YearsOfExperience},
		{"RATE_LIMIT_PER_MINUTE", 60, &cfg.RateLimitPerMinute},
	}
	for _, in := range ints {
		if *in.dst, err = strconv.Atoi(get(in.key, strconv.Itoa(in.def))); err != nil {
			return nil, fmt.Errorf("config error: %s must be an integer: %w", in.key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			ve := ves[0]
			return fmt.Errorf("config error: %s - %s", ve.Field(), ve.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// NewLogger returns a slog logger writing to w in the configured format and
// level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
