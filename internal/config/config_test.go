package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ProviderService, cfg.AIProvider)
	assert.Equal(t, "http://ai-service:8000", cfg.AIServiceURL)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 3, cfg.RenderAttempts)
	assert.Equal(t, 3, cfg.YearsOfExperience)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.JobsDatabaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":                      "8080",
		"AI_PROVIDER":               "Gemini",
		"GEMINI_API_KEY":            "k",
		"AI_TIMEOUT":                "5s",
		"RENDER_ATTEMPTS":           "1",
		"SYNTH_YEARS_OF_EXPERIENCE": "10",
		"LOG_FORMAT":                "TEXT",
	}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.AIProvider)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, 1, cfg.RenderAttempts)
	assert.Equal(t, 10, cfg.YearsOfExperience)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown provider", map[string]string{"AI_PROVIDER": "openai"}, "AIProvider - oneof"},
		{"gemini without key", map[string]string{"AI_PROVIDER": "gemini"}, "GeminiAPIKey - required_if"},
		{"bad port", map[string]string{"PORT": "http"}, "Port - numeric"},
		{"bad timeout", map[string]string{"AI_TIMEOUT": "soon"}, "AI_TIMEOUT"},
		{"bad attempts", map[string]string{"RENDER_ATTEMPTS": "0"}, "RenderAttempts - min"},
		{"non-integer", map[string]string{"RATE_LIMIT_PER_MINUTE": "lots"}, "RATE_LIMIT_PER_MINUTE must be an integer"},
		{"bad level", map[string]string{"LOG_LEVEL": "verbose"}, "LogLevel - oneof"},
		{"bad url", map[string]string{"AI_SERVICE_URL": "not a url"}, "AIServiceURL - url"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := FromEnv(envOf(c.env))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_PROVIDER", "none")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderNone, cfg.AIProvider)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	log := cfg.NewLogger(&buf)

	log.Info("dropped")
	log.Warn("kept", "k", "v")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "v", line["k"])

	buf.Reset()
	(&Config{LogLevel: "debug", LogFormat: "text"}).NewLogger(&buf).Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
