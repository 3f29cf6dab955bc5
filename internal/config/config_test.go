package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "mock")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Auth.APIKeyHash)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Jobs.ReapInterval)
	assert.Equal(t, 60, cfg.Jobs.RateLimitPerMinute)
	assert.Equal(t, 12*time.Minute, cfg.AI.AnalysisTimeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Gemini.Model)
	assert.Equal(t, "gpt-4o", cfg.AI.OpenAI.Model)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FIGHTLAB_PORT", "9090")
	t.Setenv("AI_ANALYSIS_TIMEOUT_SECS", "300")
	t.Setenv("JOB_TTL_HOURS", "6")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "test-key", cfg.AI.Gemini.APIKey)
	assert.Equal(t, 5*time.Minute, cfg.AI.AnalysisTimeout)
	assert.Equal(t, 6*time.Hour, cfg.Jobs.TTL)
	assert.Equal(t, 10, cfg.Jobs.RateLimitPerMinute)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing provider",
			env:     map[string]string{"AI_PROVIDER": ""},
			wantErr: "AI_PROVIDER is required",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"AI_PROVIDER": "llama"},
			wantErr: "AI_PROVIDER must be one of",
		},
		{
			name:    "gemini without key",
			env:     map[string]string{"AI_PROVIDER": "gemini"},
			wantErr: "GEMINI_API_KEY is required",
		},
		{
			name:    "openai without key",
			env:     map[string]string{"AI_PROVIDER": "openai"},
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name: "non-positive timeout",
			env: map[string]string{
				"AI_PROVIDER":              "mock",
				"AI_ANALYSIS_TIMEOUT_SECS": "0",
			},
			wantErr: "AI_ANALYSIS_TIMEOUT_SECS must be positive",
		},
		{
			name: "non-positive ttl",
			env: map[string]string{
				"AI_PROVIDER":   "mock",
				"JOB_TTL_HOURS": "-1",
			},
			wantErr: "JOB_TTL_HOURS must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	t.Setenv("AI_PROVIDER", "mock")
	t.Setenv("FIGHTLAB_PORT", "not-a-number")
	t.Setenv("JOB_REAP_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Jobs.ReapInterval)
}
