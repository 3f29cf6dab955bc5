package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the FightLab server.
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Jobs   JobsConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

// RedisConfig is optional: an empty URL runs the server with a no-op cache.
type RedisConfig struct {
	URL string
}

// AuthConfig is optional: an empty hash disables API key checks.
type AuthConfig struct {
	APIKeyHash string // bcrypt hash of the shared client key
}

type JobsConfig struct {
	TTL                time.Duration // eviction age for terminal jobs
	ReapInterval       time.Duration
	RateLimitPerMinute int
}

type AIConfig struct {
	Provider        string
	AnalysisTimeout time.Duration
	Gemini          GeminiConfig
	OpenAI          OpenAIConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var validProviders = map[string]bool{
	"gemini": true,
	"openai": true,
	"mock":   true,
}

// Load reads configuration from environment variables and returns a validated
// Config. Returns an error with a descriptive message if any required value
// is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("FIGHTLAB_PORT", 8080),
			Env:  envString("FIGHTLAB_ENV", "development"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Auth: AuthConfig{
			APIKeyHash: os.Getenv("FIGHTLAB_API_KEY_HASH"),
		},
		Jobs: JobsConfig{
			TTL:                time.Duration(envInt("JOB_TTL_HOURS", 24)) * time.Hour,
			ReapInterval:       envDuration("JOB_REAP_INTERVAL", 10*time.Minute),
			RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 60),
		},
		AI: AIConfig{
			Provider:        os.Getenv("AI_PROVIDER"),
			AnalysisTimeout: envDurationSecs("AI_ANALYSIS_TIMEOUT_SECS", 12*time.Minute),
			Gemini: GeminiConfig{
				APIKey:  os.Getenv("GEMINI_API_KEY"),
				Model:   envString("GEMINI_MODEL", "gemini-2.0-flash"),
				BaseURL: envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			},
			OpenAI: OpenAIConfig{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   envString("OPENAI_MODEL", "gpt-4o"),
				BaseURL: envString("OPENAI_BASE_URL", "https://api.openai.com"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.AI.Provider == "" {
		return fmt.Errorf("AI_PROVIDER is required")
	}
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of gemini, openai, mock; got %q", c.AI.Provider)
	}

	if c.AI.Provider == "gemini" && c.AI.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER is gemini")
	}
	if c.AI.Provider == "openai" && c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}

	if c.AI.AnalysisTimeout <= 0 {
		return fmt.Errorf("AI_ANALYSIS_TIMEOUT_SECS must be positive")
	}
	if c.Jobs.TTL <= 0 {
		return fmt.Errorf("JOB_TTL_HOURS must be positive")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
