package config

import (
	"os"
	"strconv"
	"time"
)

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey            string `json:"-"` // Never serialize
	Model             string `json:"model"`
	TimeoutMS         int    `json:"timeoutMs"`
	TranscriptTimeout int    `json:"transcriptTimeoutMs"`
}

// DefaultAIConfig returns the AI configuration read from the environment
func DefaultAIConfig() *AIConfig {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	return &AIConfig{
		APIKey:            key,
		Model:             getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		TimeoutMS:         getIntOrDefault("GEMINI_TIMEOUT_MS", 30000),
		TranscriptTimeout: getIntOrDefault("TRANSCRIPT_TIMEOUT_MS", 15000),
	}
}

// IsEnabled returns true if a model credential is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelTimeout is the bound applied to a single model call
func (c *AIConfig) ModelTimeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// TranscriptFetchTimeout is the bound applied to a single transcript fetch
func (c *AIConfig) TranscriptFetchTimeout() time.Duration {
	return time.Duration(c.TranscriptTimeout) * time.Millisecond
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
