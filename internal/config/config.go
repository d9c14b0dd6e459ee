// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultModel is the Gemini model used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-2.0-flash"

// Config holds all configuration for the application.
type Config struct {
	// GeminiAPIKey is the process-wide default credential. A per-user key
	// supplied at call time takes priority over it. May be empty, in which
	// case every AI operation routes to the fallback provider.
	GeminiAPIKey string
	GeminiModel  string
	ListenAddr   string
	LogLevel     string
	LogJSON      bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogJSON:      os.Getenv("LOG_JSON") == "true",
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultModel
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the loaded configuration for obvious misconfiguration.
// A missing API key is not an error: the app runs fallback-only without one.
func (c *Config) validate() error {
	var errs []string

	if !strings.HasPrefix(c.ListenAddr, ":") && !strings.Contains(c.ListenAddr, ":") {
		errs = append(errs, fmt.Sprintf("LISTEN_ADDR %q is not a valid host:port", c.ListenAddr))
	}

	// Placeholder keys from .env templates must not be mistaken for real ones.
	if strings.Contains(c.GeminiAPIKey, "your-google-gemini") {
		c.GeminiAPIKey = ""
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// HasDefaultCredential reports whether a process-wide Gemini key is configured.
func (c *Config) HasDefaultCredential() bool {
	return c.GeminiAPIKey != ""
}
