package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_JSON", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultModel, cfg.GeminiModel)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.False(t, cfg.LogJSON)
	require.False(t, cfg.HasDefaultCredential(), "missing key is not an error, app runs fallback-only")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "real-key-1234")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "real-key-1234", cfg.GeminiAPIKey)
	require.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	require.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	require.True(t, cfg.LogJSON)
	require.True(t, cfg.HasDefaultCredential())
}

func TestLoadClearsPlaceholderKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "your-google-gemini-api-key-here")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.GeminiAPIKey)
	require.False(t, cfg.HasDefaultCredential())
}

func TestLoadRejectsBadListenAddr(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "not-an-address")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "LISTEN_ADDR")
}
