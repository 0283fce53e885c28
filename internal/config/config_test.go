package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"unitconv/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
  requestTimeout: 3s
history:
  maxEntries: 50
  storage: postgres
  async: true
cors:
  allowOrigin: https://example.com
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, 50, cfg.History.MaxEntries)
	require.True(t, cfg.History.Async)
	require.True(t, cfg.UsesPostgres())
	require.Equal(t, "https://example.com", cfg.CORS.AllowOrigin)
	// defaults still apply
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("HISTORY_MAX_ENTRIES", "7")
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.History.MaxEntries)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, config.StorageMemory, cfg.History.Storage)
	require.False(t, cfg.UsesPostgres())
	require.Equal(t, "*", cfg.CORS.AllowOrigin)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"async with memory", "history:\n  storage: memory\n  async: true\n"},
		{"negative entries", "history:\n  maxEntries: -3\n"},
		{"unknown storage", "history:\n  storage: redis\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "history: [\n"))
	require.Error(t, err)
}
