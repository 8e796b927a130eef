package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "https://www.instagram.com", cfg.Tracker.RedirectURL)
	assert.False(t, cfg.Tracker.Async)
	assert.Equal(t, "data/tracking.db", cfg.Storage.DSN)
	assert.Equal(t, "http://ip-api.com/json", cfg.Geo.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Geo.Timeout)
	assert.Equal(t, 45, cfg.Geo.RateLimit)
	assert.Equal(t, "none", cfg.Geo.Cache)
	assert.True(t, cfg.Geo.Breaker.Enabled)
	assert.Equal(t, "visit_log", cfg.RocketMQ.Topic)
	assert.Empty(t, cfg.RocketMQ.NameServer)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: debug
tracker:
  redirect_url: https://example.com/profile
  account_name: richvrb
  async: true
  recent_limit: 100
storage:
  driver: csv
  dsn: /tmp/visits.csv
geo:
  timeout: 2s
  cache: memory
  cache_ttl: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "https://example.com/profile", cfg.Tracker.RedirectURL)
	assert.Equal(t, "richvrb", cfg.Tracker.AccountName)
	assert.True(t, cfg.Tracker.Async)
	assert.Equal(t, 100, cfg.Tracker.RecentLimit)
	assert.Equal(t, "csv", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/visits.csv", cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.Geo.Timeout)
	assert.Equal(t, "memory", cfg.Geo.Cache)
	assert.Equal(t, time.Hour, cfg.Geo.CacheTTL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Run("platform variables", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/tracker")
		t.Setenv("REDIRECT_URL", "https://www.nu.nl")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, "postgres://user:pass@db:5432/tracker", cfg.Storage.DSN)
		assert.Equal(t, "https://www.nu.nl", cfg.Tracker.RedirectURL)
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Setenv("TRACKER_ACCOUNT_NAME", "someone")
		t.Setenv("GEO_CACHE", "redis")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "someone", cfg.Tracker.AccountName)
		assert.Equal(t, "redis", cfg.Geo.Cache)
	})

	t.Run("dsn expands variables", func(t *testing.T) {
		t.Setenv("TRACKER_DB_PASSWORD", "s3cret")
		t.Setenv("STORAGE_DSN", "user:${TRACKER_DB_PASSWORD}@tcp(localhost:3306)/tracker")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "user:s3cret@tcp(localhost:3306)/tracker", cfg.Storage.DSN)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "relative redirect url",
			content: "tracker:\n  redirect_url: not-a-url\n",
		},
		{
			name:    "unknown storage driver",
			content: "storage:\n  driver: mongo\n",
		},
		{
			name:    "unknown geo cache",
			content: "geo:\n  cache: memcached\n",
		},
		{
			name:    "port out of range",
			content: "server:\n  port: 70000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfigFile(t, "server: [unclosed"))
	assert.Error(t, err)
}
