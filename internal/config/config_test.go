package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BRANCH_NAME", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "unknown", cfg.BranchName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, "http://0.0.0.0:3000", cfg.URL())
	assert.False(t, cfg.Identity().IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BRANCH_NAME", "main")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "main", cfg.BranchName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Identity().IsProduction())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "http"},
		{"zero port", "PORT", "0"},
		{"port too large", "PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("LOG_LEVEL", "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BRANCH_NAME=feature-x\nPORT=4000\n"), 0o600))

	// Existing variables win over the file.
	t.Setenv("PORT", "5000")
	t.Setenv("BRANCH_NAME", "")
	require.NoError(t, os.Unsetenv("BRANCH_NAME"))

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "feature-x", cfg.BranchName)
	assert.Equal(t, 5000, cfg.Port)
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "yes")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Second, cfg.TTL)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadCacheConfig_Defaults(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg := LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "statuspage", cfg.Prefix)
}

func TestLoadEventsConfig(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://u:p@broker:5672/")
	t.Setenv("DEPLOY_EVENTS_ENABLED", "1")
	t.Setenv("DEPLOY_EVENTS_QUEUE", "")

	cfg := LoadEventsConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "amqp://u:p@broker:5672/", cfg.URL)
	assert.Equal(t, "deployment.started", cfg.Queue)
}
