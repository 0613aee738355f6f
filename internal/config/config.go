// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/branch-deploy-status/internal/deployment"
)

// DefaultPort is used when PORT is unset.
const DefaultPort = 3000

// Config holds the runtime configuration. Values are read once at startup
// and never change for the lifetime of the process.
type Config struct {
	Port       int    // HTTP port to listen on
	BranchName string // source branch this instance was deployed from
	LogLevel   string // debug, info, warn or error
}

// Addr is the listen address on all interfaces.
func (c Config) Addr() string { return fmt.Sprintf("0.0.0.0:%d", c.Port) }

// URL is the human-facing URL printed at startup.
func (c Config) URL() string { return fmt.Sprintf("http://0.0.0.0:%d", c.Port) }

// Identity returns the deployment identity derived from BranchName.
func (c Config) Identity() deployment.Identity { return deployment.NewIdentity(c.BranchName) }

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding variables already present in the environment. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads PORT, BRANCH_NAME and LOG_LEVEL. An unparsable or out of range
// PORT is reported as an error instead of silently falling back.
func Load() (Config, error) {
	cfg := Config{
		Port:       DefaultPort,
		BranchName: getenv("BRANCH_NAME", deployment.DefaultBranch),
		LogLevel:   strings.ToLower(getenv("LOG_LEVEL", "info")),
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		if p < 1 || p > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q: out of range", v)
		}
		cfg.Port = p
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envStr(k, d string) string { return getenv(k, d) }

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
