package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load away from config files and env vars on the host.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("FRED_API_KEY", "")
	t.Setenv("FREDSOR_FRED_API_KEY", "")
	t.Setenv("FREDSOR_FRED_BASE_URL", "")
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.stlouisfed.org", cfg.Fred.BaseURL)
	assert.Empty(t, cfg.Fred.APIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Retry.MaxRetries)
	assert.Equal(t, time.Second, cfg.Retry.WaitMin)
	assert.Equal(t, 30*time.Second, cfg.Retry.WaitMax)
	assert.Equal(t, 5, cfg.Batch.Concurrency)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fredsor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fred:
  api_key: file-key
  base_url: http://localhost:8080
logging:
  level: debug
  format: json
retry:
  max_retries: 3
  wait_min: 200ms
  wait_max: 2s
batch:
  concurrency: 2
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Fred.APIKey)
	assert.Equal(t, "http://localhost:8080", cfg.Fred.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Retry.WaitMin)
	assert.Equal(t, 2*time.Second, cfg.Retry.WaitMax)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FRED_API_KEY", "env-key")
	t.Setenv("FREDSOR_LOGGING_LEVEL", "warn")
	t.Setenv("FREDSOR_BATCH_CONCURRENCY", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Fred.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Fred:    FredConfig{BaseURL: "https://api.stlouisfed.org"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
			Retry:   RetryConfig{WaitMin: time.Second, WaitMax: 30 * time.Second},
			Batch:   BatchConfig{Concurrency: 5},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "relative base url", mutate: func(c *Config) { c.Fred.BaseURL = "api.stlouisfed.org" }, errContains: "fred.base_url"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, errContains: "invalid logging level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, errContains: "invalid logging format"},
		{name: "negative attempts", mutate: func(c *Config) { c.Retry.MaxRetries = -1 }, errContains: "retry.max_retries"},
		{
			name: "inverted waits",
			mutate: func(c *Config) {
				c.Retry.MaxRetries = 2
				c.Retry.WaitMin = time.Minute
			},
			errContains: "retry.wait_min",
		},
		{name: "zero concurrency", mutate: func(c *Config) { c.Batch.Concurrency = 0 }, errContains: "batch.concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
