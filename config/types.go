package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Fred    FredConfig    `mapstructure:"fred"`
	Logging LoggingConfig `mapstructure:"logging"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Batch   BatchConfig   `mapstructure:"batch"`
}

// FredConfig holds FRED API connection details
type FredConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// RetryConfig controls retries of failed requests. MaxRetries counts the
// retries after the first attempt; zero disables retrying.
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries"`
	WaitMin    time.Duration `mapstructure:"wait_min"`
	WaitMax    time.Duration `mapstructure:"wait_max"`
}

// BatchConfig limits concurrent requests for multi-series commands
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}
