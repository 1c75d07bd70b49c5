package config

import "time"

// GathererConfig is the root configuration for a gatherer instance.
type GathererConfig struct {
	Instance  InstanceConfig  `yaml:"instance"`
	API       APIConfig       `yaml:"api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Poller    PollerConfig    `yaml:"poller"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// InstanceConfig identifies this gatherer.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds wiki prices API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig holds the global request pacing settings.
type RateLimitConfig struct {
	MinInterval time.Duration `yaml:"min_interval"`
}

// PollerConfig holds snapshot poller settings.
type PollerConfig struct {
	// Timesteps to gather continuously (subset of 5m, 1h, 6h, 24h).
	Timesteps []string `yaml:"timesteps"`
	// Lag to leave after a bucket boundary before requesting it, so the
	// provider has finished aggregating.
	Lag time.Duration `yaml:"lag"`
	// Interval between partition checks.
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}
