package api

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds the backend connection settings.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string

	// Token is sent as a bearer token when set.
	Token string

	// Timeout bounds a single HTTP attempt. Default: 30s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retries of idempotent requests.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("api base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("api base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base URL: unsupported scheme %q", u.Scheme)
	}
	if c.Timeout <= 0 {
		return errors.New("api timeout must be positive")
	}
	if c.Retry.MaxAttempts < 1 {
		return errors.New("api retry max attempts must be at least 1")
	}
	if c.Retry.Multiplier < 1 {
		return errors.New("api retry multiplier must be at least 1")
	}
	return nil
}
