package fetcher

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ArticleFetchConfig holds the configuration for article fetching.
//
// Security settings:
//   - DenyPrivateIPs: blocks private IP addresses (SSRF prevention)
//   - MaxBodySize: bounds response size to prevent memory exhaustion
//   - MaxRedirects: prevents redirect loops
//   - Timeout: bounds each HTTP request
//
// Performance settings:
//   - Parallelism: concurrent fetches in the digest worker
type ArticleFetchConfig struct {
	// Enabled controls whether article fetching is enabled.
	// When false, the digest worker processes feed summaries only.
	// Default: true
	Enabled bool

	// Timeout is the maximum duration for a single HTTP request.
	// Default: 10s
	Timeout time.Duration

	// Parallelism is the maximum number of concurrent fetches.
	// Default: 10
	Parallelism int

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Enforced while reading the body, not from the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is re-validated for SSRF.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether to block access to private IP addresses.
	// Should always be true in production.
	// Default: true
	DenyPrivateIPs bool
}

// DefaultConfig returns the default configuration for article fetching.
func DefaultConfig() ArticleFetchConfig {
	return ArticleFetchConfig{
		Enabled:        true,
		Timeout:        10 * time.Second,
		Parallelism:    10,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// Validate checks if the configuration values are valid and safe.
func (c *ArticleFetchConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.Parallelism < 1 || c.Parallelism > 50 {
		return fmt.Errorf("parallelism must be between 1 and 50, got %d", c.Parallelism)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}

// LoadConfigFromEnv loads configuration from environment variables.
// If a variable is not set, the default value is used. A set but malformed
// variable is an error.
//
// Environment variables:
//   - ARTICLE_FETCH_ENABLED: "true" or "false" (default: true)
//   - ARTICLE_FETCH_TIMEOUT: duration string, e.g., "10s" (default: 10s)
//   - ARTICLE_FETCH_PARALLELISM: integer (default: 10)
//   - ARTICLE_FETCH_MAX_BODY_SIZE: integer in bytes (default: 10485760)
//   - ARTICLE_FETCH_MAX_REDIRECTS: integer (default: 5)
//   - ARTICLE_FETCH_DENY_PRIVATE_IPS: "true" or "false" (default: true)
func LoadConfigFromEnv() (ArticleFetchConfig, error) {
	cfg := DefaultConfig()

	if val := os.Getenv("ARTICLE_FETCH_ENABLED"); val != "" {
		cfg.Enabled = val == "true"
	}

	if val := os.Getenv("ARTICLE_FETCH_TIMEOUT"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARTICLE_FETCH_TIMEOUT: %v (expected format: '10s', '1m')", err)
		}
		cfg.Timeout = parsed
	}

	if val := os.Getenv("ARTICLE_FETCH_PARALLELISM"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARTICLE_FETCH_PARALLELISM: %v", err)
		}
		cfg.Parallelism = parsed
	}

	if val := os.Getenv("ARTICLE_FETCH_MAX_BODY_SIZE"); val != "" {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARTICLE_FETCH_MAX_BODY_SIZE: %v", err)
		}
		cfg.MaxBodySize = parsed
	}

	if val := os.Getenv("ARTICLE_FETCH_MAX_REDIRECTS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARTICLE_FETCH_MAX_REDIRECTS: %v", err)
		}
		cfg.MaxRedirects = parsed
	}

	if val := os.Getenv("ARTICLE_FETCH_DENY_PRIVATE_IPS"); val != "" {
		cfg.DenyPrivateIPs = val == "true"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
