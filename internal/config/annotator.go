package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AnnotatorConfig holds configuration for the annotation service integration.
type AnnotatorConfig struct {
	// GRPCAddress is the annotator gRPC server address.
	// Format: "host:port" (e.g., "localhost:50051")
	// Default: "localhost:50051"
	GRPCAddress string

	// Enabled controls whether the external annotator is used.
	// When false, all text processing runs on the heuristic fallback.
	// Default: true
	Enabled bool

	// ConnectionTimeout is the timeout for establishing gRPC connection.
	// Default: 10 seconds
	ConnectionTimeout time.Duration

	// Timeouts configures per-method timeouts.
	Timeouts AnnotatorTimeoutConfig

	// Limits bounds request sizes before they reach the wire.
	Limits AnnotatorLimitConfig

	// RateLimit paces outbound calls to the annotator.
	RateLimit AnnotatorRateLimitConfig

	// CircuitBreaker for annotator calls.
	CircuitBreaker CircuitBreakerConfig

	// Observability configures logging and tracing.
	Observability ObservabilityConfig
}

// AnnotatorTimeoutConfig holds per-method timeout settings.
// All values are configurable via environment variables.
type AnnotatorTimeoutConfig struct {
	// Annotate timeout. Default: 30s
	Annotate time.Duration
	// ExtractEntities timeout. Default: 30s
	ExtractEntities time.Duration
	// Classify timeout. Default: 60s
	Classify time.Duration
}

// AnnotatorLimitConfig bounds input sizes.
type AnnotatorLimitConfig struct {
	// MaxInputChars is the maximum text length per request. Default: 100000
	MaxInputChars int
}

// AnnotatorRateLimitConfig paces outbound annotator calls.
type AnnotatorRateLimitConfig struct {
	// RequestsPerSecond sustained rate. Default: 20
	RequestsPerSecond float64
	// Burst allowance. Default: 5
	Burst int
}

// ObservabilityConfig holds logging and tracing settings.
type ObservabilityConfig struct {
	// EnableTracing enables OpenTelemetry distributed tracing.
	EnableTracing bool
	// TracingEndpoint for OTLP exporter. Default: "localhost:4317"
	TracingEndpoint string
	// LogLevel for annotator operations. Default: "info"
	LogLevel string
	// EnableMetrics enables Prometheus metrics.
	EnableMetrics bool
}

// CircuitBreakerConfig for annotator resilience.
type CircuitBreakerConfig struct {
	// MaxRequests in half-open state.
	MaxRequests uint32

	// Interval for clearing failure counts.
	Interval time.Duration

	// Timeout before transitioning from open to half-open.
	Timeout time.Duration

	// FailureThreshold ratio to trip circuit (0.0 to 1.0).
	FailureThreshold float64

	// MinRequests before calculating failure ratio.
	MinRequests uint32
}

// LoadAnnotatorConfig loads annotator configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
func LoadAnnotatorConfig() (*AnnotatorConfig, error) {
	config := &AnnotatorConfig{
		GRPCAddress:       getEnvOrDefault("ANNOTATOR_GRPC_ADDRESS", "localhost:50051"),
		Enabled:           getEnvBool("ANNOTATOR_ENABLED", true),
		ConnectionTimeout: getEnvDuration("ANNOTATOR_CONNECTION_TIMEOUT", 10*time.Second),
		Timeouts: AnnotatorTimeoutConfig{
			Annotate:        getEnvDuration("ANNOTATOR_TIMEOUT_ANNOTATE", 30*time.Second),
			ExtractEntities: getEnvDuration("ANNOTATOR_TIMEOUT_ENTITIES", 30*time.Second),
			Classify:        getEnvDuration("ANNOTATOR_TIMEOUT_CLASSIFY", 60*time.Second),
		},
		Limits: AnnotatorLimitConfig{
			MaxInputChars: getEnvInt("ANNOTATOR_MAX_INPUT_CHARS", 100000),
		},
		RateLimit: AnnotatorRateLimitConfig{
			RequestsPerSecond: getEnvFloat("ANNOTATOR_RATE_LIMIT_RPS", 20),
			Burst:             getEnvInt("ANNOTATOR_RATE_LIMIT_BURST", 5),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests:      uint32(getEnvInt("ANNOTATOR_CB_MAX_REQUESTS", 3)),
			Interval:         getEnvDuration("ANNOTATOR_CB_INTERVAL", 10*time.Second),
			Timeout:          getEnvDuration("ANNOTATOR_CB_TIMEOUT", 30*time.Second),
			FailureThreshold: 0.6,
			MinRequests:      5,
		},
		Observability: ObservabilityConfig{
			EnableTracing:   getEnvBool("ANNOTATOR_TRACING_ENABLED", false),
			TracingEndpoint: getEnvOrDefault("ANNOTATOR_TRACING_ENDPOINT", "localhost:4317"),
			LogLevel:        getEnvOrDefault("ANNOTATOR_LOG_LEVEL", "info"),
			EnableMetrics:   getEnvBool("ANNOTATOR_METRICS_ENABLED", true),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid annotator configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *AnnotatorConfig) Validate() error {
	if c.GRPCAddress == "" {
		return fmt.Errorf("ANNOTATOR_GRPC_ADDRESS cannot be empty")
	}

	if c.ConnectionTimeout <= 0 {
		return fmt.Errorf("ANNOTATOR_CONNECTION_TIMEOUT must be positive")
	}

	if c.Timeouts.Annotate <= 0 {
		return fmt.Errorf("ANNOTATOR_TIMEOUT_ANNOTATE must be positive")
	}

	if c.Timeouts.ExtractEntities <= 0 {
		return fmt.Errorf("ANNOTATOR_TIMEOUT_ENTITIES must be positive")
	}

	if c.Timeouts.Classify <= 0 {
		return fmt.Errorf("ANNOTATOR_TIMEOUT_CLASSIFY must be positive")
	}

	if c.Limits.MaxInputChars <= 0 {
		return fmt.Errorf("ANNOTATOR_MAX_INPUT_CHARS must be positive")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("ANNOTATOR_RATE_LIMIT_RPS must be positive")
	}

	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ANNOTATOR_RATE_LIMIT_BURST must be positive")
	}

	if c.CircuitBreaker.MaxRequests == 0 {
		return fmt.Errorf("ANNOTATOR_CB_MAX_REQUESTS must be positive")
	}

	if c.CircuitBreaker.Interval <= 0 {
		return fmt.Errorf("ANNOTATOR_CB_INTERVAL must be positive")
	}

	if c.CircuitBreaker.Timeout <= 0 {
		return fmt.Errorf("ANNOTATOR_CB_TIMEOUT must be positive")
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses boolean environment variable with default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt parses integer environment variable with default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat parses float environment variable with default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration parses duration environment variable with default.
// Supports formats like "30s", "1m", "2h".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
