package worker

import (
	"fmt"
	"log/slog"
	"time"

	"claritext/internal/pkg/config"
)

// DigestConfig holds the configuration for the digest worker.
// It controls the cron schedule, timezone, concurrency, and operational
// parameters for the scheduled feed digest job.
//
// Configuration sources:
//   - Environment variables (loaded via LoadConfigFromEnv)
//   - Default values (provided by DefaultConfig)
//
// All fields have defaults and validation rules so the worker can operate
// safely even with invalid or missing configuration.
type DigestConfig struct {
	// CronSchedule is the cron expression for digest scheduling.
	// Format: "minute hour day month weekday"
	// Example: "0 6 * * *" (every day at 6:00)
	// Default: "0 6 * * *"
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Example: "Europe/Madrid", "UTC", "America/Mexico_City"
	// Default: "Europe/Madrid"
	Timezone string

	// MaxConcurrent is the maximum number of feed items processed in
	// parallel within one digest run.
	// Range: 1-50
	// Default: 10
	MaxConcurrent int

	// DigestTimeout is the maximum duration for a single digest run.
	// After this timeout the run is cancelled.
	// Default: 30 minutes
	DigestTimeout time.Duration

	// HealthPort is the port for the health check HTTP server.
	// Range: 1024-65535
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns a DigestConfig with production defaults: a daily
// run at 6:00 Madrid time, a 30-minute timeout to stop stuck runs, and
// moderate parallelism.
func DefaultConfig() DigestConfig {
	return DigestConfig{
		CronSchedule:  "0 6 * * *",
		Timezone:      "Europe/Madrid",
		MaxConcurrent: 10,
		DigestTimeout: 30 * time.Minute,
		HealthPort:    9091,
	}
}

// Validate checks the configuration values using the reusable validators
// from internal/pkg/config. All field errors are collected and returned
// together.
func (c *DigestConfig) Validate() error {
	var errors []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errors = append(errors, fmt.Errorf("cron schedule: %w", err))
	}

	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errors = append(errors, fmt.Errorf("timezone: %w", err))
	}

	if err := config.ValidateIntRange(c.MaxConcurrent, 1, 50); err != nil {
		errors = append(errors, fmt.Errorf("max concurrent: %w", err))
	}

	if err := config.ValidatePositiveDuration(c.DigestTimeout); err != nil {
		errors = append(errors, fmt.Errorf("digest timeout: %w", err))
	}

	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errors = append(errors, fmt.Errorf("health port: %w", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation failed: %v", errors)
	}

	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with validation and automatic fallback to default values on failure.
//
// Fail-open strategy: each field starts from its default, and an invalid
// environment value falls back to the default with a warning log and a
// metrics increment. The function never returns an error; a scheduled
// worker that refuses to start over one bad variable is worse than one
// running on defaults.
//
// Environment variables:
//   - DIGEST_CRON_SCHEDULE: cron expression (default: "0 6 * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "Europe/Madrid")
//   - DIGEST_MAX_CONCURRENT: integer 1-50 (default: 10)
//   - DIGEST_TIMEOUT: duration string, e.g. "30m" (default: 30 minutes)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default: 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *DigestMetrics) (*DigestConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	result := config.LoadEnvWithFallback("DIGEST_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("cron_schedule")
		metrics.RecordFallback("cron_schedule", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "CronSchedule"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = result.Value.(string)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("timezone")
		metrics.RecordFallback("timezone", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "Timezone"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvInt("DIGEST_MAX_CONCURRENT", cfg.MaxConcurrent, func(v int) error {
		return config.ValidateIntRange(v, 1, 50)
	})
	cfg.MaxConcurrent = result.Value.(int)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("max_concurrent")
		metrics.RecordFallback("max_concurrent", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "MaxConcurrent"),
				slog.String("warning", warning))
		}
	}

	// Range-limited to 1m-4h so a typo cannot disable the timeout entirely.
	result = config.LoadEnvDuration("DIGEST_TIMEOUT", cfg.DigestTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Minute, 4*time.Hour)
	})
	cfg.DigestTimeout = result.Value.(time.Duration)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("digest_timeout")
		metrics.RecordFallback("digest_timeout", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "DigestTimeout"),
				slog.String("warning", warning))
		}
	}

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	if result.FallbackApplied {
		fallbackApplied = true
		metrics.RecordValidationError("health_port")
		metrics.RecordFallback("health_port", "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", "HealthPort"),
				slog.String("warning", warning))
		}
	}

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
