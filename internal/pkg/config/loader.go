// Package config is the fail-open environment loader used by the digest
// worker: every loader returns a usable value, falling back to the default
// with a warning instead of an error when parsing or validation fails. The
// warnings feed the worker's config metrics and its startup log.
package config

import (
	"fmt"
	"os"
	"time"
)

// ConfigLoadResult is the outcome of loading one configuration value.
// Value holds the loaded (or fallback) value; Warnings carries one message
// per fallback applied.
//
//	result := LoadEnvDuration("DIGEST_TIMEOUT", 30*time.Minute, ValidatePositiveDuration)
//	timeout := result.Value.(time.Duration)
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvString reads a string from the environment, returning the default
// when the variable is unset. No validation; use LoadEnvWithFallback when a
// value must be checked.
//
//	schedule := LoadEnvString("DIGEST_CRON_SCHEDULE", "30 5 * * *")
func LoadEnvString(envKey, defaultValue string) string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadEnvWithFallback reads a string and runs it through validator (nil to
// skip). An unset variable yields the default silently; a value that fails
// validation yields the default plus a warning. Never returns an error.
//
//	result := LoadEnvWithFallback("DIGEST_CRON_SCHEDULE", "30 5 * * *", ValidateCronSchedule)
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	if validator != nil {
		if err := validator(value); err != nil {
			return fallbackResult(envKey, value, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: value}
}

// LoadEnvDuration reads a Go duration string ("30s", "1h30m") and validates
// the parsed value. Parse and validation failures both fall back to the
// default with a warning.
//
//	result := LoadEnvDuration("DIGEST_TIMEOUT", 30*time.Minute, ValidatePositiveDuration)
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	parsed, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallbackResult(envKey, valueStr, err, defaultValue)
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallbackResult(envKey, valueStr, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: parsed}
}

// LoadEnvInt reads an integer and validates it. Parse and validation
// failures both fall back to the default with a warning.
//
//	result := LoadEnvInt("DIGEST_MAX_CONCURRENT", 5, func(v int) error {
//	    return ValidateIntRange(v, 1, 50)
//	})
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsed int
	if _, err := fmt.Sscanf(valueStr, "%d", &parsed); err != nil {
		return fallbackResult(envKey, valueStr, fmt.Errorf("invalid integer format"), defaultValue)
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallbackResult(envKey, valueStr, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: parsed}
}

// LoadEnvBool reads a boolean. Accepted forms are "1"/"t"/"T"/"true"/
// "TRUE"/"True" and the corresponding false spellings; anything else falls
// back to the default with a warning.
//
//	result := LoadEnvBool("CONTENT_FETCH_ENABLED", false)
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return ConfigLoadResult{Value: true}
	case "0", "f", "F", "false", "FALSE", "False":
		return ConfigLoadResult{Value: false}
	default:
		err := fmt.Errorf("invalid boolean format, expected 'true' or 'false'")
		return fallbackResult(envKey, valueStr, err, defaultValue)
	}
}

func fallbackResult(envKey, raw string, err error, defaultValue interface{}) ConfigLoadResult {
	warning := fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", envKey, raw, err, defaultValue)
	return ConfigLoadResult{
		Value:           defaultValue,
		Warnings:        []string{warning},
		FallbackApplied: true,
	}
}
