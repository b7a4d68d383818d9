package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig is the optional YAML security policy: basic-auth password
// rules, the public endpoint list, and JWT settings. When no file is
// configured the compiled-in defaults apply.
type SecurityConfig struct {
	Security SecuritySection `yaml:"security"`
}

type SecuritySection struct {
	Auth            AuthSection `yaml:"auth"`
	PublicEndpoints []string    `yaml:"public_endpoints"`
	JWT             JWTSection  `yaml:"jwt"`
}

type AuthSection struct {
	Provider string           `yaml:"provider"`
	Basic    BasicAuthSection `yaml:"basic"`
}

type BasicAuthSection struct {
	MinPasswordLength int      `yaml:"min_password_length"`
	WeakPasswords     []string `yaml:"weak_passwords"`
}

type JWTSection struct {
	SecretEnv   string `yaml:"secret_env"`
	ExpiryHours int    `yaml:"expiry_hours"`
}

// LoadSecurityConfig loads and validates the security policy from a YAML
// file. The path comes from a CLI argument or environment variable, not
// from request input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is operator-provided, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.Provider == "" {
		return fmt.Errorf("auth provider is required")
	}

	if config.Security.Auth.Provider == "basic" {
		if config.Security.Auth.Basic.MinPasswordLength <= 0 {
			return fmt.Errorf("min_password_length must be positive")
		}
		if config.Security.Auth.Basic.MinPasswordLength < 8 {
			return fmt.Errorf("min_password_length must be at least 8")
		}
	}

	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	return nil
}
