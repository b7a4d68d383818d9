package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecurityYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "security.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSecurityConfig_Valid(t *testing.T) {
	path := writeSecurityYAML(t, `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: 15
      weak_passwords:
        - "admin"
        - "contrasena"
  public_endpoints:
    - "/health"
    - "/metrics"
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`)

	cfg, err := LoadSecurityConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Security.Auth.Provider != "basic" {
		t.Errorf("provider = %s", cfg.Security.Auth.Provider)
	}
	if cfg.Security.Auth.Basic.MinPasswordLength != 15 {
		t.Errorf("min_password_length = %d", cfg.Security.Auth.Basic.MinPasswordLength)
	}
	if len(cfg.Security.Auth.Basic.WeakPasswords) != 2 {
		t.Errorf("weak_passwords = %v", cfg.Security.Auth.Basic.WeakPasswords)
	}
	if len(cfg.Security.PublicEndpoints) != 2 || cfg.Security.PublicEndpoints[0] != "/health" {
		t.Errorf("public_endpoints = %v", cfg.Security.PublicEndpoints)
	}
	if cfg.Security.JWT.SecretEnv != "JWT_SECRET" || cfg.Security.JWT.ExpiryHours != 24 {
		t.Errorf("jwt = %+v", cfg.Security.JWT)
	}
}

func TestLoadSecurityConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing provider",
			yaml: `security:
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			wantErr: "auth provider is required",
		},
		{
			name: "zero min_password_length",
			yaml: `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: 0
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			wantErr: "min_password_length must be positive",
		},
		{
			name: "min_password_length too short",
			yaml: `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: 6
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			wantErr: "min_password_length must be at least 8",
		},
		{
			name: "missing jwt secret_env",
			yaml: `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: 12
  jwt:
    expiry_hours: 24
`,
			wantErr: "jwt secret_env is required",
		},
		{
			name: "zero jwt expiry_hours",
			yaml: `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: 12
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 0
`,
			wantErr: "jwt expiry_hours must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSecurityConfig(writeSecurityYAML(t, tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSecurityConfig_NonBasicProviderSkipsPasswordRules(t *testing.T) {
	path := writeSecurityYAML(t, `security:
  auth:
    provider: "oauth"
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`)

	if _, err := LoadSecurityConfig(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSecurityConfig_FileNotFound(t *testing.T) {
	if _, err := LoadSecurityConfig("/nonexistent/security.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSecurityConfig_InvalidYAML(t *testing.T) {
	path := writeSecurityYAML(t, `security:
  auth:
    provider: "basic"
    basic:
      min_password_length: invalid
`)

	if _, err := LoadSecurityConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
