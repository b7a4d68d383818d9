// Package auth provides JWT-based authentication for the session history
// endpoints: a credential provider backed by environment variables, a token
// issuing handler, and the authorization middleware.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	authservice "claritext/internal/service/auth"
)

// BasicAuthProvider implements environment-based authentication against
// ADMIN_USER / ADMIN_USER_PASSWORD.
type BasicAuthProvider struct {
	minPasswordLength int
	weakPasswords     []string
}

// NewBasicAuthProvider creates a basic auth provider with the given
// password policy.
func NewBasicAuthProvider(minPasswordLength int, weakPasswords []string) *BasicAuthProvider {
	return &BasicAuthProvider{
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials validates credentials against environment variables.
// Comparisons are constant-time to prevent timing attacks.
func (p *BasicAuthProvider) ValidateCredentials(ctx context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}

	for _, weak := range p.weakPasswords {
		if creds.Password == weak || strings.HasPrefix(creds.Password, weak) {
			return fmt.Errorf("weak password detected")
		}
	}

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")

	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(adminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(adminPass)) == 1

	if !userMatch || !passMatch {
		return fmt.Errorf("invalid credentials")
	}

	return nil
}

// GetRequirements returns the password requirements.
func (p *BasicAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

// Name returns the provider name.
func (p *BasicAuthProvider) Name() string {
	return "basic"
}

// IdentifyUser returns the role for a username. The basic provider knows a
// single admin user.
func (p *BasicAuthProvider) IdentifyUser(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username must not be empty")
	}

	adminUser := os.Getenv("ADMIN_USER")

	if subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) == 1 {
		return RoleAdmin, nil
	}

	return "", fmt.Errorf("user not found")
}
