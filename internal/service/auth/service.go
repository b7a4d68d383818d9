// Package auth holds the framework-agnostic authentication service shared
// by the HTTP API and the CLI. Transport-level concerns (JWT issuing, the
// authorization middleware) live in the HTTP handler layer.
package auth

import (
	"context"
	"strings"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider is the interface authentication backends implement.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser returns the role for a username.
	IdentifyUser(ctx context.Context, username string) (string, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// AuthService handles authentication business logic independent of any
// HTTP framework.
type AuthService struct {
	provider        AuthProvider
	publicEndpoints []string
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider, publicEndpoints []string) *AuthService {
	return &AuthService{
		provider:        provider,
		publicEndpoints: publicEndpoints,
	}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IsPublicEndpoint reports whether a path matches any configured public
// endpoint prefix.
func (s *AuthService) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if strings.HasPrefix(path, endpoint) {
			return true
		}
	}
	return false
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
