// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims extracted from a token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// TokenPair represents an access and refresh token issued together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for token operations.
type TokenService interface {
	// GenerateTokenPair creates a signed access and refresh token pair for
	// the given user and persists the refresh token for later validation.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email, role string) (*TokenPair, error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token, including that it has
	// not been revoked, and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a refresh token so it can no longer
	// be exchanged for a new pair.
	InvalidateRefreshToken(ctx context.Context, token string) error
}
