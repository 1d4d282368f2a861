// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenRepository defines the interface for refresh token persistence.
type TokenRepository interface {
	// SaveRefreshToken stores a refresh token for a user.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid reports whether a refresh token exists and has
	// not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// DeleteRefreshToken removes a refresh token.
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteExpiredTokens removes all refresh tokens past their expiry.
	DeleteExpiredTokens(ctx context.Context) error
}
