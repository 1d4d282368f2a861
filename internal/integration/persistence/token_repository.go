// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

// tokenRepository implements the adapter.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) adapter.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken stores a refresh token for a user.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	result := r.db.WithContext(ctx).Create(&tokenModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IsRefreshTokenValid reports whether a refresh token exists and has not expired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteRefreshToken removes a refresh token.
func (r *tokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.RefreshTokenModel{})
	return result.Error
}

// DeleteExpiredTokens removes all refresh tokens past their expiry.
func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&model.RefreshTokenModel{})
	return result.Error
}
