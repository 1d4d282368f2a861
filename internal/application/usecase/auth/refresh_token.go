// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for refreshing a token pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of refreshing a token pair.
type RefreshTokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenUseCase exchanges a valid refresh token for a new pair.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates the presented refresh token, rotates it and returns a
// fresh token pair. The old refresh token is revoked before the new pair
// is issued so a token can only be exchanged once.
func (uc *RefreshTokenUseCase) Execute(
	ctx context.Context,
	input RefreshTokenInput,
) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			nil,
		)
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpiredToken) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"refresh token has expired",
				err,
			)
		}
		if errors.Is(err, domainerror.ErrInvalidToken) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"invalid refresh token",
				err,
			)
		}
		return nil, fmt.Errorf("failed to validate refresh token: %w", err)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
