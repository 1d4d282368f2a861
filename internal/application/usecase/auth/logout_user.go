// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/shopledger/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for logging out a user.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of logging out a user.
type LogoutUserOutput struct {
	Message string `json:"message"`
}

// LogoutUserUseCase revokes a user's refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the presented refresh token. Logout always succeeds:
// revoking an unknown or already-revoked token is a no-op.
func (uc *LogoutUserUseCase) Execute(
	ctx context.Context,
	input LogoutUserInput,
) (*LogoutUserOutput, error) {
	if input.RefreshToken != "" {
		_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
	}

	return &LogoutUserOutput{
		Message: "successfully logged out",
	}, nil
}
