// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopledger/backend/internal/application/usecase/auth"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the request body for refreshing a token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logging out.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents the response for register and login.
type AuthResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse represents the response for a token refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToRegisterResponse converts a RegisterUserOutput to an AuthResponse DTO.
func ToRegisterResponse(output *auth.RegisterUserOutput) AuthResponse {
	return AuthResponse{
		UserID:       output.UserID.String(),
		Name:         output.Name,
		Email:        output.Email,
		Role:         output.Role,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// ToLoginResponse converts a LoginUserOutput to an AuthResponse DTO.
func ToLoginResponse(output *auth.LoginUserOutput) AuthResponse {
	return AuthResponse{
		UserID:       output.UserID.String(),
		Name:         output.Name,
		Email:        output.Email,
		Role:         output.Role,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// ToTokenPairResponse converts a RefreshTokenOutput to a TokenPairResponse DTO.
func ToTokenPairResponse(output *auth.RefreshTokenOutput) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}
