// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	tokenRepo     adapter.TokenRepository
}

// NewTokenService creates a new token service instance.
func NewTokenService(
	secret string,
	accessExpiry time.Duration,
	refreshExpiry time.Duration,
	tokenRepo adapter.TokenRepository,
) adapter.TokenService {
	return &tokenService{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		tokenRepo:     tokenRepo,
	}
}

// GenerateTokenPair creates a signed access and refresh token pair for the
// given user and persists the refresh token.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email, role string) (*adapter.TokenPair, error) {
	accessToken, err := s.generateToken(userID, email, role, tokenTypeAccess, s.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.generateToken(userID, email, role, tokenTypeRefresh, s.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(s.refreshExpiry)
	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	return s.validateToken(tokenString, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token, including that it is
// still stored, and returns its claims.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	claims, err := s.validateToken(tokenString, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	valid, err := s.tokenRepo.IsRefreshTokenValid(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}

// InvalidateRefreshToken revokes a refresh token.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, tokenString string) error {
	return s.tokenRepo.DeleteRefreshToken(ctx, tokenString)
}

func (s *tokenService) generateToken(userID uuid.UUID, email, role, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps tokens minted within the same second distinct.
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "shopledger",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) validateToken(tokenString, expectedType string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
