// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/application/usecase/auth"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUserUseCase *auth.RegisterUserUseCase
	loginUserUseCase    *auth.LoginUserUseCase
	refreshTokenUseCase *auth.RefreshTokenUseCase
	logoutUserUseCase   *auth.LogoutUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUserUseCase *auth.RegisterUserUseCase,
	loginUserUseCase *auth.LoginUserUseCase,
	refreshTokenUseCase *auth.RefreshTokenUseCase,
	logoutUserUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		registerUserUseCase: registerUserUseCase,
		loginUserUseCase:    loginUserUseCase,
		refreshTokenUseCase: refreshTokenUseCase,
		logoutUserUseCase:   logoutUserUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.registerUserUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		respondAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegisterResponse(output))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUserUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		respondAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoginResponse(output))
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var request dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: request.RefreshToken,
	})
	if err != nil {
		respondAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTokenPairResponse(output))
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var request dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.logoutUserUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		RefreshToken: request.RefreshToken,
	})
	if err != nil {
		respondAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// respondAuthError maps authentication errors to HTTP responses.
func respondAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusBadRequest
		switch authErr.Code {
		case domainerror.ErrCodeInvalidCredentials,
			domainerror.ErrCodeInvalidToken,
			domainerror.ErrCodeExpiredToken:
			status = http.StatusUnauthorized
		case domainerror.ErrCodeEmailExists:
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Authentication failed",
	})
}
