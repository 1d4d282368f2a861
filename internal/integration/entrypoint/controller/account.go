// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/account"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// AccountController handles bank account endpoints.
type AccountController struct {
	createAccountUseCase *account.CreateAccountUseCase
	listAccountsUseCase  *account.ListAccountsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createAccountUseCase *account.CreateAccountUseCase,
	listAccountsUseCase *account.ListAccountsUseCase,
) *AccountController {
	return &AccountController{
		createAccountUseCase: createAccountUseCase,
		listAccountsUseCase:  listAccountsUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var request dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createAccountUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		Name:    request.Name,
		Balance: decimal.NewFromFloat(request.Balance),
		Type:    request.Type,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidAccountType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidAccountType),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create account",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}
