// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for creating a bank account.
type CreateAccountRequest struct {
	Name    string  `json:"name" binding:"required"`
	Balance float64 `json:"balance"`
	Type    string  `json:"type" binding:"required"`
}

// AccountResponse represents a bank account in API responses.
type AccountResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Type    string  `json:"type"`
	Status  string  `json:"status"`
}

// AccountListResponse represents the response for listing bank accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a BankAccount entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.BankAccount) AccountResponse {
	balance, _ := account.Balance.Float64()

	return AccountResponse{
		ID:      account.ID.String(),
		Name:    account.Name,
		Balance: balance,
		Type:    string(account.Type),
		Status:  string(account.Status),
	}
}

// ToAccountListResponse converts accounts to an AccountListResponse DTO.
func ToAccountListResponse(accounts []*entity.BankAccount) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}
	return AccountListResponse{Accounts: responses}
}
