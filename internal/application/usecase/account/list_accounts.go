// Package account contains bank account use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ListAccountsOutput represents the output of listing bank accounts.
type ListAccountsOutput struct {
	Accounts []*entity.BankAccount
}

// ListAccountsUseCase lists all bank accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.BankAccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.BankAccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute returns all bank accounts ordered by name.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return &ListAccountsOutput{Accounts: accounts}, nil
}
