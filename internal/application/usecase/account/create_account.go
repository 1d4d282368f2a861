// Package account contains bank account use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// CreateAccountInput represents the input for creating a bank account.
type CreateAccountInput struct {
	Name    string
	Balance decimal.Decimal
	Type    string
}

// CreateAccountOutput represents the output of creating a bank account.
type CreateAccountOutput struct {
	Account *entity.BankAccount
}

// CreateAccountUseCase creates a new bank account.
type CreateAccountUseCase struct {
	accountRepo adapter.BankAccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.BankAccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute creates the account.
func (uc *CreateAccountUseCase) Execute(
	ctx context.Context,
	input CreateAccountInput,
) (*CreateAccountOutput, error) {
	accountType := entity.AccountType(input.Type)
	if accountType != entity.AccountTypeChecking && accountType != entity.AccountTypeSavings {
		return nil, domainerror.ErrInvalidAccountType
	}

	account := entity.NewBankAccount(input.Name, input.Balance, accountType)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &CreateAccountOutput{Account: account}, nil
}
