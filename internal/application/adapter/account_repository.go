// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// BankAccountRepository defines the interface for bank account persistence operations.
type BankAccountRepository interface {
	// Create persists a new bank account.
	Create(ctx context.Context, account *entity.BankAccount) error

	// FindByID retrieves a bank account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)

	// FindAll retrieves all bank accounts ordered by name.
	FindAll(ctx context.Context) ([]*entity.BankAccount, error)
}
