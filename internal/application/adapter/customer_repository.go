// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindAll retrieves all customers ordered by name.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// Update persists changes to an existing customer.
	Update(ctx context.Context, customer *entity.Customer) error
}
