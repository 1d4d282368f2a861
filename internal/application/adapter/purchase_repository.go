// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// PurchaseRepository defines the interface for purchase persistence operations.
type PurchaseRepository interface {
	// Create persists a new purchase order and its line items.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByID retrieves a purchase with its lines by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// FindAll retrieves all purchases with their lines, newest first.
	FindAll(ctx context.Context) ([]*entity.Purchase, error)

	// Update persists changes to an existing purchase.
	Update(ctx context.Context, purchase *entity.Purchase) error
}
