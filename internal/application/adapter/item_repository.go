// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// ItemRepository defines the interface for inventory item persistence operations.
type ItemRepository interface {
	// Create persists a new inventory item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindBySKU retrieves an item by its SKU.
	FindBySKU(ctx context.Context, sku string) (*entity.Item, error)

	// FindAll retrieves all items ordered by name.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *entity.Item) error
}
