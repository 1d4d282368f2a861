// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create persists a new sale and its line items.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale with its lines by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves all sales with their lines, newest first.
	FindAll(ctx context.Context) ([]*entity.Sale, error)
}
