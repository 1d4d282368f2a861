// Package item contains inventory item use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// CreateItemInput represents the input for creating an inventory item.
type CreateItemInput struct {
	Name     string
	SKU      string
	Category string
	Cost     decimal.Decimal
	Price    decimal.Decimal
	Stock    int
	MinStock int
	Supplier string
	Tags     []string
}

// CreateItemOutput represents the output of creating an inventory item.
type CreateItemOutput struct {
	Item *entity.Item
}

// CreateItemUseCase creates a new inventory item with a unique SKU.
type CreateItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(itemRepo adapter.ItemRepository) *CreateItemUseCase {
	return &CreateItemUseCase{itemRepo: itemRepo}
}

// Execute creates the item.
func (uc *CreateItemUseCase) Execute(
	ctx context.Context,
	input CreateItemInput,
) (*CreateItemOutput, error) {
	if input.SKU != "" {
		existing, err := uc.itemRepo.FindBySKU(ctx, input.SKU)
		if err != nil && !errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, fmt.Errorf("failed to check sku: %w", err)
		}
		if existing != nil {
			return nil, domainerror.ErrSKUAlreadyExists
		}
	}

	if input.Stock < 0 || input.MinStock < 0 {
		return nil, domainerror.ErrNegativeStock
	}

	item := entity.NewItem(
		input.Name, input.SKU, input.Category,
		input.Cost, input.Price,
		input.Stock, input.MinStock,
		input.Supplier, input.Tags,
	)
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &CreateItemOutput{Item: item}, nil
}
