// Package item contains inventory item use cases.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// AdjustStockInput represents the input for a manual stock adjustment.
// Delta may be negative; the resulting stock must not go below zero.
type AdjustStockInput struct {
	ItemID uuid.UUID
	Delta  int
}

// AdjustStockOutput represents the output of a manual stock adjustment.
type AdjustStockOutput struct {
	Item *entity.Item
}

// AdjustStockUseCase applies a manual stock correction to an item.
type AdjustStockUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewAdjustStockUseCase creates a new AdjustStockUseCase instance.
func NewAdjustStockUseCase(itemRepo adapter.ItemRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{itemRepo: itemRepo}
}

// Execute applies the adjustment.
func (uc *AdjustStockUseCase) Execute(
	ctx context.Context,
	input AdjustStockInput,
) (*AdjustStockOutput, error) {
	item, err := uc.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	next := item.Stock + input.Delta
	if next < 0 {
		return nil, domainerror.ErrNegativeStock
	}

	item.Stock = next
	item.UpdatedAt = time.Now().UTC()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &AdjustStockOutput{Item: item}, nil
}
