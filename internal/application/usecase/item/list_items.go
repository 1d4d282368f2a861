// Package item contains inventory item use cases.
package item

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ListItemsOutput represents the output of listing inventory items.
type ListItemsOutput struct {
	Items []*entity.Item
}

// ListItemsUseCase lists all inventory items.
type ListItemsUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.ItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{itemRepo: itemRepo}
}

// Execute returns all items ordered by name.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return &ListItemsOutput{Items: items}, nil
}
