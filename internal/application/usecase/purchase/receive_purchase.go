// Package purchase contains purchase-order use cases.
package purchase

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

// ReceivePurchaseInput represents the input for receiving a purchase order.
type ReceivePurchaseInput struct {
	PurchaseID uuid.UUID
}

// ReceivePurchaseOutput represents the output of receiving a purchase order.
type ReceivePurchaseOutput struct {
	Purchase *entity.Purchase
}

// ReceivePurchaseUseCase marks an ordered purchase as received and
// increments stock for each line.
type ReceivePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	itemRepo     adapter.ItemRepository
}

// NewReceivePurchaseUseCase creates a new ReceivePurchaseUseCase instance.
func NewReceivePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	itemRepo adapter.ItemRepository,
) *ReceivePurchaseUseCase {
	return &ReceivePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
	}
}

// Execute receives the purchase order.
func (uc *ReceivePurchaseUseCase) Execute(
	ctx context.Context,
	input ReceivePurchaseInput,
) (*ReceivePurchaseOutput, error) {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPurchaseNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to load purchase: %w", err)
	}

	if purchase.Status != entity.PurchaseStatusOrdered {
		return nil, domainerror.ErrPurchaseAlreadyReceived
	}

	for _, line := range purchase.Lines {
		item, err := uc.itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, domainerror.ErrItemNotFound) {
				// The item was removed after ordering; nothing to restock.
				continue
			}
			return nil, fmt.Errorf("failed to load item: %w", err)
		}
		item.Stock += line.Quantity
		item.UpdatedAt = time.Now().UTC()
		if err := uc.itemRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to restock %s: %w", item.Name, err)
		}
	}

	purchase.Status = entity.PurchaseStatusReceived
	purchase.UpdatedAt = time.Now().UTC()
	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	return &ReceivePurchaseOutput{Purchase: purchase}, nil
}
