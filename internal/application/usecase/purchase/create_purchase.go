// Package purchase contains purchase-order use cases.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// CreatePurchaseLineInput represents a single line of a purchase order.
type CreatePurchaseLineInput struct {
	ItemID   uuid.UUID
	Quantity int
	UnitCost decimal.Decimal
}

// CreatePurchaseInput represents the input for placing a purchase order.
type CreatePurchaseInput struct {
	SupplierName string
	Date         time.Time
	Lines        []CreatePurchaseLineInput
}

// CreatePurchaseOutput represents the output of placing a purchase order.
type CreatePurchaseOutput struct {
	Purchase *entity.Purchase
}

// CreatePurchaseUseCase places a purchase order in the ordered state.
// Stock is only incremented when the order is received.
type CreatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	itemRepo     adapter.ItemRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	itemRepo adapter.ItemRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
	}
}

// Execute places the purchase order.
func (uc *CreatePurchaseUseCase) Execute(
	ctx context.Context,
	input CreatePurchaseInput,
) (*CreatePurchaseOutput, error) {
	if len(input.Lines) == 0 {
		return nil, domainerror.ErrPurchaseWithoutLines
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	lines := make([]entity.PurchaseLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		item, err := uc.itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, domainerror.ErrItemNotFound) {
				return nil, fmt.Errorf("line item %s: %w", line.ItemID, domainerror.ErrItemNotFound)
			}
			return nil, fmt.Errorf("failed to load item: %w", err)
		}

		unitCost := line.UnitCost
		if !unitCost.IsPositive() {
			unitCost = item.Cost
		}
		lines = append(lines, entity.PurchaseLine{
			ItemID:   item.ID,
			Quantity: line.Quantity,
			UnitCost: unitCost,
			Total:    unitCost.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	purchase := entity.NewPurchase(input.SupplierName, date, lines)
	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return &CreatePurchaseOutput{Purchase: purchase}, nil
}
