// Package purchase contains purchase-order use cases.
package purchase

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ListPurchasesOutput represents the output of listing purchases.
type ListPurchasesOutput struct {
	Purchases []*entity.Purchase
}

// ListPurchasesUseCase lists all purchase orders.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo}
}

// Execute returns all purchase orders, newest first.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context) (*ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return &ListPurchasesOutput{Purchases: purchases}, nil
}
