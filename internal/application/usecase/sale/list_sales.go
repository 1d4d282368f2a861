// Package sale contains sales-related use cases.
package sale

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase lists all recorded sales.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute returns all sales, newest first.
func (uc *ListSalesUseCase) Execute(ctx context.Context) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return &ListSalesOutput{Sales: sales}, nil
}
