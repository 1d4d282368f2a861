// Package customer contains customer use cases.
package customer

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ListCustomersOutput represents the output of listing customers.
type ListCustomersOutput struct {
	Customers []*entity.Customer
}

// ListCustomersUseCase lists all customers.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute returns all customers ordered by name.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) (*ListCustomersOutput, error) {
	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return &ListCustomersOutput{Customers: customers}, nil
}
