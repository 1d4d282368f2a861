// Package customer contains customer use cases.
package customer

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// CreateCustomerInput represents the input for creating a customer.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateCustomerOutput represents the output of creating a customer.
type CreateCustomerOutput struct {
	Customer *entity.Customer
}

// CreateCustomerUseCase creates a new customer.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo}
}

// Execute creates the customer.
func (uc *CreateCustomerUseCase) Execute(
	ctx context.Context,
	input CreateCustomerInput,
) (*CreateCustomerOutput, error) {
	customer := entity.NewCustomer(input.Name, input.Email, input.Phone)
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &CreateCustomerOutput{Customer: customer}, nil
}
