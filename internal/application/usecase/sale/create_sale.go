// Package sale contains sales-related use cases.
package sale

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

// CreateSaleLineInput represents a single line of a sale to record.
// UnitPrice overrides the item's list price when positive.
type CreateSaleLineInput struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateSaleInput represents the input for recording a sale.
type CreateSaleInput struct {
	CustomerID    *uuid.UUID
	CustomerName  string
	PaymentStatus string
	Date          time.Time
	Lines         []CreateSaleLineInput
}

// CreateSaleOutput represents the output of recording a sale.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase records a sale, decrements stock for each line and
// maintains the customer's lifetime aggregates.
type CreateSaleUseCase struct {
	saleRepo     adapter.SaleRepository
	itemRepo     adapter.ItemRepository
	customerRepo adapter.CustomerRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	itemRepo adapter.ItemRepository,
	customerRepo adapter.CustomerRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
	}
}

// Execute records the sale.
func (uc *CreateSaleUseCase) Execute(
	ctx context.Context,
	input CreateSaleInput,
) (*CreateSaleOutput, error) {
	if len(input.Lines) == 0 {
		return nil, domainerror.ErrSaleWithoutLines
	}

	status := entity.PaymentStatus(input.PaymentStatus)
	if status == "" {
		status = entity.PaymentStatusPending
	}
	if status != entity.PaymentStatusPending && status != entity.PaymentStatusPaid {
		return nil, domainerror.ErrInvalidPaymentStatus
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	lines := make([]entity.SaleLine, 0, len(input.Lines))
	items := make([]*entity.Item, 0, len(input.Lines))
	for _, line := range input.Lines {
		item, err := uc.itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, domainerror.ErrItemNotFound) {
				return nil, fmt.Errorf("line item %s: %w", line.ItemID, domainerror.ErrItemNotFound)
			}
			return nil, fmt.Errorf("failed to load item: %w", err)
		}
		if line.Quantity <= 0 || line.Quantity > item.Stock {
			return nil, fmt.Errorf("%w: %s", domainerror.ErrInsufficientStock, item.Name)
		}

		unitPrice := line.UnitPrice
		if !unitPrice.IsPositive() {
			unitPrice = item.Price
		}
		lines = append(lines, entity.SaleLine{
			ItemID:    item.ID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Total:     unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
		items = append(items, item)
	}

	customerName := input.CustomerName
	var customer *entity.Customer
	if input.CustomerID != nil {
		var err error
		customer, err = uc.customerRepo.FindByID(ctx, *input.CustomerID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCustomerNotFound) {
				return nil, domainerror.ErrCustomerNotFound
			}
			return nil, fmt.Errorf("failed to load customer: %w", err)
		}
		customerName = customer.Name
	}

	sale := entity.NewSale(input.CustomerID, customerName, status, date, lines)
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	for i, line := range sale.Lines {
		item := items[i]
		item.Stock -= line.Quantity
		item.UpdatedAt = time.Now().UTC()
		if err := uc.itemRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to update stock for %s: %w", item.Name, err)
		}
	}

	if customer != nil {
		customer.TotalSales = customer.TotalSales.Add(sale.Total)
		customer.TotalOrders++
		customer.UpdatedAt = time.Now().UTC()
		if err := uc.customerRepo.Update(ctx, customer); err != nil {
			return nil, fmt.Errorf("failed to update customer aggregates: %w", err)
		}
	}

	return &CreateSaleOutput{Sale: sale}, nil
}
