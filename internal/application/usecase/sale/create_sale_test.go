// Package sale contains sales-related use cases.
package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSaleNotFound
}

func (r *fakeSaleRepo) FindAll(_ context.Context) ([]*entity.Sale, error) {
	return r.sales, nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) FindBySKU(_ context.Context, sku string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, domainerror.ErrItemNotFound
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, domainerror.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func testItem(name string, price decimal.Decimal, stock int) *entity.Item {
	return entity.NewItem(name, name+"-SKU", "Gadgets", decimal.NewFromInt(10), price, stock, 2, "", nil)
}

func TestCreateSaleUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("records the sale and decrements stock", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		saleRepo := &fakeSaleRepo{}
		itemRepo := newFakeItemRepo(item)
		uc := NewCreateSaleUseCase(saleRepo, itemRepo, newFakeCustomerRepo())

		output, err := uc.Execute(ctx, CreateSaleInput{
			PaymentStatus: "paid",
			Lines: []CreateSaleLineInput{
				{ItemID: item.ID, Quantity: 3, UnitPrice: decimal.NewFromInt(25)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Sale.Total.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected total 75, got %s", output.Sale.Total)
		}
		if len(saleRepo.sales) != 1 {
			t.Fatalf("expected 1 persisted sale, got %d", len(saleRepo.sales))
		}
		if item.Stock != 7 {
			t.Errorf("expected stock 7 after sale, got %d", item.Stock)
		}
	})

	t.Run("defaults to pending payment", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		output, err := uc.Execute(ctx, CreateSaleInput{
			Lines: []CreateSaleLineInput{{ItemID: item.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Sale.PaymentStatus != entity.PaymentStatusPending {
			t.Errorf("expected pending payment status, got %s", output.Sale.PaymentStatus)
		}
	})

	t.Run("falls back to the item price when no unit price is given", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		output, err := uc.Execute(ctx, CreateSaleInput{
			Lines: []CreateSaleLineInput{{ItemID: item.ID, Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Sale.Total.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected total 50 from list price, got %s", output.Sale.Total)
		}
	})

	t.Run("rejects a sale without lines", func(t *testing.T) {
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(), newFakeCustomerRepo())

		_, err := uc.Execute(ctx, CreateSaleInput{})
		if !errors.Is(err, domainerror.ErrSaleWithoutLines) {
			t.Errorf("expected ErrSaleWithoutLines, got %v", err)
		}
	})

	t.Run("rejects an unknown payment status", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		_, err := uc.Execute(ctx, CreateSaleInput{
			PaymentStatus: "refunded",
			Lines:         []CreateSaleLineInput{{ItemID: item.ID, Quantity: 1}},
		})
		if !errors.Is(err, domainerror.ErrInvalidPaymentStatus) {
			t.Errorf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("rejects quantities above available stock", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 5)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		_, err := uc.Execute(ctx, CreateSaleInput{
			Lines: []CreateSaleLineInput{{ItemID: item.ID, Quantity: 6}},
		})
		if !errors.Is(err, domainerror.ErrInsufficientStock) {
			t.Errorf("expected ErrInsufficientStock, got %v", err)
		}
		if item.Stock != 5 {
			t.Errorf("expected stock untouched at 5, got %d", item.Stock)
		}
	})

	t.Run("rejects zero and negative quantities", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 5)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		_, err := uc.Execute(ctx, CreateSaleInput{
			Lines: []CreateSaleLineInput{{ItemID: item.ID, Quantity: 0}},
		})
		if !errors.Is(err, domainerror.ErrInsufficientStock) {
			t.Errorf("expected ErrInsufficientStock for zero quantity, got %v", err)
		}
	})

	t.Run("rejects an unknown line item", func(t *testing.T) {
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(), newFakeCustomerRepo())

		_, err := uc.Execute(ctx, CreateSaleInput{
			Lines: []CreateSaleLineInput{{ItemID: uuid.New(), Quantity: 1}},
		})
		if !errors.Is(err, domainerror.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("resolves the customer and updates lifetime aggregates", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		customer := entity.NewCustomer("Alice Smith", "alice@example.com", "")
		customerRepo := newFakeCustomerRepo(customer)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), customerRepo)

		output, err := uc.Execute(ctx, CreateSaleInput{
			CustomerID:   &customer.ID,
			CustomerName: "ignored",
			Lines:        []CreateSaleLineInput{{ItemID: item.ID, Quantity: 3}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Sale.CustomerName != "Alice Smith" {
			t.Errorf("expected customer name from the record, got %q", output.Sale.CustomerName)
		}
		if !customer.TotalSales.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected customer total sales 75, got %s", customer.TotalSales)
		}
		if customer.TotalOrders != 1 {
			t.Errorf("expected customer total orders 1, got %d", customer.TotalOrders)
		}
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		item := testItem("Widget", decimal.NewFromInt(25), 10)
		uc := NewCreateSaleUseCase(&fakeSaleRepo{}, newFakeItemRepo(item), newFakeCustomerRepo())

		unknown := uuid.New()
		_, err := uc.Execute(ctx, CreateSaleInput{
			CustomerID: &unknown,
			Lines:      []CreateSaleLineInput{{ItemID: item.ID, Quantity: 1}},
		})
		if !errors.Is(err, domainerror.ErrCustomerNotFound) {
			t.Errorf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}
