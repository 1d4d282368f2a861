// Package item contains inventory item use cases.
package item

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

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

func TestCreateItemUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active item", func(t *testing.T) {
		uc := NewCreateItemUseCase(newFakeItemRepo())

		output, err := uc.Execute(ctx, CreateItemInput{
			Name:     "Widget",
			SKU:      "WID-01",
			Category: "Gadgets",
			Cost:     decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(25),
			Stock:    50,
			MinStock: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Item.Status != entity.ItemStatusActive {
			t.Errorf("expected active status, got %s", output.Item.Status)
		}
		if output.Item.IsLowStock() {
			t.Error("expected item not to be low on stock")
		}
	})

	t.Run("rejects a duplicate SKU", func(t *testing.T) {
		existing := entity.NewItem("Widget", "WID-01", "Gadgets",
			decimal.NewFromInt(10), decimal.NewFromInt(25), 50, 5, "", nil)
		uc := NewCreateItemUseCase(newFakeItemRepo(existing))

		_, err := uc.Execute(ctx, CreateItemInput{Name: "Widget Clone", SKU: "WID-01"})
		if !errors.Is(err, domainerror.ErrSKUAlreadyExists) {
			t.Errorf("expected ErrSKUAlreadyExists, got %v", err)
		}
	})

	t.Run("allows an empty SKU even when another item has none", func(t *testing.T) {
		existing := entity.NewItem("Widget", "", "Gadgets",
			decimal.NewFromInt(10), decimal.NewFromInt(25), 50, 5, "", nil)
		uc := NewCreateItemUseCase(newFakeItemRepo(existing))

		if _, err := uc.Execute(ctx, CreateItemInput{Name: "Gizmo"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects negative stock levels", func(t *testing.T) {
		uc := NewCreateItemUseCase(newFakeItemRepo())

		_, err := uc.Execute(ctx, CreateItemInput{Name: "Widget", Stock: -1})
		if !errors.Is(err, domainerror.ErrNegativeStock) {
			t.Errorf("expected ErrNegativeStock, got %v", err)
		}
	})
}

func TestAdjustStockUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a positive adjustment", func(t *testing.T) {
		item := entity.NewItem("Widget", "WID-01", "Gadgets",
			decimal.NewFromInt(10), decimal.NewFromInt(25), 2, 5, "", nil)
		uc := NewAdjustStockUseCase(newFakeItemRepo(item))

		output, err := uc.Execute(ctx, AdjustStockInput{ItemID: item.ID, Delta: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Item.Stock != 7 {
			t.Errorf("expected stock 7, got %d", output.Item.Stock)
		}
	})

	t.Run("applies a negative adjustment down to zero", func(t *testing.T) {
		item := entity.NewItem("Widget", "WID-01", "Gadgets",
			decimal.NewFromInt(10), decimal.NewFromInt(25), 3, 5, "", nil)
		uc := NewAdjustStockUseCase(newFakeItemRepo(item))

		output, err := uc.Execute(ctx, AdjustStockInput{ItemID: item.ID, Delta: -3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Item.Stock != 0 {
			t.Errorf("expected stock 0, got %d", output.Item.Stock)
		}
	})

	t.Run("rejects adjustments below zero", func(t *testing.T) {
		item := entity.NewItem("Widget", "WID-01", "Gadgets",
			decimal.NewFromInt(10), decimal.NewFromInt(25), 2, 5, "", nil)
		uc := NewAdjustStockUseCase(newFakeItemRepo(item))

		_, err := uc.Execute(ctx, AdjustStockInput{ItemID: item.ID, Delta: -5})
		if !errors.Is(err, domainerror.ErrNegativeStock) {
			t.Errorf("expected ErrNegativeStock, got %v", err)
		}
		if item.Stock != 2 {
			t.Errorf("expected stock unchanged at 2, got %d", item.Stock)
		}
	})

	t.Run("rejects an unknown item", func(t *testing.T) {
		uc := NewAdjustStockUseCase(newFakeItemRepo())

		_, err := uc.Execute(ctx, AdjustStockInput{ItemID: uuid.New(), Delta: 1})
		if !errors.Is(err, domainerror.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
