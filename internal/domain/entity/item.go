// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStatus represents whether an inventory item is active.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// Item represents an inventory item.
type Item struct {
	ID        uuid.UUID
	Name      string
	SKU       string
	Category  string
	Cost      decimal.Decimal
	Price     decimal.Decimal
	Stock     int
	MinStock  int
	Supplier  string
	Tags      []string
	Status    ItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a new Item entity.
func NewItem(
	name, sku, category string,
	cost, price decimal.Decimal,
	stock, minStock int,
	supplier string,
	tags []string,
) *Item {
	now := time.Now().UTC()

	return &Item{
		ID:        uuid.New(),
		Name:      name,
		SKU:       sku,
		Category:  category,
		Cost:      cost,
		Price:     price,
		Stock:     stock,
		MinStock:  minStock,
		Supplier:  supplier,
		Tags:      tags,
		Status:    ItemStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLowStock reports whether the item's stock is at or below its minimum.
func (i *Item) IsLowStock() bool {
	return i.Stock <= i.MinStock
}

// StockValue returns the value of the current stock at unit cost.
func (i *Item) StockValue() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(int64(i.Stock)))
}
