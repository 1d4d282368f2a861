// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the fulfilment status of a purchase order.
type PurchaseStatus string

const (
	PurchaseStatusOrdered  PurchaseStatus = "ordered"
	PurchaseStatusReceived PurchaseStatus = "received"
	PurchaseStatusPaid     PurchaseStatus = "paid"
)

// PurchaseLine represents a single line item within a purchase order.
type PurchaseLine struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	Quantity int
	UnitCost decimal.Decimal
	Total    decimal.Decimal
}

// Purchase represents a purchase order placed with a supplier.
// Date is the business date of the order and may be nil for legacy
// imported records.
type Purchase struct {
	ID           uuid.UUID
	SupplierName string
	Total        decimal.Decimal
	Status       PurchaseStatus
	Date         *time.Time
	Lines        []PurchaseLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPurchase creates a new Purchase entity in the ordered state.
// The total is computed from the lines.
func NewPurchase(supplierName string, date time.Time, lines []PurchaseLine) *Purchase {
	now := time.Now().UTC()

	total := decimal.Zero
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		total = total.Add(lines[i].Total)
	}

	return &Purchase{
		ID:           uuid.New(),
		SupplierName: supplierName,
		Total:        total,
		Status:       PurchaseStatusOrdered,
		Date:         &date,
		Lines:        lines,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
