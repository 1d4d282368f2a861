// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment status of a sale.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// SaleLine represents a single line item within a sale.
type SaleLine struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Sale represents a completed or pending sales transaction.
// Date is the business date of the sale and may be nil for legacy
// imported records; such sales are excluded from any date-bounded view.
type Sale struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
	Date          *time.Time
	Lines         []SaleLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSale creates a new Sale entity. The total is computed from the lines.
func NewSale(
	customerID *uuid.UUID,
	customerName string,
	paymentStatus PaymentStatus,
	date time.Time,
	lines []SaleLine,
) *Sale {
	now := time.Now().UTC()

	total := decimal.Zero
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		total = total.Add(lines[i].Total)
	}

	return &Sale{
		ID:            uuid.New(),
		CustomerID:    customerID,
		CustomerName:  customerName,
		Total:         total,
		PaymentStatus: paymentStatus,
		Date:          &date,
		Lines:         lines,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
