// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStatus represents whether a customer account is active.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer represents a customer of the business.
// TotalSales and TotalOrders are lifetime aggregates maintained when
// sales are recorded; window-scoped rankings are computed from the
// sales themselves, not from these fields.
type Customer struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	TotalSales  decimal.Decimal
	TotalOrders int
	Status      CustomerStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCustomer creates a new Customer entity.
func NewCustomer(name, email, phone string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		TotalSales: decimal.Zero,
		Status:     CustomerStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
