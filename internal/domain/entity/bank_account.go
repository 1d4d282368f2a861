// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the type of a bank account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// AccountStatus represents whether a bank account is active.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

// BankAccount represents a business bank account.
type BankAccount struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Type      AccountType
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBankAccount creates a new BankAccount entity.
func NewBankAccount(name string, balance decimal.Decimal, accountType AccountType) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Type:      accountType,
		Status:    AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
