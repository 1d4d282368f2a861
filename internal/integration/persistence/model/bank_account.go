// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// BankAccountModel represents the bank_accounts table in the database.
type BankAccountModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Status    string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BankAccountModel.
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToEntity converts a BankAccountModel to a domain BankAccount entity.
func (m *BankAccountModel) ToEntity() *entity.BankAccount {
	return &entity.BankAccount{
		ID:        m.ID,
		Name:      m.Name,
		Balance:   m.Balance,
		Type:      entity.AccountType(m.Type),
		Status:    entity.AccountStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BankAccountFromEntity creates a BankAccountModel from a domain BankAccount entity.
func BankAccountFromEntity(account *entity.BankAccount) *BankAccountModel {
	return &BankAccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Balance:   account.Balance,
		Type:      string(account.Type),
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
