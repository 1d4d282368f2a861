// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database.
type CustomerModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Email       string          `gorm:"type:varchar(255);index"`
	Phone       string          `gorm:"type:varchar(50)"`
	TotalSales  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalOrders int             `gorm:"not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		TotalSales:  m.TotalSales,
		TotalOrders: m.TotalOrders,
		Status:      entity.CustomerStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CustomerFromEntity creates a CustomerModel from a domain Customer entity.
func CustomerFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		TotalSales:  customer.TotalSales,
		TotalOrders: customer.TotalOrders,
		Status:      string(customer.Status),
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}
