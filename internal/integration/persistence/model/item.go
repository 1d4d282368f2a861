// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database.
type ItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	SKU       string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Category  string          `gorm:"type:varchar(100);index"`
	Cost      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	MinStock  int             `gorm:"not null;default:0"`
	Supplier  string          `gorm:"type:varchar(255)"`
	Tags      pq.StringArray  `gorm:"type:text"`
	Status    string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() *entity.Item {
	return &entity.Item{
		ID:        m.ID,
		Name:      m.Name,
		SKU:       m.SKU,
		Category:  m.Category,
		Cost:      m.Cost,
		Price:     m.Price,
		Stock:     m.Stock,
		MinStock:  m.MinStock,
		Supplier:  m.Supplier,
		Tags:      []string(m.Tags),
		Status:    entity.ItemStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	return &ItemModel{
		ID:        item.ID,
		Name:      item.Name,
		SKU:       item.SKU,
		Category:  item.Category,
		Cost:      item.Cost,
		Price:     item.Price,
		Stock:     item.Stock,
		MinStock:  item.MinStock,
		Supplier:  item.Supplier,
		Tags:      pq.StringArray(item.Tags),
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
