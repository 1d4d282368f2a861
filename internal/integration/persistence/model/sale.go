// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  string          `gorm:"type:varchar(255)"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;index"`
	Date          *time.Time      `gorm:"type:date;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationship (use Preload to load)
	Lines []SaleLineModel `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleLineModel represents the sale_lines table in the database.
type SaleLineModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the SaleLineModel.
func (SaleLineModel) TableName() string {
	return "sale_lines"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	lines := make([]entity.SaleLine, 0, len(m.Lines))
	for _, line := range m.Lines {
		lines = append(lines, entity.SaleLine{
			ID:        line.ID,
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total,
		})
	}

	return &entity.Sale{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		Total:         m.Total,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		Date:          m.Date,
		Lines:         lines,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	lines := make([]SaleLineModel, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, SaleLineModel{
			ID:        line.ID,
			SaleID:    sale.ID,
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total,
		})
	}

	return &SaleModel{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		Total:         sale.Total,
		PaymentStatus: string(sale.PaymentStatus),
		Date:          sale.Date,
		Lines:         lines,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}
