// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table in the database.
type PurchaseModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierName string          `gorm:"type:varchar(255)"`
	Total        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	Date         *time.Time      `gorm:"type:date;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationship (use Preload to load)
	Lines []PurchaseLineModel `gorm:"foreignKey:PurchaseID;references:ID"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseLineModel represents the purchase_lines table in the database.
type PurchaseLineModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the PurchaseLineModel.
func (PurchaseLineModel) TableName() string {
	return "purchase_lines"
}

// ToEntity converts a PurchaseModel to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	lines := make([]entity.PurchaseLine, 0, len(m.Lines))
	for _, line := range m.Lines {
		lines = append(lines, entity.PurchaseLine{
			ID:       line.ID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			UnitCost: line.UnitCost,
			Total:    line.Total,
		})
	}

	return &entity.Purchase{
		ID:           m.ID,
		SupplierName: m.SupplierName,
		Total:        m.Total,
		Status:       entity.PurchaseStatus(m.Status),
		Date:         m.Date,
		Lines:        lines,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// PurchaseFromEntity creates a PurchaseModel from a domain Purchase entity.
func PurchaseFromEntity(purchase *entity.Purchase) *PurchaseModel {
	lines := make([]PurchaseLineModel, 0, len(purchase.Lines))
	for _, line := range purchase.Lines {
		lines = append(lines, PurchaseLineModel{
			ID:         line.ID,
			PurchaseID: purchase.ID,
			ItemID:     line.ItemID,
			Quantity:   line.Quantity,
			UnitCost:   line.UnitCost,
			Total:      line.Total,
		})
	}

	return &PurchaseModel{
		ID:           purchase.ID,
		SupplierName: purchase.SupplierName,
		Total:        purchase.Total,
		Status:       string(purchase.Status),
		Date:         purchase.Date,
		Lines:        lines,
		CreatedAt:    purchase.CreatedAt,
		UpdatedAt:    purchase.UpdatedAt,
	}
}
