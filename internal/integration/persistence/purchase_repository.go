// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create creates a new purchase and its lines in a single transaction.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Create(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a purchase with its lines by ID.
func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	result := r.db.WithContext(ctx).Preload("Lines").Where("id = ?", id).First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// FindAll retrieves all purchases with their lines, newest first.
func (r *purchaseRepository) FindAll(ctx context.Context) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).Preload("Lines").Order("date DESC, created_at DESC").Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseModels[i].ToEntity())
	}
	return purchases, nil
}

// Update updates an existing purchase in the database.
func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Omit("Lines").Save(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
