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

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale and its lines in a single transaction.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a sale with its lines by ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Preload("Lines").Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves all sales with their lines, newest first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).Preload("Lines").Order("date DESC, created_at DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleModels[i].ToEntity())
	}
	return sales, nil
}
