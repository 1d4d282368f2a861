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

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create creates a new item in the database.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an item by its ID.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindBySKU retrieves an item by its SKU.
func (r *itemRepository) FindBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).Where("sku = ?", sku).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves all items ordered by name.
func (r *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, itemModels[i].ToEntity())
	}
	return items, nil
}

// Update updates an existing item in the database.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
