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

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a customer by their ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindAll retrieves all customers ordered by name.
func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, customerModels[i].ToEntity())
	}
	return customers, nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Save(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
