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

// bankAccountRepository implements the adapter.BankAccountRepository interface.
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository instance.
func NewBankAccountRepository(db *gorm.DB) adapter.BankAccountRepository {
	return &bankAccountRepository{
		db: db,
	}
}

// Create creates a new bank account in the database.
func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bank account by its ID.
func (r *bankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	var accountModel model.BankAccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAll retrieves all bank accounts ordered by name.
func (r *bankAccountRepository) FindAll(ctx context.Context) ([]*entity.BankAccount, error) {
	var accountModels []model.BankAccountModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.BankAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}
	return accounts, nil
}
