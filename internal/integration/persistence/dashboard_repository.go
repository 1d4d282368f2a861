// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/application/usecase/dashboard"
	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
// The aggregation engine filters in memory, so every listing loads the
// full collection; date scoping happens in the use cases.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// ListSales retrieves all sales with their lines.
func (r *dashboardRepository) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).Preload("Lines").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleModels[i].ToEntity())
	}
	return sales, nil
}

// ListPurchases retrieves all purchases with their lines.
func (r *dashboardRepository) ListPurchases(ctx context.Context) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).Preload("Lines").Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseModels[i].ToEntity())
	}
	return purchases, nil
}

// ListItems retrieves all inventory items.
func (r *dashboardRepository) ListItems(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, itemModels[i].ToEntity())
	}
	return items, nil
}

// ListCustomers retrieves all customers.
func (r *dashboardRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, customerModels[i].ToEntity())
	}
	return customers, nil
}

// ListBankAccounts retrieves all bank accounts.
func (r *dashboardRepository) ListBankAccounts(ctx context.Context) ([]*entity.BankAccount, error) {
	var accountModels []model.BankAccountModel
	result := r.db.WithContext(ctx).Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.BankAccount, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}
	return accounts, nil
}
