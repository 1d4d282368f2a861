// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"context"

	"github.com/shopledger/backend/internal/domain/entity"
)

// DashboardRepository defines the read-only collection access the
// dashboard needs. Implementations fetch current snapshots; all
// windowing and aggregation happens in this package.
type DashboardRepository interface {
	// ListSales returns all sales with their line items.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// ListPurchases returns all purchase orders.
	ListPurchases(ctx context.Context) ([]*entity.Purchase, error)

	// ListItems returns the current inventory snapshot.
	ListItems(ctx context.Context) ([]*entity.Item, error)

	// ListCustomers returns all customers.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// ListBankAccounts returns all bank accounts.
	ListBankAccounts(ctx context.Context) ([]*entity.BankAccount, error)
}
