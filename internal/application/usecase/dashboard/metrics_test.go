// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

func TestComputeMetrics(t *testing.T) {
	t.Run("single pending sale today under last7days", func(t *testing.T) {
		now := time.Now().UTC()
		today := valueobject.DateOnly(now)

		m := ComputeMetrics(MetricsInput{
			Sales: []*entity.Sale{
				testSale(100, entity.PaymentStatusPending, &today),
			},
			Range: valueobject.PeriodLast7Days.Resolve(now),
		})

		if !m.Sales.TotalSales.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total sales 100, got %s", m.Sales.TotalSales)
		}
		if m.Sales.TotalOrders != 1 {
			t.Errorf("expected 1 order, got %d", m.Sales.TotalOrders)
		}
		if m.Sales.PendingSales != 1 {
			t.Errorf("expected 1 pending sale, got %d", m.Sales.PendingSales)
		}
		if m.Sales.PaidSales != 0 {
			t.Errorf("expected 0 paid sales, got %d", m.Sales.PaidSales)
		}
		// The pending sale is also an outstanding receivable.
		if !m.TotalReceivable.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected receivable 100, got %s", m.TotalReceivable)
		}
	})

	t.Run("inventory and bank stats ignore the window", func(t *testing.T) {
		lowStock := testItem("Widget", "tools", 4, 10, 3, 5)
		healthy := testItem("Gadget", "tools", 2, 6, 20, 5)
		healthy.Status = entity.ItemStatusInactive

		m := ComputeMetrics(MetricsInput{
			Items: []*entity.Item{lowStock, healthy},
			Accounts: []*entity.BankAccount{
				{ID: uuid.New(), Balance: decimal.NewFromInt(500), Type: entity.AccountTypeChecking, Status: entity.AccountStatusActive},
				{ID: uuid.New(), Balance: decimal.NewFromInt(1500), Type: entity.AccountTypeSavings, Status: entity.AccountStatusInactive},
			},
			// A narrow window that matches nothing must not affect snapshots.
			Range: rangeOf(
				time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1999, time.January, 2, 0, 0, 0, 0, time.UTC),
			),
		})

		if m.Inventory.TotalItems != 2 {
			t.Errorf("expected 2 items, got %d", m.Inventory.TotalItems)
		}
		if m.Inventory.ActiveItems != 1 {
			t.Errorf("expected 1 active item, got %d", m.Inventory.ActiveItems)
		}
		if m.Inventory.LowStockItems != 1 {
			t.Errorf("expected 1 low-stock item, got %d", m.Inventory.LowStockItems)
		}
		// 3*4 + 20*2 = 52
		if !m.Inventory.TotalStockValue.Equal(decimal.NewFromInt(52)) {
			t.Errorf("expected stock value 52, got %s", m.Inventory.TotalStockValue)
		}
		if !m.Bank.TotalBalance.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected balance 2000, got %s", m.Bank.TotalBalance)
		}
		if m.Bank.CheckingAccounts != 1 || m.Bank.SavingsAccounts != 1 {
			t.Errorf("expected 1 checking and 1 savings, got %d/%d",
				m.Bank.CheckingAccounts, m.Bank.SavingsAccounts)
		}
		if !m.CashInHand.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected cash in hand 2000, got %s", m.CashInHand)
		}
	})

	t.Run("net worth is cash plus stock value minus payables", func(t *testing.T) {
		item := testItem("Widget", "tools", 10, 25, 10, 2)

		m := ComputeMetrics(MetricsInput{
			Items: []*entity.Item{item},
			Purchases: []*entity.Purchase{
				testPurchase(30, entity.PurchaseStatusOrdered, dateOf(2025, time.January, 5)),
				testPurchase(99, entity.PurchaseStatusPaid, dateOf(2025, time.January, 6)),
			},
			Accounts: []*entity.BankAccount{
				{ID: uuid.New(), Balance: decimal.NewFromInt(200), Type: entity.AccountTypeChecking, Status: entity.AccountStatusActive},
			},
			Range: valueobject.DateRange{},
		})

		// 200 + 100 - 30 (only the ordered purchase is payable)
		if !m.TotalPayable.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected payable 30, got %s", m.TotalPayable)
		}
		if !m.NetWorth.Equal(decimal.NewFromInt(270)) {
			t.Errorf("expected net worth 270, got %s", m.NetWorth)
		}
	})

	t.Run("profit margin uses recorded item cost", func(t *testing.T) {
		item := testItem("Widget", "tools", 6, 10, 50, 5)
		date := dateOf(2025, time.March, 10)
		sale := testSale(100, entity.PaymentStatusPaid, date, testLine(item.ID, 10, 10))

		m := ComputeMetrics(MetricsInput{
			Sales: []*entity.Sale{sale},
			Items: []*entity.Item{item},
			Range: rangeOf(
				time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			),
		})

		// revenue 100, cost 60 -> margin 0.4
		if m.ProfitMargin != 0.4 {
			t.Errorf("expected margin 0.4, got %v", m.ProfitMargin)
		}
	})

	t.Run("missing item reference costs zero", func(t *testing.T) {
		date := dateOf(2025, time.March, 10)
		sale := testSale(100, entity.PaymentStatusPaid, date, testLine(uuid.New(), 10, 10))

		m := ComputeMetrics(MetricsInput{
			Sales: []*entity.Sale{sale},
			Range: valueobject.DateRange{},
		})

		if m.ProfitMargin != 1 {
			t.Errorf("expected margin 1 with zero cost, got %v", m.ProfitMargin)
		}
	})

	t.Run("zero revenue yields zero margin", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{Range: valueobject.DateRange{}})
		if m.ProfitMargin != 0 {
			t.Errorf("expected margin 0, got %v", m.ProfitMargin)
		}
	})

	t.Run("empty collections return zero-valued metrics", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{Range: valueobject.PeriodLast30Days.Resolve(time.Now().UTC())})
		if !m.Sales.TotalSales.IsZero() || m.Sales.TotalOrders != 0 {
			t.Error("expected zero sales stats")
		}
		if !m.NetWorth.IsZero() {
			t.Errorf("expected zero net worth, got %s", m.NetWorth)
		}
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		date := dateOf(2025, time.March, 10)
		item := testItem("Widget", "tools", 6, 10, 50, 5)
		in := MetricsInput{
			Sales: []*entity.Sale{
				testSale(100, entity.PaymentStatusPaid, date, testLine(item.ID, 10, 10)),
			},
			Items: []*entity.Item{item},
			Range: valueobject.DateRange{},
		}

		first := ComputeMetrics(in)
		second := ComputeMetrics(in)
		if !first.Sales.TotalSales.Equal(second.Sales.TotalSales) ||
			first.ProfitMargin != second.ProfitMargin ||
			!first.NetWorth.Equal(second.NetWorth) {
			t.Error("expected identical metrics on recomputation")
		}
	})
}
