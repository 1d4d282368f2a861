// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// SalesStats holds window-scoped sales figures.
type SalesStats struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalOrders  int             `json:"total_orders"`
	PendingSales int             `json:"pending_sales"`
	PaidSales    int             `json:"paid_sales"`
}

// PurchaseStats holds window-scoped purchase figures.
type PurchaseStats struct {
	TotalPurchases    int             `json:"total_purchases"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	OrderedPurchases  int             `json:"ordered_purchases"`
	ReceivedPurchases int             `json:"received_purchases"`
	PaidPurchases     int             `json:"paid_purchases"`
}

// InventoryStats holds current-snapshot inventory figures. Inventory is
// deliberately never windowed: stock levels describe the present, not a
// reporting period.
type InventoryStats struct {
	TotalItems      int             `json:"total_items"`
	ActiveItems     int             `json:"active_items"`
	LowStockItems   int             `json:"low_stock_items"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}

// CustomerStats holds current-snapshot customer figures.
type CustomerStats struct {
	TotalCustomers  int `json:"total_customers"`
	ActiveCustomers int `json:"active_customers"`
}

// BankStats holds current-snapshot bank account figures.
type BankStats struct {
	TotalBalance     decimal.Decimal `json:"total_balance"`
	CheckingAccounts int             `json:"checking_accounts"`
	SavingsAccounts  int             `json:"savings_accounts"`
	ActiveAccounts   int             `json:"active_accounts"`
}

// Metrics is the scalar summary block of the dashboard. Receivable,
// payable, cash and net worth are computed from the full collections so
// they reflect current state regardless of the reporting window;
// ProfitMargin is window-scoped.
type Metrics struct {
	Sales     SalesStats     `json:"sales"`
	Purchases PurchaseStats  `json:"purchases"`
	Inventory InventoryStats `json:"inventory"`
	Customers CustomerStats  `json:"customers"`
	Bank      BankStats      `json:"bank"`

	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	CashInHand      decimal.Decimal `json:"cash_in_hand"`
	NetWorth        decimal.Decimal `json:"net_worth"`
	ProfitMargin    float64         `json:"profit_margin"`
}

// MetricsInput carries the collections and active range for ComputeMetrics.
type MetricsInput struct {
	Sales     []*entity.Sale
	Purchases []*entity.Purchase
	Items     []*entity.Item
	Customers []*entity.Customer
	Accounts  []*entity.BankAccount
	Range     valueobject.DateRange
}

// ComputeMetrics derives the scalar dashboard metrics. It is a pure
// function of its input: collections are never mutated, unresolvable
// item references cost zero, and zero denominators yield zero ratios.
func ComputeMetrics(in MetricsInput) Metrics {
	var m Metrics

	windowedSales := FilterSalesByDate(in.Sales, in.Range)
	windowedPurchases := FilterPurchasesByDate(in.Purchases, in.Range)

	m.Sales.TotalSales = decimal.Zero
	m.Sales.TotalOrders = len(windowedSales)
	for _, s := range windowedSales {
		m.Sales.TotalSales = m.Sales.TotalSales.Add(s.Total)
		switch s.PaymentStatus {
		case entity.PaymentStatusPending:
			m.Sales.PendingSales++
		case entity.PaymentStatusPaid:
			m.Sales.PaidSales++
		}
	}

	m.Purchases.TotalPurchases = len(windowedPurchases)
	m.Purchases.TotalAmount = decimal.Zero
	for _, p := range windowedPurchases {
		m.Purchases.TotalAmount = m.Purchases.TotalAmount.Add(p.Total)
		switch p.Status {
		case entity.PurchaseStatusOrdered:
			m.Purchases.OrderedPurchases++
		case entity.PurchaseStatusReceived:
			m.Purchases.ReceivedPurchases++
		case entity.PurchaseStatusPaid:
			m.Purchases.PaidPurchases++
		}
	}

	m.Inventory.TotalItems = len(in.Items)
	m.Inventory.TotalStockValue = decimal.Zero
	for _, item := range in.Items {
		if item.Status == entity.ItemStatusActive {
			m.Inventory.ActiveItems++
		}
		if item.IsLowStock() {
			m.Inventory.LowStockItems++
		}
		m.Inventory.TotalStockValue = m.Inventory.TotalStockValue.Add(item.StockValue())
	}

	m.Customers.TotalCustomers = len(in.Customers)
	for _, c := range in.Customers {
		if c.Status == entity.CustomerStatusActive {
			m.Customers.ActiveCustomers++
		}
	}

	m.Bank.TotalBalance = decimal.Zero
	for _, a := range in.Accounts {
		m.Bank.TotalBalance = m.Bank.TotalBalance.Add(a.Balance)
		switch a.Type {
		case entity.AccountTypeChecking:
			m.Bank.CheckingAccounts++
		case entity.AccountTypeSavings:
			m.Bank.SavingsAccounts++
		}
		if a.Status == entity.AccountStatusActive {
			m.Bank.ActiveAccounts++
		}
	}

	// Cross-cutting figures use the unfiltered collections: outstanding
	// receivables and payables describe current state, not the window.
	m.TotalReceivable = decimal.Zero
	for _, s := range in.Sales {
		if s.PaymentStatus == entity.PaymentStatusPending {
			m.TotalReceivable = m.TotalReceivable.Add(s.Total)
		}
	}

	m.TotalPayable = decimal.Zero
	for _, p := range in.Purchases {
		if p.Status == entity.PurchaseStatusOrdered {
			m.TotalPayable = m.TotalPayable.Add(p.Total)
		}
	}

	m.CashInHand = m.Bank.TotalBalance
	m.NetWorth = m.CashInHand.Add(m.Inventory.TotalStockValue).Sub(m.TotalPayable)
	m.ProfitMargin = profitMargin(windowedSales, in.Items)

	return m
}

// profitMargin computes (revenue - cost of goods) / revenue over the
// windowed sales, using each item's recorded unit cost.
func profitMargin(windowedSales []*entity.Sale, items []*entity.Item) float64 {
	costByItem := make(map[uuid.UUID]decimal.Decimal, len(items))
	for _, item := range items {
		costByItem[item.ID] = item.Cost
	}

	revenue := decimal.Zero
	cost := decimal.Zero
	for _, s := range windowedSales {
		revenue = revenue.Add(s.Total)
		for _, line := range s.Lines {
			unitCost, ok := costByItem[line.ItemID]
			if !ok {
				continue
			}
			cost = cost.Add(unitCost.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	if revenue.IsZero() {
		return 0
	}
	margin, _ := revenue.Sub(cost).Div(revenue).Round(4).Float64()
	return margin
}

// GetMetricsInput represents the input for getting dashboard metrics.
type GetMetricsInput struct {
	Period valueobject.Period
}

// GetMetricsOutput represents the output of getting dashboard metrics.
type GetMetricsOutput struct {
	Period  valueobject.Period    `json:"period"`
	Range   valueobject.DateRange `json:"range"`
	Metrics Metrics               `json:"metrics"`
}

// GetMetricsUseCase handles computing the scalar dashboard metrics.
type GetMetricsUseCase struct {
	dashboardRepo DashboardRepository
	cache         *Cache
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(dashboardRepo DashboardRepository, cache *Cache) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		dashboardRepo: dashboardRepo,
		cache:         cache,
	}
}

// Execute computes the dashboard metrics for the given period.
func (uc *GetMetricsUseCase) Execute(
	ctx context.Context,
	input GetMetricsInput,
) (*GetMetricsOutput, error) {
	period, err := validatePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	snap, err := loadCollections(ctx, uc.dashboardRepo)
	if err != nil {
		return nil, err
	}

	key := uc.cache.Key("metrics", period,
		snap.sales, snap.purchases, snap.items, snap.customers, snap.accounts)
	var cached GetMetricsOutput
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	r := period.Resolve(time.Now().UTC())
	output := &GetMetricsOutput{
		Period: period,
		Range:  r,
		Metrics: ComputeMetrics(MetricsInput{
			Sales:     snap.sales,
			Purchases: snap.purchases,
			Items:     snap.items,
			Customers: snap.customers,
			Accounts:  snap.accounts,
			Range:     r,
		}),
	}

	uc.cache.Set(ctx, key, output)
	return output, nil
}

// collections is a consistent snapshot of every input collection.
type collections struct {
	sales     []*entity.Sale
	purchases []*entity.Purchase
	items     []*entity.Item
	customers []*entity.Customer
	accounts  []*entity.BankAccount
}

// loadCollections fetches all dashboard inputs from the repository.
func loadCollections(ctx context.Context, repo DashboardRepository) (*collections, error) {
	sales, err := repo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	purchases, err := repo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	customers, err := repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	accounts, err := repo.ListBankAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	return &collections{
		sales:     sales,
		purchases: purchases,
		items:     items,
		customers: customers,
		accounts:  accounts,
	}, nil
}

// validatePeriod applies the default period and rejects unknown tokens.
func validatePeriod(p valueobject.Period) (valueobject.Period, error) {
	if p == "" {
		return valueobject.PeriodThisMonth, nil
	}
	if !p.Valid() {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"invalid period token",
			domainerror.ErrInvalidPeriod,
		)
	}
	return p, nil
}
