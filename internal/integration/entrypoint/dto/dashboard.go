// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopledger/backend/internal/application/usecase/dashboard"
)

// MetricsResponse represents the response for the dashboard metrics API.
type MetricsResponse struct {
	Period    string                 `json:"period"`
	StartDate string                 `json:"start_date,omitempty"`
	EndDate   string                 `json:"end_date,omitempty"`
	Sales     SalesStatsResponse     `json:"sales"`
	Purchases PurchaseStatsResponse  `json:"purchases"`
	Inventory InventoryStatsResponse `json:"inventory"`
	Customers CustomerStatsResponse  `json:"customers"`
	Bank      BankStatsResponse      `json:"bank"`

	TotalReceivable float64 `json:"total_receivable"`
	TotalPayable    float64 `json:"total_payable"`
	CashInHand      float64 `json:"cash_in_hand"`
	NetWorth        float64 `json:"net_worth"`
	ProfitMargin    float64 `json:"profit_margin"`
}

// SalesStatsResponse represents the sales block of the metrics response.
type SalesStatsResponse struct {
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int     `json:"total_orders"`
	PendingSales int     `json:"pending_sales"`
	PaidSales    int     `json:"paid_sales"`
}

// PurchaseStatsResponse represents the purchases block of the metrics response.
type PurchaseStatsResponse struct {
	TotalPurchases    int     `json:"total_purchases"`
	TotalAmount       float64 `json:"total_amount"`
	OrderedPurchases  int     `json:"ordered_purchases"`
	ReceivedPurchases int     `json:"received_purchases"`
	PaidPurchases     int     `json:"paid_purchases"`
}

// InventoryStatsResponse represents the inventory block of the metrics response.
type InventoryStatsResponse struct {
	TotalItems      int     `json:"total_items"`
	ActiveItems     int     `json:"active_items"`
	LowStockItems   int     `json:"low_stock_items"`
	TotalStockValue float64 `json:"total_stock_value"`
}

// CustomerStatsResponse represents the customers block of the metrics response.
type CustomerStatsResponse struct {
	TotalCustomers  int `json:"total_customers"`
	ActiveCustomers int `json:"active_customers"`
}

// BankStatsResponse represents the bank block of the metrics response.
type BankStatsResponse struct {
	TotalBalance     float64 `json:"total_balance"`
	CheckingAccounts int     `json:"checking_accounts"`
	SavingsAccounts  int     `json:"savings_accounts"`
	ActiveAccounts   int     `json:"active_accounts"`
}

// ToMetricsResponse converts a GetMetricsOutput to a MetricsResponse DTO.
func ToMetricsResponse(output *dashboard.GetMetricsOutput) MetricsResponse {
	m := output.Metrics

	totalSales, _ := m.Sales.TotalSales.Float64()
	totalPurchases, _ := m.Purchases.TotalAmount.Float64()
	stockValue, _ := m.Inventory.TotalStockValue.Float64()
	totalBalance, _ := m.Bank.TotalBalance.Float64()
	receivable, _ := m.TotalReceivable.Float64()
	payable, _ := m.TotalPayable.Float64()
	cash, _ := m.CashInHand.Float64()
	netWorth, _ := m.NetWorth.Float64()

	response := MetricsResponse{
		Period: string(output.Period),
		Sales: SalesStatsResponse{
			TotalSales:   totalSales,
			TotalOrders:  m.Sales.TotalOrders,
			PendingSales: m.Sales.PendingSales,
			PaidSales:    m.Sales.PaidSales,
		},
		Purchases: PurchaseStatsResponse{
			TotalPurchases:    m.Purchases.TotalPurchases,
			TotalAmount:       totalPurchases,
			OrderedPurchases:  m.Purchases.OrderedPurchases,
			ReceivedPurchases: m.Purchases.ReceivedPurchases,
			PaidPurchases:     m.Purchases.PaidPurchases,
		},
		Inventory: InventoryStatsResponse{
			TotalItems:      m.Inventory.TotalItems,
			ActiveItems:     m.Inventory.ActiveItems,
			LowStockItems:   m.Inventory.LowStockItems,
			TotalStockValue: stockValue,
		},
		Customers: CustomerStatsResponse{
			TotalCustomers:  m.Customers.TotalCustomers,
			ActiveCustomers: m.Customers.ActiveCustomers,
		},
		Bank: BankStatsResponse{
			TotalBalance:     totalBalance,
			CheckingAccounts: m.Bank.CheckingAccounts,
			SavingsAccounts:  m.Bank.SavingsAccounts,
			ActiveAccounts:   m.Bank.ActiveAccounts,
		},
		TotalReceivable: receivable,
		TotalPayable:    payable,
		CashInHand:      cash,
		NetWorth:        netWorth,
		ProfitMargin:    m.ProfitMargin,
	}

	if output.Range.Start != nil {
		response.StartDate = output.Range.Start.Format("2006-01-02")
	}
	if output.Range.End != nil {
		response.EndDate = output.Range.End.Format("2006-01-02")
	}
	return response
}

// SalesSeriesResponse represents the response for the sales series API.
type SalesSeriesResponse struct {
	Period      string                 `json:"period"`
	Granularity string                 `json:"granularity"`
	Series      []SeriesBucketResponse `json:"series"`
}

// SeriesBucketResponse represents a single chart bucket in the response.
type SeriesBucketResponse struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
	Profit float64 `json:"profit"`
	Target float64 `json:"target"`
}

// ToSalesSeriesResponse converts a GetSalesSeriesOutput to a SalesSeriesResponse DTO.
func ToSalesSeriesResponse(output *dashboard.GetSalesSeriesOutput) SalesSeriesResponse {
	series := make([]SeriesBucketResponse, len(output.Series))
	for i, bucket := range output.Series {
		sales, _ := bucket.Sales.Float64()
		profit, _ := bucket.Profit.Float64()
		target, _ := bucket.Target.Float64()
		series[i] = SeriesBucketResponse{
			Date:   bucket.Date.Format("2006-01-02"),
			Label:  bucket.Label,
			Sales:  sales,
			Orders: bucket.Orders,
			Profit: profit,
			Target: target,
		}
	}

	return SalesSeriesResponse{
		Period:      string(output.Period),
		Granularity: string(output.Granularity),
		Series:      series,
	}
}

// CategoryBreakdownResponse represents the response for the category breakdown API.
type CategoryBreakdownResponse struct {
	Period     string                    `json:"period"`
	Categories []CategoryRevenueResponse `json:"categories"`
}

// CategoryRevenueResponse represents one category's revenue in the response.
type CategoryRevenueResponse struct {
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	ItemCount int     `json:"item_count"`
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryRevenueResponse, len(output.Categories))
	for i, c := range output.Categories {
		revenue, _ := c.Revenue.Float64()
		categories[i] = CategoryRevenueResponse{
			Category:  c.Category,
			Revenue:   revenue,
			ItemCount: c.ItemCount,
		}
	}

	return CategoryBreakdownResponse{
		Period:     string(output.Period),
		Categories: categories,
	}
}

// TopPerformersResponse represents the response for the top performers API.
type TopPerformersResponse struct {
	Period    string                `json:"period"`
	Items     []TopItemResponse     `json:"items"`
	Customers []TopCustomerResponse `json:"customers"`
}

// TopItemResponse represents one item leaderboard entry in the response.
type TopItemResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Trend     string  `json:"trend"`
}

// TopCustomerResponse represents one customer leaderboard entry in the response.
type TopCustomerResponse struct {
	CustomerID  string  `json:"customer_id"`
	Name        string  `json:"name"`
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int     `json:"total_orders"`
	Trend       string  `json:"trend"`
}

// ToTopPerformersResponse converts a GetTopPerformersOutput to a TopPerformersResponse DTO.
func ToTopPerformersResponse(output *dashboard.GetTopPerformersOutput) TopPerformersResponse {
	items := make([]TopItemResponse, len(output.Items))
	for i, item := range output.Items {
		revenue, _ := item.Revenue.Float64()
		items[i] = TopItemResponse{
			ItemID:    item.ItemID.String(),
			Name:      item.Name,
			SKU:       item.SKU,
			UnitsSold: item.UnitsSold,
			Revenue:   revenue,
			Trend:     string(item.Trend),
		}
	}

	customers := make([]TopCustomerResponse, len(output.Customers))
	for i, c := range output.Customers {
		totalSales, _ := c.TotalSales.Float64()
		customers[i] = TopCustomerResponse{
			CustomerID:  c.CustomerID.String(),
			Name:        c.Name,
			TotalSales:  totalSales,
			TotalOrders: c.TotalOrders,
			Trend:       string(c.Trend),
		}
	}

	return TopPerformersResponse{
		Period:    string(output.Period),
		Items:     items,
		Customers: customers,
	}
}

// LowStockResponse represents the response for the low stock API.
type LowStockResponse struct {
	Alerts []LowStockAlertResponse `json:"alerts"`
}

// LowStockAlertResponse represents one low-stock alert in the response.
type LowStockAlertResponse struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Supplier     string `json:"supplier"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

// ToLowStockResponse converts a GetLowStockOutput to a LowStockResponse DTO.
func ToLowStockResponse(output *dashboard.GetLowStockOutput) LowStockResponse {
	alerts := make([]LowStockAlertResponse, len(output.Alerts))
	for i, alert := range output.Alerts {
		alerts[i] = LowStockAlertResponse{
			ItemID:       alert.ItemID.String(),
			Name:         alert.Name,
			SKU:          alert.SKU,
			Supplier:     alert.Supplier,
			CurrentStock: alert.CurrentStock,
			MinStock:     alert.MinStock,
		}
	}
	return LowStockResponse{Alerts: alerts}
}

// RecentActivityResponse represents the response for the recent activity API.
type RecentActivityResponse struct {
	Activity []ActivityEntryResponse `json:"activity"`
}

// ActivityEntryResponse represents one activity feed entry in the response.
type ActivityEntryResponse struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// ToRecentActivityResponse converts a GetRecentActivityOutput to a RecentActivityResponse DTO.
func ToRecentActivityResponse(output *dashboard.GetRecentActivityOutput) RecentActivityResponse {
	activity := make([]ActivityEntryResponse, len(output.Activity))
	for i, entry := range output.Activity {
		amount, _ := entry.Amount.Float64()
		activity[i] = ActivityEntryResponse{
			Type:        string(entry.Type),
			ID:          entry.ID.String(),
			Description: entry.Description,
			Amount:      amount,
			Status:      entry.Status,
			Date:        entry.Date.Format("2006-01-02"),
		}
	}
	return RecentActivityResponse{Activity: activity}
}
