// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// TrendLabel is the coarse volume indicator attached to ranked results.
type TrendLabel string

const (
	TrendUp     TrendLabel = "up"
	TrendSteady TrendLabel = "steady"
	TrendDown   TrendLabel = "down"
)

// TopItem is one entry of the best-selling items leaderboard.
type TopItem struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Trend     TrendLabel      `json:"trend"`
}

// TopCustomer is one entry of the highest-value customers leaderboard.
// TotalSales and TotalOrders are scoped to the active window.
type TopCustomer struct {
	CustomerID  uuid.UUID       `json:"customer_id"`
	Name        string          `json:"name"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
	Trend       TrendLabel      `json:"trend"`
}

// TopItems ranks items by windowed sale-line revenue, descending, ties
// keeping item collection order. Only items that sold at least one unit
// in the window appear; the result holds at most n entries.
func TopItems(
	items []*entity.Item,
	sales []*entity.Sale,
	r valueobject.DateRange,
	n int,
	thresholds TrendThresholds,
) []TopItem {
	type itemAgg struct {
		units   int
		revenue decimal.Decimal
	}
	aggs := make(map[uuid.UUID]*itemAgg)

	for _, s := range FilterSalesByDate(sales, r) {
		for _, line := range s.Lines {
			agg, ok := aggs[line.ItemID]
			if !ok {
				agg = &itemAgg{revenue: decimal.Zero}
				aggs[line.ItemID] = agg
			}
			agg.units += line.Quantity
			agg.revenue = agg.revenue.Add(line.Total)
		}
	}

	ranked := make([]TopItem, 0, len(aggs))
	for _, item := range items {
		agg, ok := aggs[item.ID]
		if !ok || agg.units == 0 {
			continue
		}
		ranked = append(ranked, TopItem{
			ItemID:    item.ID,
			Name:      item.Name,
			SKU:       item.SKU,
			UnitsSold: agg.units,
			Revenue:   agg.revenue,
			Trend:     trendFor(agg.units, thresholds),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopCustomers ranks customers by windowed sale revenue, descending,
// ties keeping customer collection order. Sales without a customer
// reference are ignored; the result holds at most n entries.
func TopCustomers(
	customers []*entity.Customer,
	sales []*entity.Sale,
	r valueobject.DateRange,
	n int,
	thresholds TrendThresholds,
) []TopCustomer {
	type customerAgg struct {
		revenue decimal.Decimal
		orders  int
	}
	aggs := make(map[uuid.UUID]*customerAgg)

	for _, s := range FilterSalesByDate(sales, r) {
		if s.CustomerID == nil {
			continue
		}
		agg, ok := aggs[*s.CustomerID]
		if !ok {
			agg = &customerAgg{revenue: decimal.Zero}
			aggs[*s.CustomerID] = agg
		}
		agg.revenue = agg.revenue.Add(s.Total)
		agg.orders++
	}

	ranked := make([]TopCustomer, 0, len(aggs))
	for _, c := range customers {
		agg, ok := aggs[c.ID]
		if !ok || agg.orders == 0 {
			continue
		}
		ranked = append(ranked, TopCustomer{
			CustomerID:  c.ID,
			Name:        c.Name,
			TotalSales:  agg.revenue,
			TotalOrders: agg.orders,
			Trend:       trendFor(agg.orders, thresholds),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// trendFor maps a volume figure to its coarse trend label.
func trendFor(volume int, thresholds TrendThresholds) TrendLabel {
	switch {
	case volume >= thresholds.Up:
		return TrendUp
	case volume >= thresholds.Steady:
		return TrendSteady
	default:
		return TrendDown
	}
}

// GetTopPerformersInput represents the input for getting the leaderboards.
type GetTopPerformersInput struct {
	Period valueobject.Period
	Limit  int
}

// GetTopPerformersOutput represents the output of getting the leaderboards.
type GetTopPerformersOutput struct {
	Period    valueobject.Period `json:"period"`
	Items     []TopItem          `json:"items"`
	Customers []TopCustomer      `json:"customers"`
}

// GetTopPerformersUseCase handles the best-selling item and
// highest-value customer leaderboards.
type GetTopPerformersUseCase struct {
	dashboardRepo DashboardRepository
	cache         *Cache
	settings      Settings
}

// NewGetTopPerformersUseCase creates a new GetTopPerformersUseCase instance.
func NewGetTopPerformersUseCase(dashboardRepo DashboardRepository, cache *Cache, settings Settings) *GetTopPerformersUseCase {
	return &GetTopPerformersUseCase{
		dashboardRepo: dashboardRepo,
		cache:         cache,
		settings:      settings,
	}
}

// Execute computes both leaderboards for the given period.
func (uc *GetTopPerformersUseCase) Execute(
	ctx context.Context,
	input GetTopPerformersInput,
) (*GetTopPerformersOutput, error) {
	period, err := validatePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.settings.TopN
	}

	items, err := uc.dashboardRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	customers, err := uc.dashboardRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	sales, err := uc.dashboardRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	key := uc.cache.Key("top-performers", period, limit, items, customers, sales)
	var cached GetTopPerformersOutput
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	r := period.Resolve(time.Now().UTC())
	output := &GetTopPerformersOutput{
		Period:    period,
		Items:     TopItems(items, sales, r, limit, uc.settings.ItemTrends),
		Customers: TopCustomers(customers, sales, r, limit, uc.settings.CustomerTrends),
	}

	uc.cache.Set(ctx, key, output)
	return output, nil
}
