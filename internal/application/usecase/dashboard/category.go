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

// CategoryRevenue is the windowed revenue attributed to one inventory
// category, plus the number of items carrying that category label.
type CategoryRevenue struct {
	Category  string          `json:"category"`
	Revenue   decimal.Decimal `json:"revenue"`
	ItemCount int             `json:"item_count"`
}

// AggregateByCategory groups items by their category label and
// attributes windowed sale-line revenue to each group. The result is
// sorted descending by revenue; ties keep the order categories were
// first seen in the item collection. Sale lines referencing an unknown
// item are skipped.
func AggregateByCategory(
	items []*entity.Item,
	sales []*entity.Sale,
	r valueobject.DateRange,
) []CategoryRevenue {
	categoryByItem := make(map[uuid.UUID]string, len(items))
	index := make(map[string]int)
	result := make([]CategoryRevenue, 0)

	for _, item := range items {
		categoryByItem[item.ID] = item.Category
		i, ok := index[item.Category]
		if !ok {
			i = len(result)
			index[item.Category] = i
			result = append(result, CategoryRevenue{
				Category: item.Category,
				Revenue:  decimal.Zero,
			})
		}
		result[i].ItemCount++
	}

	for _, s := range FilterSalesByDate(sales, r) {
		for _, line := range s.Lines {
			category, ok := categoryByItem[line.ItemID]
			if !ok {
				continue
			}
			i := index[category]
			result[i].Revenue = result[i].Revenue.Add(line.Total)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}

// GetCategoryBreakdownInput represents the input for getting the
// revenue breakdown by category.
type GetCategoryBreakdownInput struct {
	Period valueobject.Period
}

// GetCategoryBreakdownOutput represents the output of getting the
// revenue breakdown by category.
type GetCategoryBreakdownOutput struct {
	Period     valueobject.Period `json:"period"`
	Categories []CategoryRevenue  `json:"categories"`
}

// GetCategoryBreakdownUseCase handles the revenue-by-category breakdown.
type GetCategoryBreakdownUseCase struct {
	dashboardRepo DashboardRepository
	cache         *Cache
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(dashboardRepo DashboardRepository, cache *Cache) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		dashboardRepo: dashboardRepo,
		cache:         cache,
	}
}

// Execute computes the revenue breakdown by category for the given period.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	period, err := validatePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	items, err := uc.dashboardRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	sales, err := uc.dashboardRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	key := uc.cache.Key("category-breakdown", period, items, sales)
	var cached GetCategoryBreakdownOutput
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	r := period.Resolve(time.Now().UTC())
	output := &GetCategoryBreakdownOutput{
		Period:     period,
		Categories: AggregateByCategory(items, sales, r),
	}

	uc.cache.Set(ctx, key, output)
	return output, nil
}
