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
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// SeriesGranularity represents the bucket size of the sales time series.
type SeriesGranularity string

const (
	SeriesGranularityDaily   SeriesGranularity = "daily"
	SeriesGranularityMonthly SeriesGranularity = "monthly"
)

// SeriesBucket is one time slice of the sales chart. Buckets are
// emitted for every slice of the window even when empty, so charts
// render without gaps.
type SeriesBucket struct {
	Date   time.Time       `json:"date"`
	Label  string          `json:"label"`
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
	Profit decimal.Decimal `json:"profit"`
	Target decimal.Decimal `json:"target"`
}

// SeriesGranularityFor maps a period to its chart granularity: monthly
// buckets for year-length and unbounded windows, daily otherwise.
func SeriesGranularityFor(p valueobject.Period) SeriesGranularity {
	switch p {
	case valueobject.PeriodThisYear, valueobject.PeriodLastYear, valueobject.PeriodAllTime:
		return SeriesGranularityMonthly
	default:
		return SeriesGranularityDaily
	}
}

// BuildSalesSeries produces the ordered, gap-free sales time series for
// the window. Profit uses each item's recorded unit cost; lines whose
// item no longer exists contribute their full line total.
//
// For an unbounded range the window is derived from the oldest and
// newest dated sales; with no dated sales the series is empty.
func BuildSalesSeries(
	sales []*entity.Sale,
	items []*entity.Item,
	period valueobject.Period,
	r valueobject.DateRange,
	targets SeriesTargets,
) []SeriesBucket {
	granularity := SeriesGranularityFor(period)

	start, end, ok := seriesBounds(sales, r)
	if !ok {
		return []SeriesBucket{}
	}

	costByItem := make(map[uuid.UUID]decimal.Decimal, len(items))
	for _, item := range items {
		costByItem[item.ID] = item.Cost
	}

	target := targets.Daily
	if granularity == SeriesGranularityMonthly {
		target = targets.Monthly
	}

	// Pre-aggregate windowed sales by bucket key.
	type bucketAgg struct {
		sales  decimal.Decimal
		orders int
		profit decimal.Decimal
	}
	aggs := make(map[string]*bucketAgg)
	for _, s := range FilterSalesByDate(sales, valueobject.DateRange{Start: &start, End: &end}) {
		key := bucketKey(*s.Date, granularity)
		agg, ok := aggs[key]
		if !ok {
			agg = &bucketAgg{sales: decimal.Zero, profit: decimal.Zero}
			aggs[key] = agg
		}
		agg.sales = agg.sales.Add(s.Total)
		agg.orders++
		for _, line := range s.Lines {
			cost := decimal.Zero
			if unitCost, found := costByItem[line.ItemID]; found {
				cost = unitCost.Mul(decimal.NewFromInt(int64(line.Quantity)))
			}
			agg.profit = agg.profit.Add(line.Total.Sub(cost))
		}
	}

	// Walk every bucket in the window, filling gaps with zeros.
	buckets := make([]SeriesBucket, 0)
	for current := bucketStart(start, granularity); !current.After(end); current = nextBucket(current, granularity) {
		bucket := SeriesBucket{
			Date:   current,
			Label:  bucketLabel(current, granularity),
			Sales:  decimal.Zero,
			Profit: decimal.Zero,
			Target: target,
		}
		if agg, ok := aggs[bucketKey(current, granularity)]; ok {
			bucket.Sales = agg.sales
			bucket.Orders = agg.orders
			bucket.Profit = agg.profit
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// seriesBounds resolves the concrete start and end dates of the series
// window. For an unbounded range the bounds come from the data itself.
func seriesBounds(sales []*entity.Sale, r valueobject.DateRange) (time.Time, time.Time, bool) {
	if !r.Unbounded() {
		// Period resolution always yields both endpoints.
		if r.Start == nil || r.End == nil {
			return time.Time{}, time.Time{}, false
		}
		return valueobject.DateOnly(*r.Start), valueobject.DateOnly(*r.End), true
	}

	var oldest, newest *time.Time
	for _, s := range sales {
		if s.Date == nil {
			continue
		}
		d := valueobject.DateOnly(*s.Date)
		if oldest == nil || d.Before(*oldest) {
			t := d
			oldest = &t
		}
		if newest == nil || d.After(*newest) {
			t := d
			newest = &t
		}
	}
	if oldest == nil {
		return time.Time{}, time.Time{}, false
	}
	return *oldest, *newest, true
}

// bucketStart aligns a date to the first day of its bucket.
func bucketStart(date time.Time, granularity SeriesGranularity) time.Time {
	if granularity == SeriesGranularityMonthly {
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	}
	return valueobject.DateOnly(date)
}

// nextBucket advances to the following bucket.
func nextBucket(date time.Time, granularity SeriesGranularity) time.Time {
	if granularity == SeriesGranularityMonthly {
		return date.AddDate(0, 1, 0)
	}
	return date.AddDate(0, 0, 1)
}

// bucketKey returns a unique key for the bucket containing the date.
func bucketKey(date time.Time, granularity SeriesGranularity) string {
	if granularity == SeriesGranularityMonthly {
		return date.Format("2006-01")
	}
	return date.Format("2006-01-02")
}

// bucketLabel returns the human-readable chart label for a bucket.
func bucketLabel(date time.Time, granularity SeriesGranularity) string {
	if granularity == SeriesGranularityMonthly {
		return date.Format("Jan 2006")
	}
	return date.Format("Jan 02")
}

// GetSalesSeriesInput represents the input for getting the sales series.
type GetSalesSeriesInput struct {
	Period valueobject.Period
}

// GetSalesSeriesOutput represents the output of getting the sales series.
type GetSalesSeriesOutput struct {
	Period      valueobject.Period `json:"period"`
	Granularity SeriesGranularity  `json:"granularity"`
	Series      []SeriesBucket     `json:"series"`
}

// GetSalesSeriesUseCase handles building the sales chart time series.
type GetSalesSeriesUseCase struct {
	dashboardRepo DashboardRepository
	cache         *Cache
	targets       SeriesTargets
}

// NewGetSalesSeriesUseCase creates a new GetSalesSeriesUseCase instance.
func NewGetSalesSeriesUseCase(dashboardRepo DashboardRepository, cache *Cache, targets SeriesTargets) *GetSalesSeriesUseCase {
	return &GetSalesSeriesUseCase{
		dashboardRepo: dashboardRepo,
		cache:         cache,
		targets:       targets,
	}
}

// Execute builds the sales time series for the given period.
func (uc *GetSalesSeriesUseCase) Execute(
	ctx context.Context,
	input GetSalesSeriesInput,
) (*GetSalesSeriesOutput, error) {
	period, err := validatePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	sales, err := uc.dashboardRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	items, err := uc.dashboardRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	key := uc.cache.Key("sales-series", period, sales, items)
	var cached GetSalesSeriesOutput
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	r := period.Resolve(time.Now().UTC())
	output := &GetSalesSeriesOutput{
		Period:      period,
		Granularity: SeriesGranularityFor(period),
		Series:      BuildSalesSeries(sales, items, period, r, uc.targets),
	}

	uc.cache.Set(ctx, key, output)
	return output, nil
}
