// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// FilterSalesByDate returns the sales whose business date falls inside
// the range. An unbounded range returns the input unchanged. Sales with
// a nil date are excluded from any bounded range.
func FilterSalesByDate(sales []*entity.Sale, r valueobject.DateRange) []*entity.Sale {
	if r.Unbounded() {
		return sales
	}

	filtered := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if s.Date == nil {
			continue
		}
		if r.Contains(*s.Date) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterPurchasesByDate returns the purchases whose business date falls
// inside the range, with the same nil-date and unbounded semantics as
// FilterSalesByDate.
func FilterPurchasesByDate(purchases []*entity.Purchase, r valueobject.DateRange) []*entity.Purchase {
	if r.Unbounded() {
		return purchases
	}

	filtered := make([]*entity.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if p.Date == nil {
			continue
		}
		if r.Contains(*p.Date) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
