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
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// defaultActivityLimit bounds the recent-activity feed when no limit is given.
const defaultActivityLimit = 10

// LowStockAlert flags an item whose stock is at or below its minimum.
type LowStockAlert struct {
	ItemID       uuid.UUID `json:"item_id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Supplier     string    `json:"supplier"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
}

// LowStockAlerts returns the items at or below their minimum stock.
// Stock is a current snapshot and never windowed by the active period.
func LowStockAlerts(items []*entity.Item) []LowStockAlert {
	alerts := make([]LowStockAlert, 0)
	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}
		alerts = append(alerts, LowStockAlert{
			ItemID:       item.ID,
			Name:         item.Name,
			SKU:          item.SKU,
			Supplier:     item.Supplier,
			CurrentStock: item.Stock,
			MinStock:     item.MinStock,
		})
	}
	return alerts
}

// ActivityType tags the origin of a recent-activity entry.
type ActivityType string

const (
	ActivityTypeSale     ActivityType = "sale"
	ActivityTypePurchase ActivityType = "purchase"
)

// ActivityEntry is one row of the merged recent-activity feed.
type ActivityEntry struct {
	Type        ActivityType    `json:"type"`
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"date"`
}

// RecentActivity merges sales and purchases into a single feed sorted
// newest first and truncated to limit. Records without a date are
// excluded; they cannot be ordered meaningfully.
func RecentActivity(sales []*entity.Sale, purchases []*entity.Purchase, limit int) []ActivityEntry {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	feed := make([]ActivityEntry, 0, len(sales)+len(purchases))
	for _, s := range sales {
		if s.Date == nil {
			continue
		}
		description := "Sale"
		if s.CustomerName != "" {
			description = "Sale to " + s.CustomerName
		}
		feed = append(feed, ActivityEntry{
			Type:        ActivityTypeSale,
			ID:          s.ID,
			Description: description,
			Amount:      s.Total,
			Status:      string(s.PaymentStatus),
			Date:        *s.Date,
		})
	}
	for _, p := range purchases {
		if p.Date == nil {
			continue
		}
		description := "Purchase"
		if p.SupplierName != "" {
			description = "Purchase from " + p.SupplierName
		}
		feed = append(feed, ActivityEntry{
			Type:        ActivityTypePurchase,
			ID:          p.ID,
			Description: description,
			Amount:      p.Total,
			Status:      string(p.Status),
			Date:        *p.Date,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// GetLowStockOutput represents the output of getting low-stock alerts.
type GetLowStockOutput struct {
	Alerts []LowStockAlert `json:"alerts"`
}

// GetLowStockUseCase handles low-stock alert detection.
type GetLowStockUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetLowStockUseCase creates a new GetLowStockUseCase instance.
func NewGetLowStockUseCase(dashboardRepo DashboardRepository) *GetLowStockUseCase {
	return &GetLowStockUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns the current low-stock alerts.
func (uc *GetLowStockUseCase) Execute(ctx context.Context) (*GetLowStockOutput, error) {
	items, err := uc.dashboardRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return &GetLowStockOutput{Alerts: LowStockAlerts(items)}, nil
}

// GetRecentActivityInput represents the input for getting the activity feed.
type GetRecentActivityInput struct {
	Limit int
}

// GetRecentActivityOutput represents the output of getting the activity feed.
type GetRecentActivityOutput struct {
	Activity []ActivityEntry `json:"activity"`
}

// GetRecentActivityUseCase handles the merged recent-activity feed.
type GetRecentActivityUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetRecentActivityUseCase creates a new GetRecentActivityUseCase instance.
func NewGetRecentActivityUseCase(dashboardRepo DashboardRepository) *GetRecentActivityUseCase {
	return &GetRecentActivityUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns the merged recent-activity feed.
func (uc *GetRecentActivityUseCase) Execute(
	ctx context.Context,
	input GetRecentActivityInput,
) (*GetRecentActivityOutput, error) {
	if input.Limit < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidLimit,
			"limit must be positive",
			domainerror.ErrInvalidLimit,
		)
	}

	sales, err := uc.dashboardRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	purchases, err := uc.dashboardRepo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &GetRecentActivityOutput{
		Activity: RecentActivity(sales, purchases, input.Limit),
	}, nil
}
