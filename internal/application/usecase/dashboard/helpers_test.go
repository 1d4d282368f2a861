// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// Test fixtures shared across the engine tests.

func testSale(total float64, status entity.PaymentStatus, date *time.Time, lines ...entity.SaleLine) *entity.Sale {
	return &entity.Sale{
		ID:            uuid.New(),
		Total:         decimal.NewFromFloat(total),
		PaymentStatus: status,
		Date:          date,
		Lines:         lines,
	}
}

func testLine(itemID uuid.UUID, quantity int, unitPrice float64) entity.SaleLine {
	price := decimal.NewFromFloat(unitPrice)
	return entity.SaleLine{
		ID:        uuid.New(),
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: price,
		Total:     price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func testPurchase(total float64, status entity.PurchaseStatus, date *time.Time) *entity.Purchase {
	return &entity.Purchase{
		ID:     uuid.New(),
		Total:  decimal.NewFromFloat(total),
		Status: status,
		Date:   date,
	}
}

func testItem(name, category string, cost, price float64, stock, minStock int) *entity.Item {
	return &entity.Item{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Cost:     decimal.NewFromFloat(cost),
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		MinStock: minStock,
		Status:   entity.ItemStatusActive,
	}
}

func dateOf(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func rangeOf(start, end time.Time) valueobject.DateRange {
	return valueobject.DateRange{Start: &start, End: &end}
}
