// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

func TestTopItems(t *testing.T) {
	thresholds := TrendThresholds{Up: 10, Steady: 5}
	date := dateOf(2025, time.March, 10)
	march := rangeOf(
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	)

	hammer := testItem("Hammer", "tools", 5, 12, 10, 2)
	wrench := testItem("Wrench", "tools", 4, 9, 10, 2)
	paint := testItem("Paint", "supplies", 8, 20, 10, 2)
	items := []*entity.Item{hammer, wrench, paint}

	sales := []*entity.Sale{
		testSale(120, entity.PaymentStatusPaid, date, testLine(hammer.ID, 10, 12)), // 120
		testSale(27, entity.PaymentStatusPaid, date, testLine(wrench.ID, 3, 9)),    // 27
		testSale(60, entity.PaymentStatusPaid, date, testLine(paint.ID, 3, 20)),    // 60
	}

	t.Run("ranked descending by revenue and capped at n", func(t *testing.T) {
		top := TopItems(items, sales, march, 2, thresholds)
		if len(top) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(top))
		}
		if top[0].Name != "Hammer" || top[1].Name != "Paint" {
			t.Errorf("unexpected order: %s, %s", top[0].Name, top[1].Name)
		}
		for i := 1; i < len(top); i++ {
			if top[i].Revenue.GreaterThan(top[i-1].Revenue) {
				t.Error("revenue not non-increasing")
			}
		}
	})

	t.Run("trend labels follow the volume thresholds", func(t *testing.T) {
		top := TopItems(items, sales, march, 5, thresholds)
		byName := map[string]TopItem{}
		for _, entry := range top {
			byName[entry.Name] = entry
		}
		if byName["Hammer"].Trend != TrendUp {
			t.Errorf("expected Hammer up (10 units), got %s", byName["Hammer"].Trend)
		}
		if byName["Wrench"].Trend != TrendDown {
			t.Errorf("expected Wrench down (3 units), got %s", byName["Wrench"].Trend)
		}
	})

	t.Run("items without windowed sales are excluded", func(t *testing.T) {
		top := TopItems(items, nil, march, 5, thresholds)
		if len(top) != 0 {
			t.Errorf("expected empty leaderboard, got %d entries", len(top))
		}
	})

	t.Run("lines referencing unknown items are ignored", func(t *testing.T) {
		ghost := testSale(500, entity.PaymentStatusPaid, date, testLine(uuid.New(), 50, 10))
		top := TopItems(items, []*entity.Sale{ghost}, march, 5, thresholds)
		if len(top) != 0 {
			t.Errorf("expected no entries for unknown items, got %d", len(top))
		}
	})
}

func TestTopCustomers(t *testing.T) {
	thresholds := TrendThresholds{Up: 5, Steady: 2}
	date := dateOf(2025, time.March, 10)
	march := rangeOf(
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	)

	alice := &entity.Customer{ID: uuid.New(), Name: "Alice", Status: entity.CustomerStatusActive}
	bob := &entity.Customer{ID: uuid.New(), Name: "Bob", Status: entity.CustomerStatusActive}
	customers := []*entity.Customer{alice, bob}

	saleFor := func(c *entity.Customer, total float64) *entity.Sale {
		s := testSale(total, entity.PaymentStatusPaid, date)
		s.CustomerID = &c.ID
		return s
	}

	t.Run("ranked descending by windowed revenue", func(t *testing.T) {
		sales := []*entity.Sale{
			saleFor(alice, 50),
			saleFor(bob, 80),
			saleFor(alice, 20),
		}

		top := TopCustomers(customers, sales, march, 5, thresholds)
		if len(top) != 2 {
			t.Fatalf("expected 2 customers, got %d", len(top))
		}
		if top[0].Name != "Bob" {
			t.Errorf("expected Bob first, got %s", top[0].Name)
		}
		if !top[1].TotalSales.Equal(decimal.NewFromInt(70)) {
			t.Errorf("expected Alice total 70, got %s", top[1].TotalSales)
		}
		if top[1].TotalOrders != 2 {
			t.Errorf("expected Alice 2 orders, got %d", top[1].TotalOrders)
		}
	})

	t.Run("anonymous sales do not rank", func(t *testing.T) {
		sales := []*entity.Sale{
			testSale(999, entity.PaymentStatusPaid, date),
		}
		top := TopCustomers(customers, sales, march, 5, thresholds)
		if len(top) != 0 {
			t.Errorf("expected no entries, got %d", len(top))
		}
	})

	t.Run("result length never exceeds n", func(t *testing.T) {
		sales := []*entity.Sale{saleFor(alice, 10), saleFor(bob, 20)}
		top := TopCustomers(customers, sales, march, 1, thresholds)
		if len(top) != 1 {
			t.Errorf("expected 1 entry, got %d", len(top))
		}
	})
}
