// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
	"github.com/shopledger/backend/internal/domain/valueobject"
)

// stubRepository serves fixed collections for use-case tests.
type stubRepository struct {
	sales     []*entity.Sale
	purchases []*entity.Purchase
	items     []*entity.Item
	customers []*entity.Customer
	accounts  []*entity.BankAccount
}

func (r *stubRepository) ListSales(context.Context) ([]*entity.Sale, error) {
	return r.sales, nil
}
func (r *stubRepository) ListPurchases(context.Context) ([]*entity.Purchase, error) {
	return r.purchases, nil
}
func (r *stubRepository) ListItems(context.Context) ([]*entity.Item, error) {
	return r.items, nil
}
func (r *stubRepository) ListCustomers(context.Context) ([]*entity.Customer, error) {
	return r.customers, nil
}
func (r *stubRepository) ListBankAccounts(context.Context) ([]*entity.BankAccount, error) {
	return r.accounts, nil
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client)
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips the value", func(t *testing.T) {
		cache := newTestCache(t)
		key := cache.Key("metrics", valueobject.PeriodThisMonth, "payload")

		stored := GetMetricsOutput{Period: valueobject.PeriodThisMonth}
		stored.Metrics.Sales.TotalSales = decimal.NewFromInt(42)
		cache.Set(ctx, key, stored)

		var loaded GetMetricsOutput
		if !cache.Get(ctx, key, &loaded) {
			t.Fatal("expected cache hit")
		}
		if !loaded.Metrics.Sales.TotalSales.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected total 42, got %s", loaded.Metrics.Sales.TotalSales)
		}
	})

	t.Run("different inputs hash to different keys", func(t *testing.T) {
		cache := newTestCache(t)
		a := cache.Key("metrics", valueobject.PeriodThisMonth, []string{"a"})
		b := cache.Key("metrics", valueobject.PeriodThisMonth, []string{"b"})
		if a == b {
			t.Error("expected distinct keys for distinct inputs")
		}
		c := cache.Key("metrics", valueobject.PeriodLastMonth, []string{"a"})
		if a == c {
			t.Error("expected distinct keys for distinct periods")
		}
	})

	t.Run("identical inputs hash to the same key", func(t *testing.T) {
		cache := newTestCache(t)
		a := cache.Key("metrics", valueobject.PeriodThisMonth, []string{"a"})
		b := cache.Key("metrics", valueobject.PeriodThisMonth, []string{"a"})
		if a != b {
			t.Error("expected identical keys for identical inputs")
		}
	})

	t.Run("nil cache is a no-op", func(t *testing.T) {
		var cache *Cache
		key := cache.Key("metrics", valueobject.PeriodThisMonth)
		cache.Set(ctx, key, "value")
		var out string
		if cache.Get(ctx, key, &out) {
			t.Error("expected miss on nil cache")
		}
	})
}

func TestGetMetricsUseCaseMemoization(t *testing.T) {
	ctx := context.Background()
	today := valueobject.DateOnly(time.Now().UTC())

	repo := &stubRepository{
		sales: []*entity.Sale{
			testSale(100, entity.PaymentStatusPending, &today),
		},
	}

	t.Run("results are identical with and without the cache", func(t *testing.T) {
		cached := NewGetMetricsUseCase(repo, newTestCache(t))
		uncached := NewGetMetricsUseCase(repo, nil)

		input := GetMetricsInput{Period: valueobject.PeriodLast7Days}
		a, err := cached.Execute(ctx, input)
		if err != nil {
			t.Fatalf("cached execute failed: %v", err)
		}
		// Second call hits the memoized entry.
		b, err := cached.Execute(ctx, input)
		if err != nil {
			t.Fatalf("second cached execute failed: %v", err)
		}
		c, err := uncached.Execute(ctx, input)
		if err != nil {
			t.Fatalf("uncached execute failed: %v", err)
		}

		for _, out := range []*GetMetricsOutput{b, c} {
			if !out.Metrics.Sales.TotalSales.Equal(a.Metrics.Sales.TotalSales) {
				t.Errorf("total sales diverged: %s vs %s",
					a.Metrics.Sales.TotalSales, out.Metrics.Sales.TotalSales)
			}
			if out.Metrics.Sales.PendingSales != a.Metrics.Sales.PendingSales {
				t.Error("pending count diverged")
			}
		}
	})

	t.Run("invalid period is rejected", func(t *testing.T) {
		uc := NewGetMetricsUseCase(repo, nil)
		if _, err := uc.Execute(ctx, GetMetricsInput{Period: "fortnight"}); err == nil {
			t.Error("expected error for unknown period token")
		}
	})

	t.Run("empty period defaults to this_month", func(t *testing.T) {
		uc := NewGetMetricsUseCase(&stubRepository{}, nil)
		out, err := uc.Execute(ctx, GetMetricsInput{})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if out.Period != valueobject.PeriodThisMonth {
			t.Errorf("expected default period this_month, got %s", out.Period)
		}
	})
}
