// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopledger/backend/internal/domain/valueobject"
)

// defaultCacheTTL bounds how long a memoized aggregate may be served.
// The content-hashed key already invalidates on any input change; the
// TTL only caps growth of stale keys in Redis.
const defaultCacheTTL = 15 * time.Minute

// Cache memoizes dashboard outputs in Redis, keyed by a content hash of
// the inputs that produced them. A nil *Cache is valid and disables
// memoization entirely; every use case must produce identical results
// either way. Cache failures degrade to recomputation, never to errors.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a dashboard cache backed by the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return NewCacheWithTTL(client, defaultCacheTTL)
}

// NewCacheWithTTL creates a dashboard cache with a custom entry TTL.
// A non-positive TTL falls back to the default.
func NewCacheWithTTL(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives a cache key for one dashboard section from the period and
// the content of every input collection. Identical inputs always hash
// to the same key; any change to a record produces a different key.
func (c *Cache) Key(section string, period valueobject.Period, inputs ...any) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s", section, period)
	for _, in := range inputs {
		payload, err := json.Marshal(in)
		if err != nil {
			// Unhashable input: disable memoization for this call by
			// salting the key with the current time.
			fmt.Fprintf(h, "|%d", time.Now().UnixNano())
			continue
		}
		h.Write(payload)
	}
	return "dashboard:" + section + ":" + hex.EncodeToString(h.Sum(nil))
}

// Get loads a memoized value into out. It reports false on a miss, on
// any Redis error, or when the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("dashboard cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		slog.Warn("dashboard cache payload corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a computed value. Failures are logged and ignored.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("dashboard cache marshal failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("dashboard cache write failed", "key", key, "error", err)
	}
}
