package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// StockSnapshotTTL is the time-to-live for cached stock snapshots.
	// Expiration statuses are never stored — only the raw item fields —
	// so a cached snapshot classifies correctly at any read time.
	StockSnapshotTTL = time.Hour

	stockSnapshotKeyPrefix = "stock"
)

// CachedStockItem is the denormalized read model stored in Redis.
type CachedStockItem struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Name               string    `json:"name"`
	Quantity           int       `json:"quantity"`
	ExpirationDate     time.Time `json:"expiration_date"`
	AlarmThresholdDays int       `json:"alarm_threshold_days"`
	Category           string    `json:"category"`
	CreatedAt          time.Time `json:"created_at"`
}

// StockSnapshotCache stores one user's full stock snapshot as a JSON
// blob. The snapshot is always replaced whole, never patched, matching
// the full-recompute policy of the urgency aggregator.
// Key format: "stock:{userID}"
type StockSnapshotCache struct {
	client *RedisClient
}

// NewStockSnapshotCache creates a StockSnapshotCache backed by the given RedisClient.
func NewStockSnapshotCache(r *RedisClient) *StockSnapshotCache {
	return &StockSnapshotCache{client: r}
}

// Get retrieves the cached snapshot for a user.
// Returns redis.Nil error when no snapshot is cached.
func (c *StockSnapshotCache) Get(ctx context.Context, userID uuid.UUID) ([]CachedStockItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("snapshot get: %w", err)
	}
	var items []CachedStockItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	return items, nil
}

// Set replaces the cached snapshot for a user.
func (c *StockSnapshotCache) Set(ctx context.Context, userID uuid.UUID, items []CachedStockItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(userID), data, StockSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("snapshot set: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a user.
func (c *StockSnapshotCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("snapshot invalidate: %w", err)
	}
	return nil
}

func (c *StockSnapshotCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", stockSnapshotKeyPrefix, userID)
}
