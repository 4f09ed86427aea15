package tariff

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotKey is the Redis key holding the serialized rate grid. Bump the
// version suffix when the CityRate JSON shape changes.
const snapshotKey = "tariff:grid:v1"

// Cache wraps Redis helpers for the grid snapshot. A nil client disables
// caching; every method degrades to a no-op so the store never needs to
// branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a snapshot cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetSnapshot unmarshals the cached grid. It reports whether the key existed.
func (c *Cache) GetSnapshot(ctx context.Context) ([]CityRate, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var rows []CityRate
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

// SetSnapshot serialises the grid and stores it with the configured TTL.
func (c *Cache) SetSnapshot(ctx context.Context, rows []CityRate) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, data, c.ttl).Err()
}

// Drop removes the cached snapshot, forcing the next load to hit Postgres.
func (c *Cache) Drop(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, snapshotKey).Err()
}
