// Package cache provides a small Redis-backed JSON cache used for computed
// market statistics. A nil *Cache is valid and behaves as a permanent miss,
// so callers need no conditional wiring when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached statistic may get.
const DefaultTTL = 5 * time.Minute

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// Cache wraps a Redis client with JSON encoding and a fixed TTL.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a Cache. A ttl of zero uses DefaultTTL.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. Returns false on miss,
// on a nil cache, or when the stored payload cannot be decoded.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %q: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores val under key for the cache's TTL. A nil cache is a no-op.
func (c *Cache) Set(ctx context.Context, key string, val any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("cache marshal %q: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}
