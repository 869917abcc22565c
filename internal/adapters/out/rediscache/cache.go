// Package rediscache backs the read-model cache with Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jelantah/internal/core/ports"
	"jelantah/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var _ ports.ReportCache = (*Cache)(nil)

// Cache stores serialized report payloads in Redis with per-key TTLs.
type Cache struct {
	client *redis.Client
}

// NewCache connects to Redis and verifies the connection.
func NewCache(ctx context.Context, addr, password string, db int) (*Cache, error) {
	if addr == "" {
		return nil, errs.NewValueIsRequiredError("addr")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Get retrieves the cached payload for the key. A missing key is a
// miss, not an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return payload, true, nil
}

// Set stores the payload under the key for the given TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// InvalidateByPrefix scans for keys under the prefix and deletes them in
// batches. SCAN keeps the operation incremental on large keyspaces.
func (c *Cache) InvalidateByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del by prefix %q: %w", prefix, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan prefix %q: %w", prefix, err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis del by prefix %q: %w", prefix, err)
		}
	}

	return nil
}

// Close releases the underlying client connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}
