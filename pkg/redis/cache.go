package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under the "name::key" namespace with a fixed TTL
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a new cache instance. A zero ttl uses the client default.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{
		client: client,
		name:   name,
		ttl:    ttl,
	}
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// Get decodes the cached value into dest. It reports false on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// TTL returns the remaining time to live of a key
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, c.buildCacheKey(key))
}
