package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"shop_backend/internal/models"
)

// Client caches catalog reads in Redis. A nil *Client is valid and
// disables caching, so callers never need to branch on configuration.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func itemsKey(suffix string) string {
	return "catalog:" + suffix
}

func (c *Client) SetItems(suffix string, items []models.Item, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog items: %w", err)
	}
	return c.rdb.Set(ctx, itemsKey(suffix), jsonData, ttl).Err()
}

func (c *Client) GetItems(suffix string) ([]models.Item, bool) {
	if c == nil {
		return nil, false
	}
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, itemsKey(suffix)).Result()
	if err != nil {
		return nil, false
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false
	}
	return items, true
}

// InvalidateItems drops every cached catalog listing. Called when the
// catalog changes so stale listings never outlive a write.
func (c *Client) InvalidateItems() error {
	if c == nil {
		return nil
	}
	ctx := context.Background()
	keys, err := c.rdb.Keys(ctx, itemsKey("*")).Result()
	if err != nil {
		return fmt.Errorf("failed to list catalog keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
