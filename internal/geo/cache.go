package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache хранит найденные координаты между запросами
type Cache interface {
	Get(ctx context.Context, key string) (Location, bool, error)
	Set(ctx context.Context, key string, loc Location, ttl time.Duration) error
}

// RedisCache - Cache поверх Redis
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (Location, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Location{}, false, nil
		}
		return Location{}, false, fmt.Errorf("failed to get location from cache: %w", err)
	}

	var loc Location
	if err := json.Unmarshal(val, &loc); err != nil {
		return Location{}, false, fmt.Errorf("failed to unmarshal cached location: %w", err)
	}
	return loc, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, loc Location, ttl time.Duration) error {
	val, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set location in cache: %w", err)
	}
	return nil
}
