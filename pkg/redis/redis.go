package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient создает и возвращает новый клиент Redis.
// Пустой адрес означает, что Redis не используется: возвращается nil без ошибки.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		PoolSize:    10,
		DialTimeout: 2 * time.Second,
	})

	// Проверяем соединение с Redis
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
