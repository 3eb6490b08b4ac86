// Package cache содержит реализацию бэкенда кэша на Redis.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goblog/internal/blog/config"
	cachePorts "goblog/internal/blog/ports/cache"
	"goblog/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet   = "get"
	LogMethodSet   = "set"
	LogMethodDel   = "delete"
	LogMethodFlush = "flush"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToDelete  = "failed to delete value from redis"
	ErrorFailedToFlush   = "failed to flush redis database"
	ErrorFailedToClose   = "failed to close redis connection"
)

// RedisCache реализует интерфейс Cache с использованием Redis.
// Записи живут без TTL: их свежесть оценивается по возрасту при чтении,
// а вытеснение выполняется перезаписью или полной очисткой.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache создает новый экземпляр RedisCache.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cachePorts.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddressString(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisCache{client: client}, nil
}

// Get получает значение по ключу. Промах возвращает пустую строку без ошибки.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set безусловно устанавливает значение для ключа.
func (c *RedisCache) Set(ctx context.Context, key string, value string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Delete удаляет значение по ключу.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDel), zap.String("key", key))

	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}

	return nil
}

// FlushAll полностью очищает базу кэша.
func (c *RedisCache) FlushAll(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodFlush))

	if err := c.client.FlushDB(ctx).Err(); err != nil {
		log.Error(ctx, ErrorFailedToFlush, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToFlush, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
