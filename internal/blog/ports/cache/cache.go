// Package cache определяет интерфейс бэкенда кэша.
package cache

import "context"

// Cache определяет операции с разделяемым бэкендом ключ-значение.
// Промах чтения не является ошибкой: Get возвращает пустую строку.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string) error

	Delete(ctx context.Context, key string) error

	// FlushAll полностью очищает бэкенд кэша.
	FlushAll(ctx context.Context) error

	Close() error
}
