// Package cache реализует кэш с отметкой времени записи поверх бэкенда ключ-значение.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cachePorts "goblog/internal/blog/ports/cache"
)

// Константы для сообщений об ошибках.
const (
	ErrEncodeEntry = "failed to encode cache entry"
	ErrDecodeEntry = "failed to decode cache entry"
)

// Entry хранит закэшированное значение вместе со временем его записи.
type Entry[T any] struct {
	Value     T         `json:"value"`
	CacheTime time.Time `json:"cache_time"`
}

// TimedCache сохраняет значения типа T вместе с отметкой времени.
// Слой не назначает TTL: устаревание выражается возрастом записи,
// который вызывающая сторона вычисляет в момент чтения.
// Дополнительных блокировок нет: одновременные Set одного ключа
// гонятся на уровне бэкенда (последняя запись побеждает), что допустимо,
// так как записи всегда восстановимы из долговременного хранилища.
type TimedCache[T any] struct {
	backend cachePorts.Cache
}

// New создает новый TimedCache поверх заданного бэкенда.
func New[T any](backend cachePorts.Cache) *TimedCache[T] {
	return &TimedCache[T]{backend: backend}
}

// Set безусловно сохраняет значение и возвращает использованную отметку времени.
func (c *TimedCache[T]) Set(ctx context.Context, key string, value T) (time.Time, error) {
	now := time.Now().UTC()

	payload, err := json.Marshal(Entry[T]{Value: value, CacheTime: now})
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", ErrEncodeEntry, err)
	}

	if err := c.backend.Set(ctx, key, string(payload)); err != nil {
		return time.Time{}, err
	}

	return now, nil
}

// Get возвращает значение и время его записи.
// Промах дает (zero, zero, false, nil); запись без отметки времени
// считается отсутствующей. Ошибка бэкенда не маскируется под промах.
func (c *TimedCache[T]) Get(ctx context.Context, key string) (T, time.Time, bool, error) {
	var zero T

	payload, err := c.backend.Get(ctx, key)
	if err != nil {
		return zero, time.Time{}, false, err
	}
	if payload == "" {
		return zero, time.Time{}, false, nil
	}

	var entry Entry[T]
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return zero, time.Time{}, false, fmt.Errorf("%s: %w", ErrDecodeEntry, err)
	}
	if entry.CacheTime.IsZero() {
		return zero, time.Time{}, false, nil
	}

	return entry.Value, entry.CacheTime, true, nil
}
