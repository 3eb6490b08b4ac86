package services

import (
	"context"
	"time"

	"goblog/internal/blog/domain/entities"
)

// PostService - операции публикации и чтения постов для HTTP слоя.
// Возвращаемый time.Duration - возраст записи кэша на момент чтения.
type PostService interface {
	Publish(ctx context.Context, subject, content string) (*entities.Post, error)
	GetPost(ctx context.Context, id int64) (*entities.Post, time.Duration, error)
	FrontPosts(ctx context.Context, forceRefresh bool) ([]*entities.Post, time.Duration, error)
	FlushCache(ctx context.Context) error
}
