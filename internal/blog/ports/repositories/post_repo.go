package repositories

import (
	"context"

	"goblog/internal/blog/domain/entities"
)

// PostRepository определяет операции с постами.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)

	GetByID(ctx context.Context, id int64) (*entities.Post, error)

	// ListByCreatedDesc возвращает все посты, новые первыми.
	ListByCreatedDesc(ctx context.Context) ([]*entities.Post, error)
}
