// Package repositories определяет интерфейсы доступа к долговременному хранилищу.
package repositories

import (
	"context"

	"goblog/internal/blog/domain/entities"
)

// UserRepository определяет операции с пользователями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByName(ctx context.Context, name string) (*entities.User, error)
}
