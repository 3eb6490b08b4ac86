package services

import (
	"context"

	"goblog/internal/blog/domain/entities"
)

// UserService - справочник пользователей для HTTP слоя.
// Authenticate, FindByName и FindByID возвращают (nil, nil),
// когда пользователь отсутствует.
type UserService interface {
	Register(ctx context.Context, name, password, email string) (*entities.User, error)
	Authenticate(ctx context.Context, name, password string) (*entities.User, error)
	FindByName(ctx context.Context, name string) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
}
