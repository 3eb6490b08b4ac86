package postgres

import (
	"goblog/internal/blog/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// PostRepository возвращает репозиторий постов.
func (f *RepositoryFactory) PostRepository() repositories.PostRepository {
	return NewPostRepository(f.pool)
}
