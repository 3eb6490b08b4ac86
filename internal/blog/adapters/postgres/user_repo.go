package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"goblog/internal/blog/domain/entities"
	"goblog/internal/blog/ports/repositories"
	"goblog/pkg/logger"
)

// Код ошибки Postgres для нарушения уникальности.
const uniqueViolationCode = "23505"

// UserRepository реализует интерфейс repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя.
// Нарушение уникального индекса по имени возвращается как ErrUserAlreadyExists:
// так закрывается окно гонки двух одновременных регистраций.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (name, password_hash, email)
        VALUES ($1, $2, $3)
        RETURNING id, name, password_hash, email, created_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.PasswordHash,
		user.Email,
	).Scan(
		&createdUser.ID,
		&createdUser.Name,
		&createdUser.PasswordHash,
		&createdUser.Email,
		&createdUser.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate user name", zap.String("name", user.Name))
			return nil, entities.ErrUserAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &createdUser, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, password_hash, email, created_at
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByName находит пользователя по имени.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByName"))

	query := `
        SELECT id, name, password_hash, email, created_at
        FROM users
        WHERE name = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("name", name))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by name", zap.Error(err))
		return nil, fmt.Errorf("error querying user by name: %w", err)
	}

	return &user, nil
}
