package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goblog/internal/blog/domain/entities"
	"goblog/internal/blog/ports/repositories"
	"goblog/pkg/logger"
)

// PostRepository реализует интерфейс repositories.PostRepository для Postgres.
type PostRepository struct {
	pool PgxPoolInterface
}

// NewPostRepository создает новый репозиторий постов.
func NewPostRepository(pool PgxPoolInterface) repositories.PostRepository {
	return &PostRepository{pool: pool}
}

// Create сохраняет новый пост; отметки времени назначает база данных.
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new post", zap.String("subject", post.Subject))

	query := `
        INSERT INTO posts (subject, content)
        VALUES ($1, $2)
        RETURNING id, subject, content, created_at, updated_at
    `

	var createdPost entities.Post
	err := r.pool.QueryRow(ctx, query,
		post.Subject,
		post.Content,
	).Scan(
		&createdPost.ID,
		&createdPost.Subject,
		&createdPost.Content,
		&createdPost.Created,
		&createdPost.LastModified,
	)

	if err != nil {
		log.Error(ctx, "failed to create post", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Debug(ctx, "post created", zap.Int64("postID", createdPost.ID))
	return &createdPost, nil
}

// GetByID получает пост по ID.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "GetByID"))

	query := `
        SELECT id, subject, content, created_at, updated_at
        FROM posts
        WHERE id = $1
    `

	var post entities.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Subject,
		&post.Content,
		&post.Created,
		&post.LastModified,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found", zap.Int64("postID", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "failed to get post", zap.Error(err))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// ListByCreatedDesc возвращает все посты, новые первыми.
// Равные отметки времени упорядочиваются по убыванию id: скан детерминирован
// и стабилен между повторными чтениями при отсутствии новых записей.
func (r *PostRepository) ListByCreatedDesc(ctx context.Context) ([]*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "ListByCreatedDesc"))

	rows, err := r.pool.Query(ctx, `
        SELECT id, subject, content, created_at, updated_at
        FROM posts
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		log.Error(ctx, "failed to list posts", zap.Error(err))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*entities.Post, 0)
	for rows.Next() {
		var post entities.Post
		err := rows.Scan(&post.ID, &post.Subject, &post.Content, &post.Created, &post.LastModified)
		if err != nil {
			log.Error(ctx, "failed to scan post", zap.Error(err))
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return posts, nil
}
