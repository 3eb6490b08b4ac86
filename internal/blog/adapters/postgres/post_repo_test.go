package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblog/internal/blog/adapters/postgres"
	"goblog/internal/blog/domain/entities"
)

func postColumns() []string {
	return []string{"id", "subject", "content", "created_at", "updated_at"}
}

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("successful creation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO posts").
			WithArgs("Hello", "World").
			WillReturnRows(pgxmock.NewRows(postColumns()).
				AddRow(int64(1), "Hello", "World", now, now))

		repo := postgres.NewPostRepository(mock)
		created, err := repo.Create(ctx, &entities.Post{Subject: "Hello", Content: "World"})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "Hello", created.Subject)
		assert.Equal(t, "World", created.Content)
		assert.False(t, created.Created.IsZero())
		assert.False(t, created.LastModified.IsZero())

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO posts").
			WithArgs("Hello", "World").
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewPostRepository(mock)
		created, err := repo.Create(ctx, &entities.Post{Subject: "Hello", Content: "World"})

		assert.Nil(t, created)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create post")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, subject, content, created_at, updated_at").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(postColumns()).
				AddRow(int64(1), "Hello", "World", now, now))

		repo := postgres.NewPostRepository(mock)
		post, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "Hello", post.Subject)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id maps to ErrPostNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, subject, content, created_at, updated_at").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewPostRepository(mock)
		post, err := repo.GetByID(ctx, 404)

		assert.Nil(t, post)
		require.ErrorIs(t, err, entities.ErrPostNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_ListByCreatedDesc(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("returns posts newest first", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, subject, content, created_at, updated_at").
			WillReturnRows(pgxmock.NewRows(postColumns()).
				AddRow(int64(2), "Second", "B", now, now).
				AddRow(int64(1), "First", "A", now.Add(-time.Hour), now.Add(-time.Hour)))

		repo := postgres.NewPostRepository(mock)
		posts, err := repo.ListByCreatedDesc(ctx)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Second", posts[0].Subject)
		assert.Equal(t, "First", posts[1].Subject)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, subject, content, created_at, updated_at").
			WillReturnRows(pgxmock.NewRows(postColumns()))

		repo := postgres.NewPostRepository(mock)
		posts, err := repo.ListByCreatedDesc(ctx)

		require.NoError(t, err)
		assert.Empty(t, posts)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, subject, content, created_at, updated_at").
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewPostRepository(mock)
		posts, err := repo.ListByCreatedDesc(ctx)

		assert.Nil(t, posts)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to list posts")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
