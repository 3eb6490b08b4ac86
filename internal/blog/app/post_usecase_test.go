package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goblog/internal/blog/app"
	"goblog/internal/blog/domain/entities"
)

func TestPostUseCase_Publish(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("successful publish refreshes front cache", func(t *testing.T) {
		created := &entities.Post{ID: 1, Subject: "Hello", Content: "World", Created: now, LastModified: now}

		postRepo := new(mockPostRepository)
		postRepo.On("Create", ctx, mock.AnythingOfType("*entities.Post")).Return(created, nil)
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{created}, nil)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())
		post, err := uc.Publish(ctx, "Hello", "World")

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, int64(1), post.ID)

		postRepo.AssertCalled(t, "ListByCreatedDesc", ctx)
	})

	t.Run("empty subject", func(t *testing.T) {
		postRepo := new(mockPostRepository)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())
		post, err := uc.Publish(ctx, "", "World")

		assert.Nil(t, post)
		require.ErrorIs(t, err, entities.ErrEmptySubject)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty content", func(t *testing.T) {
		postRepo := new(mockPostRepository)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())
		post, err := uc.Publish(ctx, "Hello", "")

		assert.Nil(t, post)
		require.ErrorIs(t, err, entities.ErrEmptyContent)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("Create", ctx, mock.AnythingOfType("*entities.Post")).
			Return(nil, errDatabaseConnection)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())
		post, err := uc.Publish(ctx, "Hello", "World")

		assert.Nil(t, post)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestPostUseCase_GetPost(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	stored := &entities.Post{ID: 1, Subject: "Hello", Content: "World", Created: now, LastModified: now}

	t.Run("miss falls back to store and repopulates", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", ctx, int64(1)).Return(stored, nil).Once()

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		post, age, err := uc.GetPost(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "Hello", post.Subject)
		assert.Equal(t, "World", post.Content)
		assert.Less(t, age, 2*time.Second, "age must be about zero right after the fallback")

		// Второе чтение обслуживается кэшем: хранилище больше не трогается.
		secondPost, secondAge, err := uc.GetPost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, post.ID, secondPost.ID)
		assert.GreaterOrEqual(t, secondAge, age-time.Second)

		postRepo.AssertNumberOfCalls(t, "GetByID", 1)
	})

	t.Run("never published id", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", ctx, int64(404)).Return(nil, entities.ErrPostNotFound)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		post, age, err := uc.GetPost(ctx, 404)
		assert.Nil(t, post)
		assert.Zero(t, age)
		require.ErrorIs(t, err, entities.ErrPostNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("GetByID", ctx, int64(1)).Return(nil, errDatabaseConnection)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		post, _, err := uc.GetPost(ctx, 1)
		assert.Nil(t, post)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestPostUseCase_FrontPosts(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	first := &entities.Post{ID: 1, Subject: "First", Content: "A", Created: now.Add(-time.Hour)}
	second := &entities.Post{ID: 2, Subject: "Second", Content: "B", Created: now}

	t.Run("repeated reads are idempotent with non-decreasing age", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{second, first}, nil).Once()

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		posts, firstAge, err := uc.FrontPosts(ctx, false)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		again, secondAge, err := uc.FrontPosts(ctx, false)
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.Equal(t, posts[0].ID, again[0].ID)
		assert.Equal(t, posts[1].ID, again[1].ID)
		assert.GreaterOrEqual(t, secondAge, firstAge-time.Second)

		postRepo.AssertNumberOfCalls(t, "ListByCreatedDesc", 1)
	})

	t.Run("force refresh bypasses cache", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{first}, nil).Once()
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{second, first}, nil).Once()

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		posts, _, err := uc.FrontPosts(ctx, false)
		require.NoError(t, err)
		require.Len(t, posts, 1)

		refreshed, age, err := uc.FrontPosts(ctx, true)
		require.NoError(t, err)
		require.Len(t, refreshed, 2)
		assert.Equal(t, "Second", refreshed[0].Subject)
		assert.Less(t, age, 2*time.Second)

		postRepo.AssertNumberOfCalls(t, "ListByCreatedDesc", 2)
	})

	t.Run("publish makes the new post first with fresh age", func(t *testing.T) {
		published := &entities.Post{ID: 3, Subject: "T", Content: "C", Created: now.Add(time.Minute)}

		postRepo := new(mockPostRepository)
		postRepo.On("Create", ctx, mock.AnythingOfType("*entities.Post")).Return(published, nil)
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{published, second, first}, nil)

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		_, err := uc.Publish(ctx, "T", "C")
		require.NoError(t, err)

		posts, age, err := uc.FrontPosts(ctx, false)
		require.NoError(t, err)
		require.NotEmpty(t, posts)
		assert.Equal(t, int64(3), posts[0].ID)
		assert.Less(t, age, 2*time.Second)
	})

	t.Run("two publishes order newest first", func(t *testing.T) {
		postRepo := new(mockPostRepository)
		postRepo.On("Create", ctx, mock.AnythingOfType("*entities.Post")).
			Return(first, nil).Once()
		postRepo.On("Create", ctx, mock.AnythingOfType("*entities.Post")).
			Return(second, nil).Once()
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{first}, nil).Once()
		postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{second, first}, nil).Once()

		uc := app.NewPostUseCase(postRepo, newFakeCacheBackend())

		_, err := uc.Publish(ctx, "First", "A")
		require.NoError(t, err)
		_, err = uc.Publish(ctx, "Second", "B")
		require.NoError(t, err)

		posts, _, err := uc.FrontPosts(ctx, false)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Second", posts[0].Subject)
		assert.Equal(t, "First", posts[1].Subject)
	})
}

func TestPostUseCase_FlushCache(t *testing.T) {
	ctx := context.Background()

	postRepo := new(mockPostRepository)
	postRepo.On("ListByCreatedDesc", ctx).Return([]*entities.Post{}, nil)

	backend := newFakeCacheBackend()
	uc := app.NewPostUseCase(postRepo, backend)

	_, _, err := uc.FrontPosts(ctx, false)
	require.NoError(t, err)

	require.NoError(t, uc.FlushCache(ctx))

	value, err := backend.Get(ctx, app.FrontPostsKey)
	require.NoError(t, err)
	assert.Empty(t, value, "flush must clear the front listing entry")
}
