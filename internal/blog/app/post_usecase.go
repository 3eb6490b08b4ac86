package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"goblog/internal/blog/cache"
	"goblog/internal/blog/domain/entities"
	cachePorts "goblog/internal/blog/ports/cache"
	"goblog/internal/blog/ports/repositories"
	"goblog/pkg/logger"
)

// FrontPostsKey - ключ кэша ленты главной страницы.
const FrontPostsKey = "front_posts"

const (
	methodPublish    = "Publish"
	methodGetPost    = "GetPost"
	methodFrontPosts = "FrontPosts"

	msgPostPublished  = "post published"
	msgCacheMissQuery = "cache miss, querying database"
	msgFrontRefreshed = "front posts cache refreshed"
	msgCacheFlushed   = "cache backend flushed"

	msgErrCreatePost   = "failed to create post"
	msgErrReadCache    = "failed to read cache"
	msgErrWriteCache   = "failed to write cache"
	msgErrQueryPost    = "failed to query post"
	msgErrQueryListing = "failed to query front listing"

	errCtxValidatingPost  = "validating post"
	errCtxCreatingPost    = "creating post"
	errCtxReadingCache    = "reading cache"
	errCtxWritingCache    = "writing cache"
	errCtxQueryingPost    = "querying post"
	errCtxQueryingListing = "querying front listing"
	errCtxRefreshingFront = "refreshing front listing"
	errCtxFlushingCache   = "flushing cache"
)

// PostUseCase реализует публикацию и чтение постов через кэш.
// Кэш читается первым; промах уходит в долговременное хранилище и
// заполняет кэш обратно. Возраст записи вычисляется в момент чтения.
type PostUseCase struct {
	postRepo   repositories.PostRepository
	postCache  *cache.TimedCache[entities.Post]
	frontCache *cache.TimedCache[[]*entities.Post]
	backend    cachePorts.Cache
}

// NewPostUseCase создает новый экземпляр сервиса постов.
func NewPostUseCase(postRepo repositories.PostRepository, backend cachePorts.Cache) *PostUseCase {
	return &PostUseCase{
		postRepo:   postRepo,
		postCache:  cache.New[entities.Post](backend),
		frontCache: cache.New[[]*entities.Post](backend),
		backend:    backend,
	}
}

// Publish сохраняет новый пост и синхронно обновляет кэш главной страницы:
// инвалидация выполняется записью, а не истечением TTL, поэтому клиент,
// получивший успешный ответ, сразу видит свой пост в ленте.
func (u *PostUseCase) Publish(ctx context.Context, subject, content string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodPublish))

	if subject == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPost, entities.ErrEmptySubject)
	}
	if content == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPost, entities.ErrEmptyContent)
	}

	createdPost, err := u.postRepo.Create(ctx, &entities.Post{Subject: subject, Content: content})
	if err != nil {
		log.Error(ctx, msgErrCreatePost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingPost, err)
	}

	if _, _, err := u.FrontPosts(ctx, true); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxRefreshingFront, err)
	}

	log.Info(ctx, msgPostPublished, zap.Int64("postID", createdPost.ID))
	return createdPost, nil
}

// GetPost возвращает пост и возраст записи кэша.
// Промах кэша читает хранилище, заполняет кэш и дает возраст около нуля.
// Отсутствующий в хранилище id возвращается как ErrPostNotFound.
func (u *PostUseCase) GetPost(ctx context.Context, id int64) (*entities.Post, time.Duration, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPost), zap.Int64("postID", id))

	key := strconv.FormatInt(id, 10)

	post, cachedAt, ok, err := u.postCache.Get(ctx, key)
	if err != nil {
		log.Error(ctx, msgErrReadCache, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxReadingCache, err)
	}

	if !ok {
		log.Warn(ctx, msgCacheMissQuery)

		fromDB, err := u.postRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, entities.ErrPostNotFound) {
				return nil, 0, entities.ErrPostNotFound
			}
			log.Error(ctx, msgErrQueryPost, zap.Error(err))
			return nil, 0, fmt.Errorf("%s: %w", errCtxQueryingPost, err)
		}

		cachedAt, err = u.postCache.Set(ctx, key, *fromDB)
		if err != nil {
			log.Error(ctx, msgErrWriteCache, zap.Error(err))
			return nil, 0, fmt.Errorf("%s: %w", errCtxWritingCache, err)
		}
		post = *fromDB
	}

	return &post, time.Since(cachedAt), nil
}

// FrontPosts возвращает ленту постов (новые первыми) и возраст кэша.
// forceRefresh пропускает чтение кэша, перечитывает хранилище и
// перезаписывает запись; так публикация обновляет ленту.
func (u *PostUseCase) FrontPosts(ctx context.Context, forceRefresh bool) ([]*entities.Post, time.Duration, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFrontPosts))

	if !forceRefresh {
		posts, cachedAt, ok, err := u.frontCache.Get(ctx, FrontPostsKey)
		if err != nil {
			log.Error(ctx, msgErrReadCache, zap.Error(err))
			return nil, 0, fmt.Errorf("%s: %w", errCtxReadingCache, err)
		}
		if ok {
			return posts, time.Since(cachedAt), nil
		}
		log.Warn(ctx, msgCacheMissQuery)
	}

	posts, err := u.postRepo.ListByCreatedDesc(ctx)
	if err != nil {
		log.Error(ctx, msgErrQueryListing, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxQueryingListing, err)
	}

	cachedAt, err := u.frontCache.Set(ctx, FrontPostsKey, posts)
	if err != nil {
		log.Error(ctx, msgErrWriteCache, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxWritingCache, err)
	}

	log.Debug(ctx, msgFrontRefreshed, zap.Int("posts", len(posts)))
	return posts, time.Since(cachedAt), nil
}

// FlushCache полностью очищает бэкенд кэша. Операция административная
// и грубая: вычищаются и лента, и записи отдельных постов.
func (u *PostUseCase) FlushCache(ctx context.Context) error {
	log := logger.Log(ctx)

	if err := u.backend.FlushAll(ctx); err != nil {
		return fmt.Errorf("%s: %w", errCtxFlushingCache, err)
	}

	log.Info(ctx, msgCacheFlushed)
	return nil
}
