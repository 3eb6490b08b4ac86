package app_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"goblog/internal/blog/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByName(ctx context.Context, name string) (*entities.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*entities.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) ListByCreatedDesc(ctx context.Context) ([]*entities.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Post), args.Error(1)
}

// fakeCacheBackend - потокобезопасный бэкенд кэша в памяти для тестов.
type fakeCacheBackend struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCacheBackend() *fakeCacheBackend {
	return &fakeCacheBackend{entries: make(map[string]string)}
}

func (f *fakeCacheBackend) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key], nil
}

func (f *fakeCacheBackend) Set(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCacheBackend) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCacheBackend) FlushAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string]string)
	return nil
}

func (f *fakeCacheBackend) Close() error {
	return nil
}
