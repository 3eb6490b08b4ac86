package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goblog/internal/blog/adapters/services"
	"goblog/internal/blog/app"
	"goblog/internal/blog/domain/entities"
)

var errDatabaseConnection = errors.New("database connection error")

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	codec := services.NewSaltedSHA256()

	t.Run("successful registration", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").Return(nil, entities.ErrUserNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).
			Return(&entities.User{ID: 1, Name: "alice"}, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Register(ctx, "alice", "secret123", "alice@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)

		created := userRepo.Calls[len(userRepo.Calls)-1].Arguments.Get(1).(*entities.User)
		assert.NotEmpty(t, created.PasswordHash)
		assert.NotContains(t, created.PasswordHash, "secret123",
			"password must never be stored in plaintext")

		ok, err := codec.Verify("alice", "secret123", created.PasswordHash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate name", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").
			Return(&entities.User{ID: 1, Name: "alice"}, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Register(ctx, "alice", "secret123", "")

		assert.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserAlreadyExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name     string
			username string
			password string
			email    string
			wantErr  error
		}{
			{"short username", "ab", "secret123", "", entities.ErrInvalidUsername},
			{"bad characters", "a b!", "secret123", "", entities.ErrInvalidUsername},
			{"short password", "alice", "ab", "", entities.ErrInvalidPassword},
			{"long password", "alice", "123456789012345678901", "", entities.ErrInvalidPassword},
			{"bad email", "alice", "secret123", "not-an-email", entities.ErrInvalidEmail},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				userRepo := new(mockUserRepository)

				uc := app.NewUserUseCase(userRepo, codec)
				user, err := uc.Register(ctx, tc.username, tc.password, tc.email)

				assert.Nil(t, user)
				require.ErrorIs(t, err, tc.wantErr)
				userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("empty email is allowed", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "bob").Return(nil, entities.ErrUserNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).
			Return(&entities.User{ID: 2, Name: "bob"}, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Register(ctx, "bob", "secret123", "")

		require.NoError(t, err)
		require.NotNil(t, user)
	})

	t.Run("repository error", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").Return(nil, errDatabaseConnection)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Register(ctx, "alice", "secret123", "")

		assert.Nil(t, user)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	codec := services.NewSaltedSHA256()

	storedHash, err := codec.Hash("alice", "secret123")
	require.NoError(t, err)

	alice := &entities.User{ID: 1, Name: "alice", PasswordHash: storedHash}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").Return(alice, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Authenticate(ctx, "alice", "secret123")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("wrong password yields absent user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").Return(alice, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Authenticate(ctx, "alice", "wrong")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown name yields absent user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "bob").Return(nil, entities.ErrUserNotFound)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Authenticate(ctx, "bob", "x")

		require.NoError(t, err)
		assert.Nil(t, user, "unknown name and wrong password must be indistinguishable")
	})

	t.Run("corrupt stored hash is an error, not a login", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "mallory").
			Return(&entities.User{ID: 3, Name: "mallory", PasswordHash: "no-comma"}, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Authenticate(ctx, "mallory", "whatever")

		assert.Nil(t, user)
		require.ErrorIs(t, err, services.ErrCorruptCredential)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByName", ctx, "alice").Return(nil, errDatabaseConnection)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.Authenticate(ctx, "alice", "secret123")

		assert.Nil(t, user)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestUserUseCase_FindByID(t *testing.T) {
	ctx := context.Background()
	codec := services.NewSaltedSHA256()

	t.Run("found", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, int64(1)).
			Return(&entities.User{ID: 1, Name: "alice"}, nil)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.FindByID(ctx, 1)

		require.NoError(t, err)
		require.NotNil(t, user)
	})

	t.Run("absent", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", ctx, int64(404)).Return(nil, entities.ErrUserNotFound)

		uc := app.NewUserUseCase(userRepo, codec)
		user, err := uc.FindByID(ctx, 404)

		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
