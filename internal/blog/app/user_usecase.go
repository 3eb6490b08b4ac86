// Package app реализует бизнес-логику сервиса блога.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"goblog/internal/blog/domain/entities"
	"goblog/internal/blog/ports/repositories"
	svc "goblog/internal/blog/ports/services"
	"goblog/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodAuthenticate = "Authenticate"

	msgStartRegistration  = "starting user registration"
	msgInvalidUsername    = "invalid username provided"
	msgInvalidPassword    = "invalid password provided"
	msgInvalidEmailFormat = "invalid email format"
	msgUserNameTaken      = "user with this name already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent name"
	msgWrongPassword      = "wrong password provided"
	msgUserLoggedIn       = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by name"
	msgErrVerifyingPassword = "error verifying stored credential"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxValidatingEmail    = "validating email"
	errCtxCheckingUser       = "checking existing user"
	errCtxNameRegistered     = "name already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

// Регулярные выражения валидации регистрационной формы.
var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRe = regexp.MustCompile(`^.{3,20}$`)
	emailRe    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// UserUseCase реализует справочник пользователей: регистрацию и аутентификацию.
type UserUseCase struct {
	userRepo    repositories.UserRepository
	credentials svc.CredentialCodec
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(userRepo repositories.UserRepository, credentials svc.CredentialCodec) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		credentials: credentials,
	}
}

// Register регистрирует нового пользователя со свежим соленым хешем пароля.
// Занятость имени проверяется до вставки ради дружелюбной ошибки; окно гонки
// двух одновременных регистраций закрывает уникальный индекс на users.name.
func (u *UserUseCase) Register(ctx context.Context, name, password, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("name", name))
	log.Debug(ctx, msgStartRegistration)

	if !usernameRe.MatchString(name) {
		log.Debug(ctx, msgInvalidUsername)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrInvalidUsername)
	}
	if !passwordRe.MatchString(password) {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrInvalidPassword)
	}
	if email != "" && !emailRe.MatchString(email) {
		log.Debug(ctx, msgInvalidEmailFormat)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrInvalidEmail)
	}

	existingUser, err := u.userRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgUserNameTaken)
		return nil, fmt.Errorf("%s: %w", errCtxNameRegistered, entities.ErrUserAlreadyExists)
	}

	passwordHash, err := u.credentials.Hash(name, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Name:         name,
		PasswordHash: passwordHash,
		Email:        email,
	}

	createdUser, err := u.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", createdUser.ID))
	return createdUser, nil
}

// Authenticate возвращает пользователя по имени и паролю.
// Несуществующее имя и неверный пароль неразличимы для вызывающей стороны:
// оба случая дают (nil, nil). Поврежденный сохраненный хеш фатален только
// для этой попытки: логируется и возвращается как ошибка.
func (u *UserUseCase) Authenticate(ctx context.Context, name, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("name", name))
	log.Debug(ctx, msgLoginAttempt)

	user, err := u.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := u.credentials.Verify(name, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgWrongPassword, zap.Int64("userID", user.ID))
		return nil, nil
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return user, nil
}

// FindByName возвращает пользователя по имени или nil, если его нет.
func (u *UserUseCase) FindByName(ctx context.Context, name string) (*entities.User, error) {
	user, err := u.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}

// FindByID возвращает пользователя по ID или nil, если его нет.
func (u *UserUseCase) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}
