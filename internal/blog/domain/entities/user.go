// Package entities определяет доменные сущности блога.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidEmail      = errors.New("invalid email format")
)

// User представляет зарегистрированного автора блога.
// Имя уникально и не меняется после регистрации; email необязателен.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}
