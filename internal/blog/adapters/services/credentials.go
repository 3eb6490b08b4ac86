// Package services содержит реализации доменных сервисов.
package services

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	svc "goblog/internal/blog/ports/services"
)

// ErrCorruptCredential возвращается, когда сохраненный хеш не содержит соли.
var ErrCorruptCredential = errors.New("corrupt stored credential")

// Параметры генерации соли.
const (
	saltLength   = 5
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

const errMsgGenerateSalt = "failed to generate salt"

// SaltedSHA256 реализует кодек учетных данных.
// Формат хранения: "salt,hex(sha256(name + password + salt))".
// Порядок конкатенации фиксирован: его изменение сломает все сохраненные хеши.
type SaltedSHA256 struct{}

// NewSaltedSHA256 создает новый кодек учетных данных.
func NewSaltedSHA256() svc.CredentialCodec {
	return &SaltedSHA256{}
}

// Hash хеширует пароль со свежей случайной солью.
// Пустой пароль допустим: валидация длины - забота уровня представления.
func (c *SaltedSHA256) Hash(name, password string) (string, error) {
	salt, err := makeSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgGenerateSalt, err)
	}
	return c.HashWithSalt(name, password, salt), nil
}

// HashWithSalt хеширует пароль с заданной солью. Детерминирован.
func (c *SaltedSHA256) HashWithSalt(name, password, salt string) string {
	digest := sha256.Sum256([]byte(name + password + salt))
	return salt + "," + hex.EncodeToString(digest[:])
}

// Verify проверяет пароль против сохраненного хеша.
// Соль - подстрока до первой запятой; сравнение выполняется за постоянное время.
func (c *SaltedSHA256) Verify(name, password, storedHash string) (bool, error) {
	salt, _, found := strings.Cut(storedHash, ",")
	if !found {
		return false, ErrCorruptCredential
	}

	recomputed := c.HashWithSalt(name, password, salt)
	return hmac.Equal([]byte(recomputed), []byte(storedHash)), nil
}

// makeSalt возвращает случайную строку из saltAlphabet заданной длины.
func makeSalt(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(out), nil
}
