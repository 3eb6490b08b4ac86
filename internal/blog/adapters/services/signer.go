package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	svc "goblog/internal/blog/ports/services"
)

// HMACSigner подписывает значения cookie по схеме "value|hex(hmac_sha256(secret, value))".
// Секрет один на процесс и задается при создании; его смена делает
// недействительными все выданные ранее cookie.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner создает signer с заданным секретом.
func NewHMACSigner(secret string) svc.CookieSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign возвращает значение вместе с его подписью.
func (s *HMACSigner) Sign(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return value + "|" + hex.EncodeToString(mac.Sum(nil))
}

// Verify проверяет подписанное значение и возвращает исходное.
// Значение берется до первого '|'; подпись пересчитывается и сравнивается
// за постоянное время. Любой дефект входа дает (пусто, false).
func (s *HMACSigner) Verify(signed string) (string, bool) {
	value, _, found := strings.Cut(signed, "|")
	if !found {
		return "", false
	}

	if !hmac.Equal([]byte(s.Sign(value)), []byte(signed)) {
		return "", false
	}
	return value, true
}
