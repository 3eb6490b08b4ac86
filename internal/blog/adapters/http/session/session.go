// Package session управляет cookie-сеансом пользователя.
package session

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	svc "goblog/internal/blog/ports/services"
)

// Manager ставит и снимает подписанную сеансовую куку.
// Значение куки - sign(uid); сервер состояния сеанса не хранит.
type Manager struct {
	signer     svc.CookieSigner
	cookieName string
}

// NewManager создает новый менеджер сеансов.
func NewManager(signer svc.CookieSigner, cookieName string) *Manager {
	return &Manager{
		signer:     signer,
		cookieName: cookieName,
	}
}

// Start начинает сеанс: ставит куку с подписанным идентификатором пользователя.
func (m *Manager) Start(ctx fiber.Ctx, userID int64) {
	ctx.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    m.signer.Sign(strconv.FormatInt(userID, 10)),
		Path:     "/",
		HTTPOnly: true,
	})
}

// End завершает сеанс: затирает куку просроченной пустышкой.
func (m *Manager) End(ctx fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
