// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblog/internal/blog/domain/entities"
	svc "goblog/internal/blog/ports/services"
	"goblog/pkg/logger"
)

// Константы для логирования.
const (
	LogSessionMiddleware = "session middleware"

	ErrorInvalidCookieSignature = "session cookie signature rejected"
	ErrorMalformedCookieValue   = "session cookie value is not a user id"
	ErrorSessionUserLookup      = "failed to look up session user"
)

const currentUserKey = "currentUser"

// NewSessionMiddleware создает промежуточное ПО сеанса запроса: читает
// подписанную куку, проверяет подпись и загружает пользователя в Locals.
// Любой дефект куки - отсутствие, битая подпись, нечисловое значение,
// несуществующий id - дает анонимный запрос, а не ошибку.
func NewSessionMiddleware(signer svc.CookieSigner, users svc.UserService, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))

		cookie := ctx.Cookies(cookieName)
		if cookie == "" {
			return ctx.Next()
		}

		value, ok := signer.Verify(cookie)
		if !ok {
			log.Debug(requestCtx, ErrorInvalidCookieSignature)
			return ctx.Next()
		}

		userID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Debug(requestCtx, ErrorMalformedCookieValue)
			return ctx.Next()
		}

		user, err := users.FindByID(requestCtx, userID)
		if err != nil {
			log.Error(requestCtx, ErrorSessionUserLookup, zap.Error(err), zap.Int64("userID", userID))
			return ctx.Next()
		}
		if user != nil {
			ctx.Locals(currentUserKey, user)
		}

		return ctx.Next()
	}
}

// CurrentUser возвращает пользователя текущего сеанса или nil для анонима.
func CurrentUser(ctx fiber.Ctx) *entities.User {
	if user, ok := ctx.Locals(currentUserKey).(*entities.User); ok {
		return user
	}
	return nil
}
