// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblog/pkg/logger"
)

// Константы для логирования паник.
const (
	msgPanicRecovered     = "panic recovered while serving request"
	msgErrSendFailurePage = "failed to send failure page after panic"

	failurePageBody = "Internal Server Error"
)

// NewRecoveryMiddleware создает промежуточное ПО восстановления после паники.
// Клиент получает общую страницу отказа без деталей; стек уходит в лог.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(requestCtx, msgPanicRecovered,
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())),
				)

				if err := ctx.Status(fiber.StatusInternalServerError).SendString(failurePageBody); err != nil {
					log.Error(requestCtx, msgErrSendFailurePage, zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
