// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblog/pkg/logger"
)

// Константы для логирования запросов.
const (
	msgRequestStarted   = "request started"
	msgRequestCompleted = "request completed"
	msgRequestFailed    = "request failed"
)

// NewLoggerMiddleware создает промежуточное ПО журналирования запросов.
// Тела запросов не логируются: формы логина и регистрации несут пароли.
// Ответы 5xx пишутся уровнем Error и без ошибки от обработчика.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, msgRequestStarted)

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case err != nil:
			log.Error(requestCtx, msgRequestFailed, append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		case status >= fiber.StatusInternalServerError:
			log.Error(requestCtx, msgRequestFailed, logFields...)
		default:
			log.Info(requestCtx, msgRequestCompleted, logFields...)
		}

		return nil
	}
}
