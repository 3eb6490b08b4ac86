// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Format - формат ответа, выбранный для текущего запроса.
type Format string

// Поддерживаемые форматы ответа.
const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

const (
	formatKey  = "responseFormat"
	jsonSuffix = ".json"
)

// NewFormatMiddleware разбирает суффикс ".json" в пути ровно один раз на
// запрос: суффикс срезается до маршрутизации, а выбранный формат кладется
// в Locals типизированным значением. Обработчики не смотрят в путь сами.
func NewFormatMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		format := FormatHTML

		if path := ctx.Path(); strings.HasSuffix(path, jsonSuffix) {
			format = FormatJSON
			ctx.Path(strings.TrimSuffix(path, jsonSuffix))
		}

		ctx.Locals(formatKey, format)
		return ctx.Next()
	}
}

// ResponseFormat возвращает формат ответа текущего запроса.
// До выполнения NewFormatMiddleware это HTML.
func ResponseFormat(ctx fiber.Ctx) Format {
	if format, ok := ctx.Locals(formatKey).(Format); ok {
		return format
	}
	return FormatHTML
}
