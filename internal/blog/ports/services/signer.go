package services

// CookieSigner подписывает и проверяет значения сессионных cookie.
type CookieSigner interface {
	// Sign возвращает значение вместе с его подписью.
	Sign(value string) string

	// Verify проверяет подписанное значение и возвращает исходное.
	// Любой дефект входа дает (пусто, false); ошибок не бывает.
	Verify(signed string) (string, bool)
}
