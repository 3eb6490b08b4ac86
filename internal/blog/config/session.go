package config

// DevFallbackSecret - секрет для разработки при пустом BLOG_SESSION_SECRET.
// В production пустой секрет - отказ загрузки конфигурации: подпись
// общеизвестным значением равносильна отсутствию подписи.
const DevFallbackSecret = "hangnail"

// SessionConfig представляет конфигурацию сессионных cookie.
// Секрет один на процесс; его смена делает недействительными все выданные cookie.
type SessionConfig struct {
	Secret     string `yaml:"secret" env:"BLOG_SESSION_SECRET" env-default:""`
	CookieName string `yaml:"cookie_name" env:"BLOG_SESSION_COOKIE_NAME" env-default:"user_id"`
}
