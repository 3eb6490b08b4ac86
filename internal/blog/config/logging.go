package config

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"BLOG_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"BLOG_LOGGER_MODE" env-default:"production"`
}
