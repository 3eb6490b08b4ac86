package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"BLOG_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"BLOG_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"BLOG_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"BLOG_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	TemplatesDir string        `yaml:"templates_dir" env:"BLOG_HTTP_TEMPLATES_DIR" env-default:"web/templates"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
