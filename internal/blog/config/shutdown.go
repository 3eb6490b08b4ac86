package config

import "time"

// ShutdownConfig представляет конфигурацию корректного завершения.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"BLOG_SHUTDOWN_TIMEOUT" env-default:"10"`
}

// GetTimeout возвращает timeout завершения.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
