package config

import "fmt"

// PostgresConfig представляет конфигурацию подключения к Postgres.
type PostgresConfig struct {
	Host           string `yaml:"host" env:"BLOG_POSTGRES_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"BLOG_POSTGRES_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"BLOG_POSTGRES_USER" env-default:"blog"`
	Password       string `yaml:"password" env:"BLOG_POSTGRES_PASSWORD" env-default:""`
	Database       string `yaml:"database" env:"BLOG_POSTGRES_DB" env-default:"blog"`
	SSLMode        string `yaml:"ssl_mode" env:"BLOG_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConns       int    `yaml:"min_conns" env:"BLOG_POSTGRES_MIN_CONNS" env-default:"1"`
	MaxConns       int    `yaml:"max_conns" env:"BLOG_POSTGRES_MAX_CONNS" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"BLOG_POSTGRES_MIGRATIONS_PATH" env-default:"file://migrations/blog"`
}

// GetDSN возвращает строку подключения к базе данных.
func (c *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}
