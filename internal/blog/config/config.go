// Package config содержит конфигурацию сервиса блога.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"goblog/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig        = "loading blog service configuration"
	LogConfigLoaded         = "configuration loaded successfully"
	LogUsingDevSecret       = "session secret is empty, using development fallback"
	ErrFailedLoadConfig     = "failed to load configuration"
	ErrSessionSecretMissing = "session secret must be set in production mode"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Session  SessionConfig  `yaml:"session"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if cfg.Session.Secret == "" {
		if cfg.Logging.GetEnvironment() == logger.Production {
			log.Error(ctx, ErrSessionSecretMissing)
			return nil, errors.New(ErrSessionSecretMissing)
		}
		log.Warn(ctx, LogUsingDevSecret)
		cfg.Session.Secret = DevFallbackSecret
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_host", cfg.HTTP.Host),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.String("redis_address", cfg.Redis.GetAddressString()),
		zap.String("session_cookie", cfg.Session.CookieName),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return &cfg, nil
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
