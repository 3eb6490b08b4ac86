package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	redisCacheAdapter "goblog/internal/blog/adapters/cache"
	httpServer "goblog/internal/blog/adapters/http"
	postgresRepo "goblog/internal/blog/adapters/postgres"
	"goblog/internal/blog/adapters/services"
	"goblog/internal/blog/adapters/view"
	"goblog/internal/blog/app"
	"goblog/internal/blog/config"
	"goblog/pkg/db/postgres"
	"goblog/pkg/logger"
	"goblog/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BLOG_LOGGER_MODE"
	EnvLoggerLevel = "BLOG_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrParseTemplates       = "failed to parse templates"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "blog service started"
	LogServiceShutdownDone = "blog service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConns, cfg.Postgres.MaxConns)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MigrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		redisCache, err := redisCacheAdapter.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		repos := postgresRepo.NewRepositoryFactory(database.Pool())
		userService := app.NewUserUseCase(repos.UserRepository(), services.NewSaltedSHA256())
		postService := app.NewPostUseCase(repos.PostRepository(), redisCache)
		signer := services.NewHMACSigner(cfg.Session.Secret)

		renderer, err := view.NewTemplateRenderer(cfg.HTTP.TemplatesDir)
		if err != nil {
			log.Error(ctx, ErrParseTemplates, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, userService, postService, signer, renderer, cfg.Session.CookieName)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing Redis connection")
				return redisCache.Close()
			},
			// Закрытие пула соединений с базой.
			func(ctx context.Context) error {
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
