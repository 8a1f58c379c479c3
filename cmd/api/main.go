// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the bookstore HTTP API server.
//
// # Startup Sequence
//
//  1. Load .env files (local overrides first) without touching real env vars.
//  2. Initialize structured logger.
//  3. Load configuration from environment variables.
//  4. Connect to PostgreSQL (pgxpool) and expose it through database/sql.
//  5. Connect to Redis when REDIS_URL is set.
//  6. Run database migrations when AUTO_MIGRATE is on (idempotent).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookstore/internal/api"
	"github.com/taibuivan/bookstore/internal/core/book"
	"github.com/taibuivan/bookstore/internal/platform/config"
	"github.com/taibuivan/bookstore/internal/platform/constants"
	"github.com/taibuivan/bookstore/internal/platform/migration"
	pgstore "github.com/taibuivan/bookstore/internal/platform/postgres"
	redisstore "github.com/taibuivan/bookstore/internal/platform/redis"
)

func main() {
	// ── 1. Environment files ──────────────────────────────────────────────
	// godotenv never overrides variables that are already set, so the first
	// file to define a key wins.
	envErr := loadEnvFiles(".env.local", ".env")

	// ── 2. Logger ─────────────────────────────────────────────────────────
	// Initialize early so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))
	must(log, envErr, "load env files")

	// ── 3. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis", cfg.HasRedis()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DSN(), log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	db := pgstore.OpenDB(pool)
	defer func() { _ = db.Close() }()

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var rdb *redis.Client
	if cfg.HasRedis() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 6. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		must(log, migration.RunUp(cfg.DSN(), cfg.MigrationPath, log), "run migrations")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
	}
	if rdb != nil {
		healthDeps.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	bookRepository := book.NewPostgresRepository(db, cfg.QueryTimeout)
	bookService := book.NewService(bookRepository, log)
	bookHandler := book.NewHandler(bookService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	// serverCtx stops background workers (rate limiter cleanup) on shutdown.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, rdb, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Book:      bookHandler,
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger every component writes through.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// loadEnvFiles loads each existing file in order. Missing files are skipped.
func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
