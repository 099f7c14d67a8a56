package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/welldanyogia/webrana-posts-backend/internal/api"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/middleware"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	"github.com/welldanyogia/webrana-posts-backend/internal/config"
	"github.com/welldanyogia/webrana-posts-backend/internal/database"
	"github.com/welldanyogia/webrana-posts-backend/internal/logger"
	"golang.org/x/time/rate"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadWithValidation()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	slog.Info("Starting posts backend server...")
	cfg.LogConfig(log)

	gormLevel := gormlogger.Warn
	if logger.ParseLevel(cfg.LogLevel) == slog.LevelDebug {
		gormLevel = gormlogger.Info
	}

	db, err := database.Connect(database.Options{
		Driver:     cfg.DatabaseDriver,
		URL:        cfg.DatabaseURL,
		Production: cfg.IsProduction(),
		LogLevel:   gormLevel,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.NewSecurityLogger(log).SecurityEvent("ephemeral_signing_secret", "", map[string]string{
			"app_env": cfg.AppEnv,
			"note":    "JWT_SECRET not set; tokens will not survive a restart",
		})
	}
	tokens := auth.NewTokenManager(secret, cfg.TokenTTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var limiter *middleware.IPRateLimiter
	if cfg.RateLimitRequests > 0 {
		limiter = middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRequests), cfg.RateLimitBurst)
		go limiter.RunCleanup(ctx, time.Minute)
	}

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		Logger:         log,
		Verifier:       tokens,
		AllowedOrigins: cfg.Origins(),
		Limiter:        limiter,
		CSRFEnabled:    cfg.CSRFEnabled,
		Production:     cfg.IsProduction(),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
