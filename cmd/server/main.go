package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	handler "github.com/logbook/api/internal/adapters/handler/http"
	"github.com/logbook/api/internal/adapters/repository/postgres"
	"github.com/logbook/api/internal/config"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	clock := domain.NewSystemClock()
	userRepo := postgres.NewUserRepository(db)
	logRepo := postgres.NewLogRepository(db)

	creds := services.NewCredentialService(cfg.BcryptCost)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL, clock)
	userSvc := services.NewUserService(userRepo, creds, tokens, clock)
	logSvc := services.NewLogService(logRepo, userRepo, clock)

	userHandler := handler.NewUserHandler(userSvc, logSvc, logger)
	logHandler := handler.NewLogHandler(logSvc, logger)
	auth := handler.NewAuthMiddleware(tokens)

	server := &stdhttp.Server{
		Addr:    cfg.Addr,
		Handler: handler.NewHandler(userHandler, logHandler, auth, logger),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}
