// Package main is the entry point for the ShopLedger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopledger/backend/config"
	"github.com/shopledger/backend/internal/infra/cache"
	"github.com/shopledger/backend/internal/infra/db"
	"github.com/shopledger/backend/internal/infra/dependency"
	"github.com/shopledger/backend/internal/integration/persistence"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting ShopLedger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.ItemModel{},
		&model.SaleModel{},
		&model.SaleLineModel{},
		&model.PurchaseModel{},
		&model.PurchaseLineModel{},
		&model.CustomerModel{},
		&model.BankAccountModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Drop refresh tokens that expired while the server was down
	tokenRepo := persistence.NewTokenRepository(database.DB())
	if err := tokenRepo.DeleteExpiredTokens(context.Background()); err != nil {
		slog.Warn("Failed to clean up expired refresh tokens", "error", err)
	}

	// Initialize Redis (dashboard caching); nil disables memoization
	redisClient := cache.NewRedisClient(&cfg.Redis)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Wire dependencies and routes
	injector := dependency.NewInjector(cfg, database.DB(), redisClient, database.HealthCheck)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start the low-stock digest worker when configured
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if injector.LowStockWorker != nil {
		go injector.LowStockWorker.Start(workerCtx)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
