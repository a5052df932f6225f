// Package main is the entry point for the Ledgerbook API server.
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

	"github.com/ledgerbook/backend/config"
	"github.com/ledgerbook/backend/internal/application/usecase/auth"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/infra/cache"
	"github.com/ledgerbook/backend/internal/infra/db"
	"github.com/ledgerbook/backend/internal/infra/server/router"
	"github.com/ledgerbook/backend/internal/integration/adapters"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerbook/backend/internal/integration/persistence"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
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

	slog.Info("Starting Ledgerbook API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
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
	if err := database.AutoMigrate(&model.UserModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create health controller with database health checker
	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create ledger use cases, shared by the expense and revenue controllers
	listEntriesUseCase := ledger.NewListEntriesUseCase(userRepo)
	listMonthUseCase := ledger.NewListMonthEntriesUseCase(userRepo)
	getEntryUseCase := ledger.NewGetEntryUseCase(userRepo)
	createEntryUseCase := ledger.NewCreateEntryUseCase(userRepo)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(userRepo)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(userRepo)

	// Create controllers
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	expenseController := controller.NewExpenseController(
		listEntriesUseCase,
		listMonthUseCase,
		getEntryUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)
	revenueController := controller.NewRevenueController(
		listEntriesUseCase,
		listMonthUseCase,
		getEntryUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	// Create middleware. The login rate limiter needs Redis; without it the
	// API still serves, just without login throttling.
	var loginRateLimiter *middleware.RateLimiter
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, login rate limiting disabled", "error", err)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		revenueController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
