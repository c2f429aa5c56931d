package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"matcha-budget/internal/api"
	"matcha-budget/internal/api/handlers"
	"matcha-budget/internal/repository"
	"matcha-budget/internal/service"
	"matcha-budget/pkg/config"
	"matcha-budget/pkg/logger"

	"go.uber.org/zap"
)

// @title Matcha Budget Tracker API
// @version 0.1.0
// @description Record-keeping service for matcha expense records and cafe locations.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Matcha Budget Tracker service")

	// Initialize repositories
	expenseRepo := repository.NewExpenseRepository(appLogger)
	locationRepo := repository.NewLocationRepository(appLogger)

	// Initialize services
	expenseService := service.NewExpenseService(expenseRepo, appLogger)
	locationService := service.NewLocationService(locationRepo, appLogger)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	locationHandler := handlers.NewLocationHandler(locationService, appLogger)

	// Setup router
	app := api.SetupRouter(expenseHandler, locationHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
