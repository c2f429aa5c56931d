// Command dbcheck verifies database connectivity with the configured
// credentials and lists the databases visible to them.
package main

import (
	"context"
	"log"

	"matcha-budget/pkg/config"
	"matcha-budget/pkg/logger"
	"matcha-budget/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rows, err := db.Query(ctx, "SELECT datname FROM pg_database ORDER BY datname")
	if err != nil {
		appLogger.Fatal("Failed to list databases", zap.Error(err))
	}
	defer rows.Close()

	var databases []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			appLogger.Fatal("Failed to scan row", zap.Error(err))
		}
		databases = append(databases, name)
	}
	if err := rows.Err(); err != nil {
		appLogger.Fatal("Failed to read rows", zap.Error(err))
	}

	appLogger.Info("Databases", zap.Strings("names", databases))
}
