// Command migrate applies the pending database migrations and exits. Use it
// when the server runs with database.auto_migrate disabled, for example as a
// deploy step before the new version starts.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordsnap-backend/internal/app"
	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/migrations"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Read(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		log.Fatalf("database config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	start := time.Now()
	if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Duration("took", time.Since(start)))
}
