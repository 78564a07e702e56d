package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/infra/db"
	"ranch-booking/internal/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing *.sql migrations")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	applied, err := db.Migrate(context.Background(), pool, *dir)
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic // cleanup is best effort
	}
	logger.Info("migrations applied", "count", len(applied), "files", applied)
}
