package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gauth-backend/internal/app"
	"gauth-backend/pkg/config"
	"gauth-backend/pkg/logger"
)

func main() {
	// Load configuration; any missing setting is fatal.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	appLogger := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize application", "error", err)
	}
	defer application.Close()

	if err := application.Handler.Start(ctx, ":"+cfg.Port); err != nil {
		appLogger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
