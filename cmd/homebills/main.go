package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/homebills/internal/admin"
	"github.com/mmynk/homebills/internal/config"
	"github.com/mmynk/homebills/internal/console"
	"github.com/mmynk/homebills/internal/storage/backend"
	"github.com/mmynk/homebills/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.SetupWithLevel(slog.LevelInfo)
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	store, err := backend.Open(cfg.Storage.Backend)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Debug("Storage initialized", "backend", cfg.Storage.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	menu := console.New(admin.NewWithStore(store), os.Stdin, os.Stdout, os.Stderr)
	if err := menu.Run(ctx); err != nil {
		slog.Error("Menu failed", "error", err)
		os.Exit(1)
	}
}
