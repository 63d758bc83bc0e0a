// Package app wires configuration, logging, storage and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glimmerclean/cleanup-backend/internal/config"
	"github.com/glimmerclean/cleanup-backend/internal/server"
	"github.com/glimmerclean/cleanup-backend/internal/server/media"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage/sqlite"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the database, builds the media uploader and runs the
// HTTP server until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close storage", "error", err)
		}
	}()

	uploader, err := media.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		return fmt.Errorf("init media uploader: %w", err)
	}

	srv := server.New(cfg, logger, store, uploader)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	logger.Info("application stopped")

	return nil
}
