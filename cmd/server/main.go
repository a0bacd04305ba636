// Package main implements the entry point for the bookshelf API server,
// which serves the authenticated /books resource over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/bookshelf-api/internal/platform/postgres/migrations"
	"github.com/phrazzld/bookshelf-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version, reset, redo) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("bookshelf-api exited with error", redact.ErrorAttr(err))
		os.Exit(1)
	}
}

// run wires the application together. With a non-empty migrateCmd it only
// runs that migration command; otherwise it applies pending migrations and
// serves until ctx is canceled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(db, logger)
		logger.Info("executing migration command", slog.String("command", migrateCmd))
		return migrations.Run(ctx, db.DB, migrateCmd, logger)
	}

	if err := migrations.Run(ctx, db.DB, "up", logger); err != nil {
		closeDatabase(db, logger)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		closeDatabase(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
