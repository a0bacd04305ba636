package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig reports the loaded configuration without exposing secrets.
func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	logger.Debug("Database configuration",
		"url_present", cfg.Database.URL != "",
		"max_open_conns", cfg.Database.MaxOpenConns)
	logger.Debug("Auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
}
