package main

import (
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/config"
)

// loadAppConfig loads and validates the configuration. Secrets are never
// logged, only their presence.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"database_url_set", cfg.Database.URL != "",
		"jwt_secret_set", cfg.Auth.JWTSecret != "")

	return cfg, nil
}
