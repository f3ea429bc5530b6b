package main

import (
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/config"
	"github.com/taskboard-io/taskboard/internal/platform/logger"
)

// setupAppLogger builds the process-wide JSON logger at the configured
// level and installs it as the slog default.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}
