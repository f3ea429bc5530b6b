// Package main implements the entry point for the taskboard API server,
// a task tracking backend with JWT authentication, task statuses, labels,
// and ownership-based authorization.
package main

import (
	"context"
	"flag"
	"log"
	"os"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version, create) and exit")
	migrationName := flag.String("name", "", "migration name, used with -migrate create")
	flag.Parse()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd, *migrationName); err != nil {
			appLogger.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
