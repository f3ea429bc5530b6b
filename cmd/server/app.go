package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/config"
	"github.com/taskboard-io/taskboard/internal/platform/postgres"
	"github.com/taskboard-io/taskboard/internal/service"
	"github.com/taskboard-io/taskboard/internal/service/auth"
	"github.com/taskboard-io/taskboard/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	taskStore   store.TaskStore
	statusStore store.TaskStatusStore
	labelStore  store.LabelStore

	// Service interfaces
	jwtService    auth.JWTService
	bcrypt        *auth.BcryptVerifier
	userService   service.UserService
	taskService   service.TaskService
	statusService service.TaskStatusService
	labelService  service.LabelService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetimeMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// The bcrypt verifier serves both as hasher (signup, password change)
	// and verifier (login).
	app.bcrypt = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.statusStore = postgres.NewPostgresTaskStatusStore(db, logger)
	app.labelStore = postgres.NewPostgresLabelStore(db, logger)

	// Initialize services
	app.userService = service.NewUserService(app.userStore, app.taskStore, app.bcrypt, logger)
	app.taskService = service.NewTaskService(db, app.taskStore, app.statusStore, app.userStore, app.labelStore, logger)
	app.statusService = service.NewTaskStatusService(app.statusStore, logger)
	app.labelService = service.NewLabelService(app.labelStore, app.taskStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
