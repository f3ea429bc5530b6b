package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard-io/taskboard/internal/api"
	apiMiddleware "github.com/taskboard-io/taskboard/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.bcrypt)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.userService)
	taskHandler := api.NewTaskHandler(app.taskService)
	statusHandler := api.NewTaskStatusHandler(app.statusService)
	labelHandler := api.NewLabelHandler(app.labelService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints: login, open registration, and status reads so
		// board columns render before authentication.
		r.Post("/login", authHandler.Login)
		r.Post("/users", userHandler.Create)
		r.Get("/task_statuses", statusHandler.List)
		r.Get("/task_statuses/slug/{slug}", statusHandler.GetBySlug)
		r.Get("/task_statuses/{id}", statusHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			// Task status endpoints
			r.Post("/task_statuses", statusHandler.Create)
			r.Put("/task_statuses/{id}", statusHandler.Update)
			r.Delete("/task_statuses/{id}", statusHandler.Delete)

			// Label endpoints
			r.Get("/labels", labelHandler.List)
			r.Get("/labels/{id}", labelHandler.Get)
			r.Post("/labels", labelHandler.Create)
			r.Put("/labels/{id}", labelHandler.Update)
			r.Delete("/labels/{id}", labelHandler.Delete)

			// Task endpoints
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
