package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/service"
)

// TaskStatusHandler handles task status API requests. The read endpoints
// are public so board columns can render before login.
type TaskStatusHandler struct {
	statusService service.TaskStatusService
	validator     *validator.Validate
}

// NewTaskStatusHandler creates a new TaskStatusHandler with the given dependencies.
func NewTaskStatusHandler(statusService service.TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{
		statusService: statusService,
		validator:     validator.New(),
	}
}

// List handles GET /api/task_statuses.
func (h *TaskStatusHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.statusService.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithList(w, r, http.StatusOK, statuses, len(statuses))
}

// Get handles GET /api/task_statuses/{id}.
func (h *TaskStatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	status, err := h.statusService.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// GetBySlug handles GET /api/task_statuses/slug/{slug}.
func (h *TaskStatusHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	status, err := h.statusService.GetBySlug(r.Context(), slug)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// Create handles POST /api/task_statuses.
func (h *TaskStatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := getPrincipalEmail(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	status, err := h.statusService.Create(r.Context(), service.CreateTaskStatusParams{
		Name: req.Name,
		Slug: req.Slug,
	}, email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, status)
}

// Update handles PUT /api/task_statuses/{id}.
func (h *TaskStatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	status, err := h.statusService.Update(r.Context(), id, service.UpdateTaskStatusParams{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// Delete handles DELETE /api/task_statuses/{id}.
func (h *TaskStatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.statusService.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
