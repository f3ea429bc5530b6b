package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/service"
	"github.com/taskboard-io/taskboard/internal/store"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// List handles GET /api/tasks. The optional query parameters titleCont,
// assigneeId, status, and labelId are combined with AND semantics; with no
// parameters every task is returned.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := taskFilterFromQuery(r)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var tasks []service.TaskView
	if filter.Empty() {
		tasks, err = h.taskService.List(r.Context())
	} else {
		tasks, err = h.taskService.ListFiltered(r.Context(), filter)
	}
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithList(w, r, http.StatusOK, tasks, len(tasks))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := getPrincipalEmail(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.Create(r.Context(), service.CreateTaskParams{
		Title:      req.Title,
		Index:      req.Index,
		Content:    req.Content,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
		LabelIDs:   req.LabelIDs,
	}, email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.Update(r.Context(), id, service.UpdateTaskParams{
		Title:      req.Title,
		Index:      req.Index,
		Content:    req.Content,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
		LabelIDs:   req.LabelIDs,
	}, email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id, email); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskFilterFromQuery builds a task filter from the request query string.
// Blank parameters are treated as absent.
func taskFilterFromQuery(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter
	query := r.URL.Query()

	if titleCont := query.Get("titleCont"); titleCont != "" {
		filter.TitleCont = &titleCont
	}

	if rawAssignee := query.Get("assigneeId"); rawAssignee != "" {
		assigneeID, err := strconv.ParseInt(rawAssignee, 10, 64)
		if err != nil || assigneeID <= 0 {
			return store.TaskFilter{}, fmt.Errorf("%w: assigneeId must be a positive integer", domain.ErrInvalidID)
		}
		filter.AssigneeID = &assigneeID
	}

	if status := query.Get("status"); status != "" {
		filter.StatusSlug = &status
	}

	if rawLabel := query.Get("labelId"); rawLabel != "" {
		labelID, err := strconv.ParseInt(rawLabel, 10, 64)
		if err != nil || labelID <= 0 {
			return store.TaskFilter{}, fmt.Errorf("%w: labelId must be a positive integer", domain.ErrInvalidID)
		}
		filter.LabelID = &labelID
	}

	return filter, nil
}
