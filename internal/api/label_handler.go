package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/service"
)

// LabelHandler handles label API requests.
type LabelHandler struct {
	labelService service.LabelService
	validator    *validator.Validate
}

// NewLabelHandler creates a new LabelHandler with the given dependencies.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
		validator:    validator.New(),
	}
}

// List handles GET /api/labels.
func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	labels, err := h.labelService.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithList(w, r, http.StatusOK, labels, len(labels))
}

// Get handles GET /api/labels/{id}.
func (h *LabelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	label, err := h.labelService.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, label)
}

// Create handles POST /api/labels.
func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := getPrincipalEmail(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateLabelRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	label, err := h.labelService.Create(r.Context(), req.Name, email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, label)
}

// Update handles PUT /api/labels/{id}. A label has a single mutable field,
// so the name must be present and non-null.
func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateLabelRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !req.Name.ValueSet() {
		HandleServiceError(w, r, domain.ErrEmptyLabelName)
		return
	}

	label, err := h.labelService.Update(r.Context(), id, req.Name.Value, email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, label)
}

// Delete handles DELETE /api/labels/{id}. Labels still attached to a task
// cannot be removed.
func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.labelService.Delete(r.Context(), id, email); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
