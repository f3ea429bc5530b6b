package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/mocks"
	"github.com/taskboard-io/taskboard/internal/service"
)

func newTaskStatusHandlerFixture() (*TaskStatusHandler, *mocks.MockTaskStatusStore) {
	statuses := mocks.NewMockTaskStatusStore()
	svc := service.NewTaskStatusService(statuses, nil)
	return NewTaskStatusHandler(svc), statuses
}

func TestTaskStatusHandlerGetBySlug(t *testing.T) {
	handler, statuses := newTaskStatusHandlerFixture()
	statuses.MustAdd(&domain.TaskStatus{Name: "In Review", Slug: "in_review"})

	rr := httptest.NewRecorder()
	handler.GetBySlug(rr, authedRequest(t, http.MethodGet, "/api/task_statuses/slug/in_review", "", nil, map[string]string{"slug": "in_review"}))

	require.Equal(t, http.StatusOK, rr.Code)
	var view service.TaskStatusView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, "In Review", view.Name)
	assert.Equal(t, "in_review", view.Slug)
}

func TestTaskStatusHandlerGetBySlugNotFound(t *testing.T) {
	handler, _ := newTaskStatusHandlerFixture()

	rr := httptest.NewRecorder()
	handler.GetBySlug(rr, authedRequest(t, http.MethodGet, "/api/task_statuses/slug/missing", "", nil, map[string]string{"slug": "missing"}))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Task status not found", resp["error"])
}

// The slug lookup shares a prefix with the by-id route, so exercise both
// through a real router to pin the registration order.
func TestTaskStatusRoutesBySlugAndByID(t *testing.T) {
	handler, statuses := newTaskStatusHandlerFixture()
	status := statuses.MustAdd(&domain.TaskStatus{Name: "Draft", Slug: "draft"})

	r := chi.NewRouter()
	r.Get("/api/task_statuses/slug/{slug}", handler.GetBySlug)
	r.Get("/api/task_statuses/{id}", handler.Get)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/task_statuses/slug/draft", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var bySlug service.TaskStatusView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bySlug))
	assert.Equal(t, status.ID, bySlug.ID)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/task_statuses/1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var byID service.TaskStatusView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byID))
	assert.Equal(t, "draft", byID.Slug)
}
