package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/mocks"
	"github.com/taskboard-io/taskboard/internal/service"
)

// taskHandlerFixture runs the handler against a real task service backed by
// in-memory stores, with one status, user, and label pre-seeded.
type taskHandlerFixture struct {
	handler  *TaskHandler
	tasks    *mocks.MockTaskStore
	statuses *mocks.MockTaskStatusStore
	users    *mocks.MockUserStore
	labels   *mocks.MockLabelStore

	status *domain.TaskStatus
	user   *domain.User
	label  *domain.Label
}

func newTaskHandlerFixture(t *testing.T) *taskHandlerFixture {
	t.Helper()

	f := &taskHandlerFixture{
		tasks:    mocks.NewMockTaskStore(),
		statuses: mocks.NewMockTaskStatusStore(),
		users:    mocks.NewMockUserStore(),
		labels:   mocks.NewMockLabelStore(),
	}

	f.status = f.statuses.MustAdd(&domain.TaskStatus{Name: "Draft", Slug: "draft"})
	f.tasks.StatusSlugs[f.status.ID] = f.status.Slug
	f.user = f.users.MustAdd(&domain.User{Email: "owner@example.com", HashedPassword: "x"})
	f.label = f.labels.MustAdd(&domain.Label{Name: "bug"})

	svc := service.NewTaskService(nil, f.tasks, f.statuses, f.users, f.labels, nil)
	f.handler = NewTaskHandler(svc)
	return f
}

// authedRequest builds a request with a principal and optional chi path
// parameters, mirroring what the auth middleware and router would provide.
func authedRequest(t *testing.T, method, target, email string, body any, params map[string]string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if email != "" {
		ctx = shared.WithPrincipalEmail(ctx, email)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeTaskView(t *testing.T, body *bytes.Buffer) service.TaskView {
	t.Helper()
	var view service.TaskView
	require.NoError(t, json.Unmarshal(body.Bytes(), &view))
	return view
}

func TestTaskHandlerCreate(t *testing.T) {
	f := newTaskHandlerFixture(t)

	rr := httptest.NewRecorder()
	f.handler.Create(rr, authedRequest(t, http.MethodPost, "/api/tasks", "owner@example.com", CreateTaskRequest{
		Title:      "Fix login",
		Content:    "Session cookie expires early",
		Status:     "draft",
		AssigneeID: &f.user.ID,
		LabelIDs:   []int64{f.label.ID},
	}, nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	view := decodeTaskView(t, rr.Body)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "Fix login", view.Title)
	assert.Equal(t, "draft", view.Status)
	assert.Equal(t, []int64{f.label.ID}, view.LabelIDs)
}

func TestTaskHandlerCreateRequiresPrincipal(t *testing.T) {
	f := newTaskHandlerFixture(t)

	rr := httptest.NewRecorder()
	f.handler.Create(rr, authedRequest(t, http.MethodPost, "/api/tasks", "", CreateTaskRequest{
		Title:  "Fix login",
		Status: "draft",
	}, nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTaskHandlerCreateUnknownStatus(t *testing.T) {
	f := newTaskHandlerFixture(t)

	rr := httptest.NewRecorder()
	f.handler.Create(rr, authedRequest(t, http.MethodPost, "/api/tasks", "owner@example.com", CreateTaskRequest{
		Title:  "Fix login",
		Status: "no-such-slug",
	}, nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTaskHandlerListSetsTotalCount(t *testing.T) {
	f := newTaskHandlerFixture(t)
	f.tasks.MustAdd(&domain.Task{Name: "First", StatusID: f.status.ID})
	f.tasks.MustAdd(&domain.Task{Name: "Second", StatusID: f.status.ID})

	rr := httptest.NewRecorder()
	f.handler.List(rr, authedRequest(t, http.MethodGet, "/api/tasks", "owner@example.com", nil, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("X-Total-Count"))

	var views []service.TaskView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	assert.Len(t, views, 2)
}

func TestTaskHandlerListForwardsFilter(t *testing.T) {
	f := newTaskHandlerFixture(t)
	f.tasks.MustAdd(&domain.Task{Name: "Login bug", StatusID: f.status.ID, AssigneeID: &f.user.ID})

	rr := httptest.NewRecorder()
	target := "/api/tasks?titleCont=login&assigneeId=1&status=draft&labelId=2"
	f.handler.List(rr, authedRequest(t, http.MethodGet, target, "owner@example.com", nil, nil))

	require.Equal(t, http.StatusOK, rr.Code)

	filter := f.tasks.LastFilter
	require.NotNil(t, filter.TitleCont)
	assert.Equal(t, "login", *filter.TitleCont)
	require.NotNil(t, filter.AssigneeID)
	assert.Equal(t, int64(1), *filter.AssigneeID)
	require.NotNil(t, filter.StatusSlug)
	assert.Equal(t, "draft", *filter.StatusSlug)
	require.NotNil(t, filter.LabelID)
	assert.Equal(t, int64(2), *filter.LabelID)
}

func TestTaskHandlerListBadFilterValue(t *testing.T) {
	f := newTaskHandlerFixture(t)

	rr := httptest.NewRecorder()
	f.handler.List(rr, authedRequest(t, http.MethodGet, "/api/tasks?assigneeId=abc", "owner@example.com", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	f.handler.List(rr, authedRequest(t, http.MethodGet, "/api/tasks?labelId=-5", "owner@example.com", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTaskHandlerGet(t *testing.T) {
	f := newTaskHandlerFixture(t)
	task := f.tasks.MustAdd(&domain.Task{Name: "First", StatusID: f.status.ID})

	rr := httptest.NewRecorder()
	f.handler.Get(rr, authedRequest(t, http.MethodGet, "/api/tasks/1", "owner@example.com", nil, map[string]string{"id": "1"}))

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeTaskView(t, rr.Body)
	assert.Equal(t, task.ID, view.ID)

	rr = httptest.NewRecorder()
	f.handler.Get(rr, authedRequest(t, http.MethodGet, "/api/tasks/999", "owner@example.com", nil, map[string]string{"id": "999"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	f.handler.Get(rr, authedRequest(t, http.MethodGet, "/api/tasks/abc", "owner@example.com", nil, map[string]string{"id": "abc"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTaskHandlerUpdateOwnership(t *testing.T) {
	f := newTaskHandlerFixture(t)
	f.tasks.MustAdd(&domain.Task{Name: "First", StatusID: f.status.ID, AssigneeID: &f.user.ID})

	body := UpdateTaskRequest{Title: domain.PatchOf("Renamed")}

	rr := httptest.NewRecorder()
	f.handler.Update(rr, authedRequest(t, http.MethodPut, "/api/tasks/1", "intruder@example.com", body, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	f.handler.Update(rr, authedRequest(t, http.MethodPut, "/api/tasks/1", "owner@example.com", body, map[string]string{"id": "1"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Renamed", decodeTaskView(t, rr.Body).Title)
}

func TestTaskHandlerDelete(t *testing.T) {
	f := newTaskHandlerFixture(t)
	f.tasks.MustAdd(&domain.Task{Name: "First", StatusID: f.status.ID, AssigneeID: &f.user.ID})

	rr := httptest.NewRecorder()
	f.handler.Delete(rr, authedRequest(t, http.MethodDelete, "/api/tasks/1", "intruder@example.com", nil, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	f.handler.Delete(rr, authedRequest(t, http.MethodDelete, "/api/tasks/1", "owner@example.com", nil, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	f.handler.Delete(rr, authedRequest(t, http.MethodDelete, "/api/tasks/1", "owner@example.com", nil, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
