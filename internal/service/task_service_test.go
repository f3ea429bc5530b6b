package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/mocks"
	"github.com/taskboard-io/taskboard/internal/store"
)

// taskFixture wires a task service against in-memory stores with one
// status, one user, and one label pre-seeded.
type taskFixture struct {
	service  TaskService
	tasks    *mocks.MockTaskStore
	statuses *mocks.MockTaskStatusStore
	users    *mocks.MockUserStore
	labels   *mocks.MockLabelStore

	status *domain.TaskStatus
	user   *domain.User
	label  *domain.Label
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()

	f := &taskFixture{
		tasks:    mocks.NewMockTaskStore(),
		statuses: mocks.NewMockTaskStatusStore(),
		users:    mocks.NewMockUserStore(),
		labels:   mocks.NewMockLabelStore(),
	}

	f.status = f.statuses.MustAdd(&domain.TaskStatus{Name: "Draft", Slug: "draft"})
	f.tasks.StatusSlugs[f.status.ID] = f.status.Slug
	f.user = f.users.MustAdd(&domain.User{Email: "owner@example.com", HashedPassword: "x"})
	f.label = f.labels.MustAdd(&domain.Label{Name: "bug"})

	f.service = NewTaskService(nil, f.tasks, f.statuses, f.users, f.labels, nil)
	return f
}

func (f *taskFixture) addStatus(t *testing.T, name, slug string) *domain.TaskStatus {
	t.Helper()
	status := f.statuses.MustAdd(&domain.TaskStatus{Name: name, Slug: slug})
	f.tasks.StatusSlugs[status.ID] = status.Slug
	return status
}

func TestTaskServiceCreate(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	index := 10
	view, err := f.service.Create(ctx, CreateTaskParams{
		Title:      "Fix login",
		Index:      &index,
		Content:    "Session expires too early",
		Status:     "draft",
		AssigneeID: &f.user.ID,
		LabelIDs:   []int64{f.label.ID},
	}, "owner@example.com")
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, "Fix login", view.Title)
	assert.Equal(t, "draft", view.Status)
	assert.Equal(t, []int64{f.label.ID}, view.LabelIDs)
	require.NotNil(t, view.AssigneeID)
	assert.Equal(t, f.user.ID, *view.AssigneeID)

	stored, err := f.tasks.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, f.status.ID, stored.StatusID)
}

func TestTaskServiceCreateUnknownReferences(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, CreateTaskParams{Title: "X", Status: "nope"}, "")
	assert.ErrorIs(t, err, store.ErrTaskStatusNotFound)

	missingUser := int64(99)
	_, err = f.service.Create(ctx, CreateTaskParams{Title: "X", Status: "draft", AssigneeID: &missingUser}, "")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = f.service.Create(ctx, CreateTaskParams{Title: "X", Status: "draft", LabelIDs: []int64{42}}, "")
	assert.ErrorIs(t, err, store.ErrLabelNotFound)

	_, err = f.service.Create(ctx, CreateTaskParams{Title: "", Status: "draft"}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)
}

func TestTaskServiceUpdateOwnership(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	assigned := f.tasks.MustAdd(&domain.Task{
		Name:       "Assigned",
		StatusID:   f.status.ID,
		AssigneeID: &f.user.ID,
	})
	unassigned := f.tasks.MustAdd(&domain.Task{
		Name:     "Unassigned",
		StatusID: f.status.ID,
	})

	// A non-assignee may not touch an assigned task
	_, err := f.service.Update(ctx, assigned.ID, UpdateTaskParams{
		Title: domain.PatchOf("Stolen"),
	}, "intruder@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	// The assignee may
	view, err := f.service.Update(ctx, assigned.ID, UpdateTaskParams{
		Title: domain.PatchOf("Renamed"),
	}, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Title)

	// Anyone authenticated may touch an unassigned task
	view, err = f.service.Update(ctx, unassigned.ID, UpdateTaskParams{
		Title: domain.PatchOf("Claimed"),
	}, "intruder@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Claimed", view.Title)
}

func TestTaskServiceUpdatePartial(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	index := 3
	task := f.tasks.MustAdd(&domain.Task{
		Name:        "Original",
		Index:       &index,
		Description: "Original content",
		StatusID:    f.status.ID,
		AssigneeID:  &f.user.ID,
		LabelIDs:    []int64{f.label.ID},
	})

	// Absent fields leave everything untouched
	view, err := f.service.Update(ctx, task.ID, UpdateTaskParams{}, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Original", view.Title)
	assert.Equal(t, "Original content", view.Content)
	require.NotNil(t, view.Index)
	assert.Equal(t, 3, *view.Index)
	require.NotNil(t, view.AssigneeID)
	assert.Equal(t, []int64{f.label.ID}, view.LabelIDs)

	// Explicit nulls clear the optional fields
	view, err = f.service.Update(ctx, task.ID, UpdateTaskParams{
		Index:      domain.Patch[int]{Set: true, Null: true},
		Content:    domain.Patch[string]{Set: true, Null: true},
		AssigneeID: domain.Patch[int64]{Set: true, Null: true},
		LabelIDs:   domain.Patch[[]int64]{Set: true, Null: true},
	}, "owner@example.com")
	require.NoError(t, err)
	assert.Nil(t, view.Index)
	assert.Empty(t, view.Content)
	assert.Nil(t, view.AssigneeID)
	assert.Empty(t, view.LabelIDs)

	// Null on required fields is rejected
	_, err = f.service.Update(ctx, task.ID, UpdateTaskParams{
		Title: domain.Patch[string]{Set: true, Null: true},
	}, "owner@example.com")
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)

	_, err = f.service.Update(ctx, task.ID, UpdateTaskParams{
		Status: domain.Patch[string]{Set: true, Null: true},
	}, "owner@example.com")
	assert.ErrorIs(t, err, domain.ErrMissingStatusID)
}

func TestTaskServiceUpdateStatusSlug(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	published := f.addStatus(t, "Published", "published")
	task := f.tasks.MustAdd(&domain.Task{Name: "X", StatusID: f.status.ID})

	view, err := f.service.Update(ctx, task.ID, UpdateTaskParams{
		Status: domain.PatchOf("published"),
	}, "anyone@example.com")
	require.NoError(t, err)
	assert.Equal(t, "published", view.Status)

	stored, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, published.ID, stored.StatusID)

	_, err = f.service.Update(ctx, task.ID, UpdateTaskParams{
		Status: domain.PatchOf("missing"),
	}, "anyone@example.com")
	assert.ErrorIs(t, err, store.ErrTaskStatusNotFound)
}

func TestTaskServiceDelete(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	assigned := f.tasks.MustAdd(&domain.Task{
		Name:       "Assigned",
		StatusID:   f.status.ID,
		AssigneeID: &f.user.ID,
	})

	err := f.service.Delete(ctx, assigned.ID, "intruder@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.service.Delete(ctx, assigned.ID, "owner@example.com")
	require.NoError(t, err)

	_, err = f.tasks.GetByID(ctx, assigned.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = f.service.Delete(ctx, 999, "owner@example.com")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskServiceListFiltered(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	published := f.addStatus(t, "Published", "published")
	other := f.users.MustAdd(&domain.User{Email: "other@example.com", HashedPassword: "x"})

	f.tasks.MustAdd(&domain.Task{Name: "Fix login page", StatusID: f.status.ID, AssigneeID: &f.user.ID, LabelIDs: []int64{f.label.ID}})
	f.tasks.MustAdd(&domain.Task{Name: "Write docs", StatusID: published.ID, AssigneeID: &other.ID})
	f.tasks.MustAdd(&domain.Task{Name: "Login audit", StatusID: published.ID})

	title := "login"
	views, err := f.service.ListFiltered(ctx, store.TaskFilter{TitleCont: &title})
	require.NoError(t, err)
	assert.Len(t, views, 2)

	slug := "published"
	views, err = f.service.ListFiltered(ctx, store.TaskFilter{TitleCont: &title, StatusSlug: &slug})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Login audit", views[0].Title)

	views, err = f.service.ListFiltered(ctx, store.TaskFilter{LabelID: &f.label.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Fix login page", views[0].Title)

	views, err = f.service.ListFiltered(ctx, store.TaskFilter{AssigneeID: &other.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Write docs", views[0].Title)
}

func TestTaskServiceGet(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := f.tasks.MustAdd(&domain.Task{Name: "X", StatusID: f.status.ID})

	view, err := f.service.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", view.Status)

	_, err = f.service.Get(ctx, 999)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
