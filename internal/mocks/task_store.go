package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, task *domain.Task) error
	ListFn             func(ctx context.Context) ([]*domain.Task, error)
	ListFilteredFn     func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn           func(ctx context.Context, task *domain.Task) error
	DeleteFn           func(ctx context.Context, id int64) error
	ExistsByAssigneeFn func(ctx context.Context, userID int64) (bool, error)
	ExistsByLabelFn    func(ctx context.Context, labelID int64) (bool, error)

	// Data for the default implementation. StatusSlugs maps status ids to
	// slugs so the default ListFiltered can evaluate the status criterion.
	Tasks       map[int64]*domain.Task
	StatusSlugs map[int64]string
	NextID      int64

	// LastFilter records the filter passed to the most recent
	// ListFiltered call.
	LastFilter store.TaskFilter
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:       make(map[int64]*domain.Task),
		StatusSlugs: make(map[int64]string),
		NextID:      1,
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	return nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// ListFiltered implements the TaskStore interface
func (m *MockTaskStore) ListFiltered(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	m.LastFilter = filter

	if m.ListFilteredFn != nil {
		return m.ListFilteredFn(ctx, filter)
	}

	all, _ := m.List(ctx)
	tasks := make([]*domain.Task, 0, len(all))
	for _, task := range all {
		if m.matches(task, filter) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (m *MockTaskStore) matches(task *domain.Task, filter store.TaskFilter) bool {
	if filter.TitleCont != nil &&
		!strings.Contains(strings.ToLower(task.Name), strings.ToLower(*filter.TitleCont)) {
		return false
	}
	if filter.AssigneeID != nil &&
		(task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID) {
		return false
	}
	if filter.StatusSlug != nil && m.StatusSlugs[task.StatusID] != *filter.StatusSlug {
		return false
	}
	if filter.LabelID != nil && !task.HasLabel(*filter.LabelID) {
		return false
	}
	return true
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// ExistsByAssignee implements the TaskStore interface
func (m *MockTaskStore) ExistsByAssignee(ctx context.Context, userID int64) (bool, error) {
	if m.ExistsByAssigneeFn != nil {
		return m.ExistsByAssigneeFn(ctx, userID)
	}

	for _, task := range m.Tasks {
		if task.AssigneeID != nil && *task.AssigneeID == userID {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByLabel implements the TaskStore interface
func (m *MockTaskStore) ExistsByLabel(ctx context.Context, labelID int64) (bool, error) {
	if m.ExistsByLabelFn != nil {
		return m.ExistsByLabelFn(ctx, labelID)
	}

	for _, task := range m.Tasks {
		if task.HasLabel(labelID) {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the TaskStore interface. The mock has no transaction
// support, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// MustAdd inserts a task directly into the backing map, assigning an ID.
// It is a test setup convenience.
func (m *MockTaskStore) MustAdd(task *domain.Task) *domain.Task {
	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	return task
}
