package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// CreateTaskStatusParams carries the fields for creating a task status.
type CreateTaskStatusParams struct {
	Name string
	Slug string
}

// UpdateTaskStatusParams carries the tri-state fields for a partial task
// status update.
type UpdateTaskStatusParams struct {
	Name domain.Patch[string]
	Slug domain.Patch[string]
}

// TaskStatusService provides the task status use cases. Statuses are
// administrative records: any authenticated principal may mutate them.
type TaskStatusService interface {
	// List returns every task status as its external view.
	List(ctx context.Context) ([]TaskStatusView, error)

	// Get returns the status with the given id, or store.ErrTaskStatusNotFound.
	Get(ctx context.Context, id int64) (TaskStatusView, error)

	// GetBySlug returns the status with the given slug, or store.ErrTaskStatusNotFound.
	GetBySlug(ctx context.Context, slug string) (TaskStatusView, error)

	// Create persists a new task status.
	Create(ctx context.Context, params CreateTaskStatusParams, actingEmail string) (TaskStatusView, error)

	// Update applies a partial update to the status.
	Update(ctx context.Context, id int64, params UpdateTaskStatusParams) (TaskStatusView, error)

	// Delete removes the status. A status still referenced by tasks makes
	// the delete fail with store.ErrReferenced.
	Delete(ctx context.Context, id int64) error
}

// taskStatusServiceImpl implements the TaskStatusService interface.
type taskStatusServiceImpl struct {
	statusStore store.TaskStatusStore
	logger      *slog.Logger
}

// Verify interface compliance at compile time
var _ TaskStatusService = (*taskStatusServiceImpl)(nil)

// NewTaskStatusService creates a new TaskStatusService.
func NewTaskStatusService(statusStore store.TaskStatusStore, logger *slog.Logger) TaskStatusService {
	if statusStore == nil {
		panic("statusStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskStatusServiceImpl{
		statusStore: statusStore,
		logger:      logger.With(slog.String("component", "task_status_service")),
	}
}

// List implements TaskStatusService.List
func (s *taskStatusServiceImpl) List(ctx context.Context) ([]TaskStatusView, error) {
	statuses, err := s.statusStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list task statuses", "error", err)
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}

	views := make([]TaskStatusView, 0, len(statuses))
	for _, status := range statuses {
		views = append(views, NewTaskStatusView(status))
	}
	return views, nil
}

// Get implements TaskStatusService.Get
func (s *taskStatusServiceImpl) Get(ctx context.Context, id int64) (TaskStatusView, error) {
	status, err := s.statusStore.GetByID(ctx, id)
	if err != nil {
		return TaskStatusView{}, err
	}
	return NewTaskStatusView(status), nil
}

// GetBySlug implements TaskStatusService.GetBySlug
func (s *taskStatusServiceImpl) GetBySlug(ctx context.Context, slug string) (TaskStatusView, error) {
	status, err := s.statusStore.GetBySlug(ctx, slug)
	if err != nil {
		return TaskStatusView{}, err
	}
	return NewTaskStatusView(status), nil
}

// Create implements TaskStatusService.Create
func (s *taskStatusServiceImpl) Create(ctx context.Context, params CreateTaskStatusParams, actingEmail string) (TaskStatusView, error) {
	status, err := domain.NewTaskStatus(params.Name, params.Slug)
	if err != nil {
		return TaskStatusView{}, err
	}

	if err := s.statusStore.Create(ctx, status); err != nil {
		s.logger.Error("failed to create task status", "error", err, "slug", params.Slug)
		return TaskStatusView{}, fmt.Errorf("failed to create task status: %w", err)
	}

	s.logger.Info("task status created",
		"status_id", status.ID,
		"slug", status.Slug,
		"acting_email", actingEmail)

	return NewTaskStatusView(status), nil
}

// Update implements TaskStatusService.Update
func (s *taskStatusServiceImpl) Update(ctx context.Context, id int64, params UpdateTaskStatusParams) (TaskStatusView, error) {
	status, err := s.statusStore.GetByID(ctx, id)
	if err != nil {
		return TaskStatusView{}, err
	}

	if params.Name.Set {
		if params.Name.Null {
			return TaskStatusView{}, domain.ErrEmptyStatusName
		}
		status.Name = params.Name.Value
	}

	if params.Slug.Set {
		if params.Slug.Null {
			return TaskStatusView{}, domain.ErrEmptyStatusSlug
		}
		status.Slug = params.Slug.Value
	}

	if err := status.Validate(); err != nil {
		return TaskStatusView{}, err
	}

	if err := s.statusStore.Update(ctx, status); err != nil {
		s.logger.Error("failed to update task status", "error", err, "status_id", id)
		return TaskStatusView{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return NewTaskStatusView(status), nil
}

// Delete implements TaskStatusService.Delete
func (s *taskStatusServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.statusStore.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete task status", "error", err, "status_id", id)
		}
		return err
	}

	s.logger.Info("task status deleted", "status_id", id)
	return nil
}
