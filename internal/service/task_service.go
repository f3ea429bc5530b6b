package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// CreateTaskParams carries the fields for creating a task. Status is the
// slug of an existing task status; AssigneeID and LabelIDs reference
// existing records and are resolved before the task is persisted.
type CreateTaskParams struct {
	Title      string
	Index      *int
	Content    string
	Status     string
	AssigneeID *int64
	LabelIDs   []int64
}

// UpdateTaskParams carries the tri-state fields for a partial task update.
// An unset field leaves the stored value unchanged; an explicit null clears
// the field where clearing is meaningful.
type UpdateTaskParams struct {
	Title      domain.Patch[string]
	Index      domain.Patch[int]
	Content    domain.Patch[string]
	Status     domain.Patch[string]
	AssigneeID domain.Patch[int64]
	LabelIDs   domain.Patch[[]int64]
}

// TaskService provides the task use cases: listing, filtering, and
// authorization-aware mutation.
type TaskService interface {
	// List returns every task as its external view.
	List(ctx context.Context) ([]TaskView, error)

	// ListFiltered returns the tasks matching every set filter criterion.
	// With an empty filter it is equivalent to List.
	ListFiltered(ctx context.Context, filter store.TaskFilter) ([]TaskView, error)

	// Get returns the task with the given id, or store.ErrTaskNotFound.
	Get(ctx context.Context, id int64) (TaskView, error)

	// Create resolves the referenced status, assignee, and labels, then
	// persists a new task. Any authenticated principal may create tasks.
	Create(ctx context.Context, params CreateTaskParams, actingEmail string) (TaskView, error)

	// Update applies a partial update to the task. When the task has an
	// assignee, only the principal matching the assignee's email may update
	// it; returns ErrForbidden otherwise.
	Update(ctx context.Context, id int64, params UpdateTaskParams, actingEmail string) (TaskView, error)

	// Delete removes the task under the same authorization rule as Update.
	Delete(ctx context.Context, id int64, actingEmail string) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	db          *sql.DB
	taskStore   store.TaskStore
	statusStore store.TaskStatusStore
	userStore   store.UserStore
	labelStore  store.LabelStore
	logger      *slog.Logger
}

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(
	db *sql.DB,
	taskStore store.TaskStore,
	statusStore store.TaskStatusStore,
	userStore store.UserStore,
	labelStore store.LabelStore,
	logger *slog.Logger,
) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if statusStore == nil {
		panic("statusStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if labelStore == nil {
		panic("labelStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		db:          db,
		taskStore:   taskStore,
		statusStore: statusStore,
		userStore:   userStore,
		labelStore:  labelStore,
		logger:      logger.With(slog.String("component", "task_service")),
	}
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context) ([]TaskView, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return s.toViews(ctx, tasks)
}

// ListFiltered implements TaskService.ListFiltered
func (s *taskServiceImpl) ListFiltered(ctx context.Context, filter store.TaskFilter) ([]TaskView, error) {
	tasks, err := s.taskStore.ListFiltered(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list filtered tasks", "error", err)
		return nil, fmt.Errorf("failed to list filtered tasks: %w", err)
	}

	return s.toViews(ctx, tasks)
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (TaskView, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to get task", "error", err, "task_id", id)
		}
		return TaskView{}, err
	}

	return s.toView(ctx, task)
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, params CreateTaskParams, actingEmail string) (TaskView, error) {
	status, err := s.statusStore.GetBySlug(ctx, params.Status)
	if err != nil {
		return TaskView{}, err
	}

	if params.AssigneeID != nil {
		if _, err := s.userStore.GetByID(ctx, *params.AssigneeID); err != nil {
			return TaskView{}, err
		}
	}

	if len(params.LabelIDs) > 0 {
		if _, err := s.labelStore.GetByIDs(ctx, params.LabelIDs); err != nil {
			return TaskView{}, err
		}
	}

	task, err := domain.NewTask(
		params.Title,
		params.Index,
		params.Content,
		status.ID,
		params.AssigneeID,
		params.LabelIDs,
	)
	if err != nil {
		return TaskView{}, err
	}

	err = s.withTaskStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		return ts.Create(ctx, task)
	})
	if err != nil {
		s.logger.Error("failed to create task", "error", err, "name", params.Title)
		return TaskView{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"acting_email", actingEmail)

	return NewTaskView(task, status.Slug), nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(ctx context.Context, id int64, params UpdateTaskParams, actingEmail string) (TaskView, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return TaskView{}, err
	}

	// Ownership gate: an assigned task is mutable only by its assignee.
	if task.AssigneeID != nil {
		assignee, err := s.userStore.GetByID(ctx, *task.AssigneeID)
		if err != nil {
			return TaskView{}, err
		}
		if err := Authorize(actingEmail, assignee.Email); err != nil {
			s.logger.Debug("task update denied",
				"task_id", id,
				"acting_email", actingEmail)
			return TaskView{}, err
		}
	}

	if params.Title.Set {
		if params.Title.Null {
			return TaskView{}, domain.ErrEmptyTaskName
		}
		task.Name = params.Title.Value
	}

	if params.Content.Set {
		if params.Content.Null {
			task.Description = ""
		} else {
			task.Description = params.Content.Value
		}
	}

	if params.Index.Set {
		if params.Index.Null {
			task.Index = nil
		} else {
			v := params.Index.Value
			task.Index = &v
		}
	}

	if params.Status.Set {
		if params.Status.Null {
			return TaskView{}, domain.ErrMissingStatusID
		}
		status, err := s.statusStore.GetBySlug(ctx, params.Status.Value)
		if err != nil {
			return TaskView{}, err
		}
		task.StatusID = status.ID
	}

	if params.AssigneeID.Set {
		if params.AssigneeID.Null {
			task.AssigneeID = nil
		} else {
			assignee, err := s.userStore.GetByID(ctx, params.AssigneeID.Value)
			if err != nil {
				return TaskView{}, err
			}
			task.AssigneeID = &assignee.ID
		}
	}

	if params.LabelIDs.Set {
		if params.LabelIDs.Null {
			task.LabelIDs = nil
		} else {
			if len(params.LabelIDs.Value) > 0 {
				if _, err := s.labelStore.GetByIDs(ctx, params.LabelIDs.Value); err != nil {
					return TaskView{}, err
				}
			}
			task.LabelIDs = params.LabelIDs.Value
		}
	}

	if err := task.Validate(); err != nil {
		return TaskView{}, err
	}

	err = s.withTaskStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		return ts.Update(ctx, task)
	})
	if err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", id)
		return TaskView{}, fmt.Errorf("failed to update task: %w", err)
	}

	return s.toView(ctx, task)
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id int64, actingEmail string) error {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if task.AssigneeID != nil {
		assignee, err := s.userStore.GetByID(ctx, *task.AssigneeID)
		if err != nil {
			return err
		}
		if err := Authorize(actingEmail, assignee.Email); err != nil {
			s.logger.Debug("task delete denied",
				"task_id", id,
				"acting_email", actingEmail)
			return err
		}
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id)
		return err
	}

	s.logger.Info("task deleted", "task_id", id, "acting_email", actingEmail)
	return nil
}

// withTaskStore runs fn against a transaction-scoped task store when a
// database handle is configured, so a task row and its label join rows are
// written atomically.
func (s *taskServiceImpl) withTaskStore(ctx context.Context, fn func(ctx context.Context, ts store.TaskStore) error) error {
	if s.db == nil {
		return fn(ctx, s.taskStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.taskStore.WithTx(tx))
	})
}

// toView resolves the status slug for a single task.
func (s *taskServiceImpl) toView(ctx context.Context, task *domain.Task) (TaskView, error) {
	status, err := s.statusStore.GetByID(ctx, task.StatusID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Every persisted task has a valid status reference; a miss
			// here means the store broke that invariant.
			return TaskView{}, fmt.Errorf("task %d references missing status %d: %w", task.ID, task.StatusID, err)
		}
		return TaskView{}, err
	}

	return NewTaskView(task, status.Slug), nil
}

// toViews resolves status slugs for a task list, fetching each referenced
// status once.
func (s *taskServiceImpl) toViews(ctx context.Context, tasks []*domain.Task) ([]TaskView, error) {
	slugs := make(map[int64]string)
	views := make([]TaskView, 0, len(tasks))

	for _, task := range tasks {
		slug, ok := slugs[task.StatusID]
		if !ok {
			status, err := s.statusStore.GetByID(ctx, task.StatusID)
			if err != nil {
				return nil, fmt.Errorf("task %d references missing status %d: %w", task.ID, task.StatusID, err)
			}
			slug = status.Slug
			slugs[task.StatusID] = slug
		}
		views = append(views, NewTaskView(task, slug))
	}

	return views, nil
}
