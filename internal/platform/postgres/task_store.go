package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/platform/logger"
	"github.com/taskboard-io/taskboard/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Label associations live in the task_labels join table and are written
// together with the task row; callers run mutations inside a transaction
// via WithTx so the pair stays consistent.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (name, index, description, task_status_id, assignee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Name,
		task.Index,
		task.Description,
		task.StatusID,
		task.AssigneeID,
		task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("name", task.Name))
		return MapError(err)
	}

	if err := s.insertTaskLabels(ctx, task.ID, task.LabelIDs); err != nil {
		return err
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("name", task.Name))
	return nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return s.queryTasks(ctx, `
		SELECT id, name, index, description, task_status_id, assignee_id, created_at
		FROM tasks
		ORDER BY id
	`)
}

// ListFiltered implements store.TaskStore.ListFiltered. Each set criterion
// becomes one AND clause; the label criterion joins task_labels, so the
// result is deduplicated with DISTINCT.
func (s *PostgresTaskStore) ListFiltered(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.TitleCont != nil {
		conds = append(conds, fmt.Sprintf("t.name ILIKE %s", arg("%"+*filter.TitleCont+"%")))
	}
	if filter.AssigneeID != nil {
		conds = append(conds, fmt.Sprintf("t.assignee_id = %s", arg(*filter.AssigneeID)))
	}
	if filter.StatusSlug != nil {
		conds = append(conds, fmt.Sprintf("ts.slug = %s", arg(*filter.StatusSlug)))
	}
	if filter.LabelID != nil {
		conds = append(conds, fmt.Sprintf("tl.label_id = %s", arg(*filter.LabelID)))
	}

	query := `
		SELECT DISTINCT t.id, t.name, t.index, t.description, t.task_status_id, t.assignee_id, t.created_at
		FROM tasks t
		JOIN task_statuses ts ON ts.id = t.task_status_id
		LEFT JOIN task_labels tl ON tl.task_id = t.id
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.id"

	return s.queryTasks(ctx, query, args...)
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT id, name, index, description, task_status_id, assignee_id, created_at
		FROM tasks
		WHERE id = $1
	`
	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrTaskNotFound
		}
		return nil, err
	}

	labelIDs, err := s.taskLabelIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	task.LabelIDs = labelIDs[id]

	return task, nil
}

// Update implements store.TaskStore.Update. Label associations are replaced
// wholesale: existing join rows are deleted and the task's current id set
// is inserted.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET name = $1, index = $2, description = $3, task_status_id = $4, assignee_id = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Name,
		task.Index,
		task.Description,
		task.StatusID,
		task.AssigneeID,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM task_labels WHERE task_id = $1`, task.ID); err != nil {
		return MapError(err)
	}

	return s.insertTaskLabels(ctx, task.ID, task.LabelIDs)
}

// Delete implements store.TaskStore.Delete. Join rows go with the task via
// ON DELETE CASCADE.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// ExistsByAssignee implements store.TaskStore.ExistsByAssignee
func (s *PostgresTaskStore) ExistsByAssignee(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE assignee_id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByLabel implements store.TaskStore.ExistsByLabel
func (s *PostgresTaskStore) ExistsByLabel(ctx context.Context, labelID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM task_labels WHERE label_id = $1)`,
		labelID,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// queryTasks runs a task SELECT and attaches label ids to each task.
func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		tasks []*domain.Task
		ids   []int64
	)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
		ids = append(ids, task.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	labelIDs, err := s.taskLabelIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		task.LabelIDs = labelIDs[task.ID]
	}

	return tasks, nil
}

// taskLabelIDs fetches the label id sets for the given task ids in one query.
func (s *PostgresTaskStore) taskLabelIDs(ctx context.Context, taskIDs []int64) (map[int64][]int64, error) {
	query := `
		SELECT task_id, label_id
		FROM task_labels
		WHERE task_id = ANY($1)
		ORDER BY label_id
	`
	rows, err := s.db.QueryContext(ctx, query, taskIDs)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[int64][]int64)
	for rows.Next() {
		var taskID, labelID int64
		if err := rows.Scan(&taskID, &labelID); err != nil {
			return nil, MapError(err)
		}
		result[taskID] = append(result[taskID], labelID)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return result, nil
}

func (s *PostgresTaskStore) insertTaskLabels(ctx context.Context, taskID int64, labelIDs []int64) error {
	for _, labelID := range labelIDs {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO task_labels (task_id, label_id) VALUES ($1, $2)`,
			taskID,
			labelID,
		)
		if err != nil {
			return MapError(err)
		}
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		index       sql.NullInt32
		description sql.NullString
		assigneeID  sql.NullInt64
	)
	err := row.Scan(
		&task.ID,
		&task.Name,
		&index,
		&description,
		&task.StatusID,
		&assigneeID,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}

	if index.Valid {
		v := int(index.Int32)
		task.Index = &v
	}
	if description.Valid {
		task.Description = description.String
	}
	if assigneeID.Valid {
		v := assigneeID.Int64
		task.AssigneeID = &v
	}

	return &task, nil
}
