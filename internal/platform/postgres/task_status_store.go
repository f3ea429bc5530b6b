package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/platform/logger"
	"github.com/taskboard-io/taskboard/internal/store"
)

// PostgresTaskStatusStore implements the store.TaskStatusStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStatusStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStatusStore creates a new PostgreSQL implementation of the
// TaskStatusStore interface. If logger is nil, a default logger will be used.
func NewPostgresTaskStatusStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStatusStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStatusStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_status_store")),
	}
}

// Ensure PostgresTaskStatusStore implements store.TaskStatusStore interface
var _ store.TaskStatusStore = (*PostgresTaskStatusStore)(nil)

// Create implements store.TaskStatusStore.Create
func (s *PostgresTaskStatusStore) Create(ctx context.Context, status *domain.TaskStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO task_statuses (name, slug, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, status.Name, status.Slug, status.CreatedAt).
		Scan(&status.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("attempted to create task status with existing slug",
				slog.String("slug", status.Slug))
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		log.Error("failed to create task status",
			slog.String("error", err.Error()),
			slog.String("slug", status.Slug))
		return MapError(err)
	}

	log.Info("task status created",
		slog.Int64("status_id", status.ID),
		slog.String("slug", status.Slug))
	return nil
}

// List implements store.TaskStatusStore.List
func (s *PostgresTaskStatusStore) List(ctx context.Context) ([]*domain.TaskStatus, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM task_statuses
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var statuses []*domain.TaskStatus
	for rows.Next() {
		var status domain.TaskStatus
		if err := rows.Scan(&status.ID, &status.Name, &status.Slug, &status.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		statuses = append(statuses, &status)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return statuses, nil
}

// GetByID implements store.TaskStatusStore.GetByID
func (s *PostgresTaskStatusStore) GetByID(ctx context.Context, id int64) (*domain.TaskStatus, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM task_statuses
		WHERE id = $1
	`
	var status domain.TaskStatus
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&status.ID, &status.Name, &status.Slug, &status.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskStatusNotFound
		}
		return nil, MapError(err)
	}
	return &status, nil
}

// GetBySlug implements store.TaskStatusStore.GetBySlug
func (s *PostgresTaskStatusStore) GetBySlug(ctx context.Context, slug string) (*domain.TaskStatus, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM task_statuses
		WHERE slug = $1
	`
	var status domain.TaskStatus
	err := s.db.QueryRowContext(ctx, query, slug).
		Scan(&status.ID, &status.Name, &status.Slug, &status.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskStatusNotFound
		}
		return nil, MapError(err)
	}
	return &status, nil
}

// Update implements store.TaskStatusStore.Update
func (s *PostgresTaskStatusStore) Update(ctx context.Context, status *domain.TaskStatus) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE task_statuses SET name = $1, slug = $2 WHERE id = $3`,
		status.Name,
		status.Slug,
		status.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskStatusNotFound)
}

// Delete implements store.TaskStatusStore.Delete
func (s *PostgresTaskStatusStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM task_statuses WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("attempted to delete task status still referenced by tasks",
				slog.Int64("status_id", id))
		}
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskStatusNotFound)
}

// WithTx implements store.TaskStatusStore.WithTx
func (s *PostgresTaskStatusStore) WithTx(tx *sql.Tx) store.TaskStatusStore {
	return &PostgresTaskStatusStore{
		db:     tx,
		logger: s.logger,
	}
}
