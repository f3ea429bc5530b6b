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

// PostgresLabelStore implements the store.LabelStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLabelStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLabelStore creates a new PostgreSQL implementation of the
// LabelStore interface. If logger is nil, a default logger will be used.
func NewPostgresLabelStore(db store.DBTX, logger *slog.Logger) *PostgresLabelStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLabelStore{
		db:     db,
		logger: logger.With(slog.String("component", "label_store")),
	}
}

// Ensure PostgresLabelStore implements store.LabelStore interface
var _ store.LabelStore = (*PostgresLabelStore)(nil)

// Create implements store.LabelStore.Create
func (s *PostgresLabelStore) Create(ctx context.Context, label *domain.Label) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO labels (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, label.Name, label.CreatedAt).Scan(&label.ID)
	if err != nil {
		log.Error("failed to create label",
			slog.String("error", err.Error()),
			slog.String("name", label.Name))
		return MapError(err)
	}

	log.Info("label created",
		slog.Int64("label_id", label.ID),
		slog.String("name", label.Name))
	return nil
}

// List implements store.LabelStore.List
func (s *PostgresLabelStore) List(ctx context.Context) ([]*domain.Label, error) {
	query := `
		SELECT id, name, created_at
		FROM labels
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var labels []*domain.Label
	for rows.Next() {
		var label domain.Label
		if err := rows.Scan(&label.ID, &label.Name, &label.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		labels = append(labels, &label)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return labels, nil
}

// GetByID implements store.LabelStore.GetByID
func (s *PostgresLabelStore) GetByID(ctx context.Context, id int64) (*domain.Label, error) {
	query := `
		SELECT id, name, created_at
		FROM labels
		WHERE id = $1
	`
	var label domain.Label
	err := s.db.QueryRowContext(ctx, query, id).Scan(&label.ID, &label.Name, &label.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLabelNotFound
		}
		return nil, MapError(err)
	}
	return &label, nil
}

// GetByName implements store.LabelStore.GetByName
func (s *PostgresLabelStore) GetByName(ctx context.Context, name string) (*domain.Label, error) {
	query := `
		SELECT id, name, created_at
		FROM labels
		WHERE name = $1
	`
	var label domain.Label
	err := s.db.QueryRowContext(ctx, query, name).Scan(&label.ID, &label.Name, &label.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLabelNotFound
		}
		return nil, MapError(err)
	}
	return &label, nil
}

// GetByIDs implements store.LabelStore.GetByIDs. The result preserves no
// particular order; callers that care use the id set, not positions.
func (s *PostgresLabelStore) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Label, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, created_at
		FROM labels
		WHERE id = ANY($1)
	`
	// The pgx driver encodes []int64 as a bigint[] parameter.
	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	found := make(map[int64]bool, len(ids))
	var labels []*domain.Label
	for rows.Next() {
		var label domain.Label
		if err := rows.Scan(&label.ID, &label.Name, &label.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		found[label.ID] = true
		labels = append(labels, &label)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w: id %d", store.ErrLabelNotFound, id)
		}
	}

	return labels, nil
}

// Update implements store.LabelStore.Update
func (s *PostgresLabelStore) Update(ctx context.Context, label *domain.Label) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE labels SET name = $1 WHERE id = $2`,
		label.Name,
		label.ID,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrLabelNotFound)
}

// Delete implements store.LabelStore.Delete
func (s *PostgresLabelStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("attempted to delete label still attached to tasks",
				slog.Int64("label_id", id))
		}
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrLabelNotFound)
}

// WithTx implements store.LabelStore.WithTx
func (s *PostgresLabelStore) WithTx(tx *sql.Tx) store.LabelStore {
	return &PostgresLabelStore{
		db:     tx,
		logger: s.logger,
	}
}
