package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/platform/logger"
)

// TxFn runs inside a transaction. Returning nil commits; returning an
// error rolls back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction wraps fn in a transaction. Multi-statement writes, such
// as inserting a task together with its label joins, go through here so
// they land atomically. A panic inside fn rolls back and re-panics.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("rollback after panic failed",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("rollback failed",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
