package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("get user: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, store.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "tasks_assignee_id_fkey"}, store.ErrReferenced},
		{"not null violation", &pgconn.PgError{Code: "23502", ColumnName: "name"}, store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	// Errors without a mapping are returned unchanged.
	plain := errors.New("connection reset")
	assert.Equal(t, plain, MapError(plain))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

// fakeResult implements sql.Result with a fixed rows-affected count.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	require.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrUserNotFound))

	err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrUserNotFound)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	err = CheckRowsAffected(fakeResult{err: errors.New("driver gone")}, store.ErrUserNotFound)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)

	require.Error(t, CheckRowsAffected(nil, store.ErrUserNotFound))
}
