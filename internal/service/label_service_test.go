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

func newLabelService(labels *mocks.MockLabelStore, tasks *mocks.MockTaskStore) LabelService {
	return NewLabelService(labels, tasks, nil)
}

func TestLabelServiceCreate(t *testing.T) {
	labels := mocks.NewMockLabelStore()
	svc := newLabelService(labels, mocks.NewMockTaskStore())
	ctx := context.Background()

	view, err := svc.Create(ctx, "bug", "user@example.com")
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "bug", view.Name)

	_, err = svc.Create(ctx, "ab", "user@example.com")
	assert.ErrorIs(t, err, domain.ErrLabelNameTooShort)

	_, err = svc.Create(ctx, "bug", "user@example.com")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestLabelServiceUpdate(t *testing.T) {
	labels := mocks.NewMockLabelStore()
	svc := newLabelService(labels, mocks.NewMockTaskStore())
	ctx := context.Background()

	label := labels.MustAdd(&domain.Label{Name: "bug"})

	view, err := svc.Update(ctx, label.ID, "feature", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "feature", view.Name)

	_, err = svc.Update(ctx, label.ID, "x", "user@example.com")
	assert.ErrorIs(t, err, domain.ErrLabelNameTooShort)

	_, err = svc.Update(ctx, 999, "feature", "user@example.com")
	assert.ErrorIs(t, err, store.ErrLabelNotFound)
}

func TestLabelServiceDeleteGuard(t *testing.T) {
	labels := mocks.NewMockLabelStore()
	tasks := mocks.NewMockTaskStore()
	svc := newLabelService(labels, tasks)
	ctx := context.Background()

	used := labels.MustAdd(&domain.Label{Name: "bug"})
	unused := labels.MustAdd(&domain.Label{Name: "feature"})
	tasks.MustAdd(&domain.Task{Name: "X", StatusID: 1, LabelIDs: []int64{used.ID}})

	err := svc.Delete(ctx, used.ID, "user@example.com")
	assert.ErrorIs(t, err, ErrLabelInUse)

	// The guarded label stays in place
	_, err = labels.GetByID(ctx, used.ID)
	assert.NoError(t, err)

	err = svc.Delete(ctx, unused.ID, "user@example.com")
	require.NoError(t, err)
	_, err = labels.GetByID(ctx, unused.ID)
	assert.ErrorIs(t, err, store.ErrLabelNotFound)

	err = svc.Delete(ctx, 999, "user@example.com")
	assert.ErrorIs(t, err, store.ErrLabelNotFound)
}

func TestLabelServiceGetByName(t *testing.T) {
	labels := mocks.NewMockLabelStore()
	svc := newLabelService(labels, mocks.NewMockTaskStore())
	ctx := context.Background()

	labels.MustAdd(&domain.Label{Name: "bug"})

	view, err := svc.GetByName(ctx, "bug")
	require.NoError(t, err)
	assert.Equal(t, "bug", view.Name)

	_, err = svc.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrLabelNotFound)
}
