package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// MockLabelStore implements store.LabelStore for testing
type MockLabelStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, label *domain.Label) error
	ListFn      func(ctx context.Context) ([]*domain.Label, error)
	GetByIDFn   func(ctx context.Context, id int64) (*domain.Label, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Label, error)
	GetByIDsFn  func(ctx context.Context, ids []int64) ([]*domain.Label, error)
	UpdateFn    func(ctx context.Context, label *domain.Label) error
	DeleteFn    func(ctx context.Context, id int64) error

	// Data for the default implementation
	Labels map[int64]*domain.Label
	NextID int64
}

// NewMockLabelStore creates a new mock store with initialized defaults
func NewMockLabelStore() *MockLabelStore {
	return &MockLabelStore{
		Labels: make(map[int64]*domain.Label),
		NextID: 1,
	}
}

// Create implements the LabelStore interface
func (m *MockLabelStore) Create(ctx context.Context, label *domain.Label) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, label)
	}

	for _, existing := range m.Labels {
		if existing.Name == label.Name {
			return store.ErrDuplicate
		}
	}

	label.ID = m.NextID
	m.NextID++
	m.Labels[label.ID] = label
	return nil
}

// List implements the LabelStore interface
func (m *MockLabelStore) List(ctx context.Context) ([]*domain.Label, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	labels := make([]*domain.Label, 0, len(m.Labels))
	for _, label := range m.Labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })
	return labels, nil
}

// GetByID implements the LabelStore interface
func (m *MockLabelStore) GetByID(ctx context.Context, id int64) (*domain.Label, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	label, exists := m.Labels[id]
	if !exists {
		return nil, store.ErrLabelNotFound
	}
	return label, nil
}

// GetByName implements the LabelStore interface
func (m *MockLabelStore) GetByName(ctx context.Context, name string) (*domain.Label, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}

	for _, label := range m.Labels {
		if label.Name == name {
			return label, nil
		}
	}
	return nil, store.ErrLabelNotFound
}

// GetByIDs implements the LabelStore interface
func (m *MockLabelStore) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Label, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}

	labels := make([]*domain.Label, 0, len(ids))
	for _, id := range ids {
		label, exists := m.Labels[id]
		if !exists {
			return nil, fmt.Errorf("%w: id %d", store.ErrLabelNotFound, id)
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// Update implements the LabelStore interface
func (m *MockLabelStore) Update(ctx context.Context, label *domain.Label) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, label)
	}

	if _, exists := m.Labels[label.ID]; !exists {
		return store.ErrLabelNotFound
	}
	m.Labels[label.ID] = label
	return nil
}

// Delete implements the LabelStore interface
func (m *MockLabelStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Labels[id]; !exists {
		return store.ErrLabelNotFound
	}
	delete(m.Labels, id)
	return nil
}

// WithTx implements the LabelStore interface. The mock has no transaction
// support, so it returns itself.
func (m *MockLabelStore) WithTx(tx *sql.Tx) store.LabelStore {
	return m
}

// MustAdd inserts a label directly into the backing map, assigning an ID.
// It is a test setup convenience.
func (m *MockLabelStore) MustAdd(label *domain.Label) *domain.Label {
	label.ID = m.NextID
	m.NextID++
	m.Labels[label.ID] = label
	return label
}
