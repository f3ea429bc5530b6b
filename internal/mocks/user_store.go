package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	ListFn       func(ctx context.Context) ([]*domain.User, error)
	GetByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id int64) error

	// Data for the default implementation
	Users  map[int64]*domain.User
	NextID int64
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return store.ErrUserNotFound
	}
	for _, existing := range m.Users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	m.Users[user.ID] = user
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface. The mock has no transaction
// support, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MustAdd inserts a user directly into the backing map, assigning an ID.
// It is a test setup convenience.
func (m *MockUserStore) MustAdd(user *domain.User) *domain.User {
	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return user
}
