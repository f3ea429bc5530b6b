package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/service/auth"
	"github.com/taskboard-io/taskboard/internal/store"
)

// CreateUserParams carries the fields for user signup.
type CreateUserParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UpdateUserParams carries the tri-state fields for a partial user update.
type UpdateUserParams struct {
	Email     domain.Patch[string]
	FirstName domain.Patch[string]
	LastName  domain.Patch[string]
	Password  domain.Patch[string]
}

// UserService provides the user use cases: signup, self-only mutation, and
// the assigned-tasks guard on delete.
type UserService interface {
	// List returns every user as its external view.
	List(ctx context.Context) ([]UserView, error)

	// Get returns the user with the given id, or store.ErrUserNotFound.
	Get(ctx context.Context, id int64) (UserView, error)

	// GetByEmail returns the full user record for the given email. It is
	// used by the login flow, which needs the password hash.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create registers a new user, hashing the password before storage.
	// No authentication is required (signup path).
	Create(ctx context.Context, params CreateUserParams) (UserView, error)

	// Update applies a partial update. Only the user themselves may mutate
	// their record; the check runs against the stored email before any
	// field changes. A present password is re-hashed.
	Update(ctx context.Context, id int64, params UpdateUserParams, actingEmail string) (UserView, error)

	// Delete removes the user under the same self-only rule. Returns
	// ErrUserHasTasks while any task names the user as assignee.
	Delete(ctx context.Context, id int64, actingEmail string) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	taskStore store.TaskStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// Verify interface compliance at compile time
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	taskStore store.TaskStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		taskStore: taskStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// List implements UserService.List
func (s *userServiceImpl) List(ctx context.Context) ([]UserView, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}
	return views, nil
}

// Get implements UserService.Get
func (s *userServiceImpl) Get(ctx context.Context, id int64) (UserView, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return UserView{}, err
	}
	return NewUserView(user), nil
}

// GetByEmail implements UserService.GetByEmail
func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userStore.GetByEmail(ctx, email)
}

// Create implements UserService.Create
func (s *userServiceImpl) Create(ctx context.Context, params CreateUserParams) (UserView, error) {
	user, err := domain.NewUser(params.Email, params.FirstName, params.LastName, params.Password)
	if err != nil {
		return UserView{}, err
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			s.logger.Error("failed to create user", "error", err, "email", params.Email)
		}
		return UserView{}, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return NewUserView(user), nil
}

// Update implements UserService.Update
func (s *userServiceImpl) Update(ctx context.Context, id int64, params UpdateUserParams, actingEmail string) (UserView, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return UserView{}, err
	}

	// Authorize against the stored email before any field changes; a user
	// cannot dodge the check by updating their email in the same request.
	if err := Authorize(actingEmail, user.Email); err != nil {
		s.logger.Debug("user update denied",
			"user_id", id,
			"acting_email", actingEmail)
		return UserView{}, err
	}

	if params.Email.Set {
		if params.Email.Null {
			return UserView{}, domain.ErrEmptyEmail
		}
		user.Email = params.Email.Value
	}

	if params.FirstName.Set {
		if params.FirstName.Null {
			user.FirstName = ""
		} else {
			user.FirstName = params.FirstName.Value
		}
	}

	if params.LastName.Set {
		if params.LastName.Null {
			user.LastName = ""
		} else {
			user.LastName = params.LastName.Value
		}
	}

	if params.Password.Set {
		if params.Password.Null {
			return UserView{}, domain.ErrEmptyPassword
		}
		user.Password = params.Password.Value
		if err := user.Validate(); err != nil {
			return UserView{}, err
		}
		hashed, err := s.hasher.Hash(params.Password.Value)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "user_id", id)
			return UserView{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
		user.Password = ""
	}

	if err := user.Validate(); err != nil {
		return UserView{}, err
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.userStore.Update(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			s.logger.Error("failed to update user", "error", err, "user_id", id)
		}
		return UserView{}, err
	}

	return NewUserView(user), nil
}

// Delete implements UserService.Delete
func (s *userServiceImpl) Delete(ctx context.Context, id int64, actingEmail string) error {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := Authorize(actingEmail, user.Email); err != nil {
		s.logger.Debug("user delete denied",
			"user_id", id,
			"acting_email", actingEmail)
		return err
	}

	assigned, err := s.taskStore.ExistsByAssignee(ctx, id)
	if err != nil {
		s.logger.Error("failed to check user assignments", "error", err, "user_id", id)
		return fmt.Errorf("failed to check user assignments: %w", err)
	}
	if assigned {
		s.logger.Debug("user delete rejected: user has assigned tasks", "user_id", id)
		return ErrUserHasTasks
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
