package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/store"
)

// LabelService provides the label use cases, including the
// referential-integrity guard on delete.
type LabelService interface {
	// List returns every label as its external view.
	List(ctx context.Context) ([]LabelView, error)

	// Get returns the label with the given id, or store.ErrLabelNotFound.
	Get(ctx context.Context, id int64) (LabelView, error)

	// GetByName returns the label with the given name, or store.ErrLabelNotFound.
	GetByName(ctx context.Context, name string) (LabelView, error)

	// Create persists a new label.
	Create(ctx context.Context, name string, actingEmail string) (LabelView, error)

	// Update renames an existing label.
	Update(ctx context.Context, id int64, name string, actingEmail string) (LabelView, error)

	// Delete removes a label. Returns ErrLabelInUse while any task still
	// carries the label; the label and its associations stay unchanged.
	Delete(ctx context.Context, id int64, actingEmail string) error
}

// labelServiceImpl implements the LabelService interface.
type labelServiceImpl struct {
	labelStore store.LabelStore
	taskStore  store.TaskStore
	logger     *slog.Logger
}

// Verify interface compliance at compile time
var _ LabelService = (*labelServiceImpl)(nil)

// NewLabelService creates a new LabelService.
func NewLabelService(labelStore store.LabelStore, taskStore store.TaskStore, logger *slog.Logger) LabelService {
	if labelStore == nil {
		panic("labelStore cannot be nil")
	}
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &labelServiceImpl{
		labelStore: labelStore,
		taskStore:  taskStore,
		logger:     logger.With(slog.String("component", "label_service")),
	}
}

// List implements LabelService.List
func (s *labelServiceImpl) List(ctx context.Context) ([]LabelView, error) {
	labels, err := s.labelStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list labels", "error", err)
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	views := make([]LabelView, 0, len(labels))
	for _, label := range labels {
		views = append(views, NewLabelView(label))
	}
	return views, nil
}

// Get implements LabelService.Get
func (s *labelServiceImpl) Get(ctx context.Context, id int64) (LabelView, error) {
	label, err := s.labelStore.GetByID(ctx, id)
	if err != nil {
		return LabelView{}, err
	}
	return NewLabelView(label), nil
}

// GetByName implements LabelService.GetByName
func (s *labelServiceImpl) GetByName(ctx context.Context, name string) (LabelView, error) {
	label, err := s.labelStore.GetByName(ctx, name)
	if err != nil {
		return LabelView{}, err
	}
	return NewLabelView(label), nil
}

// Create implements LabelService.Create
func (s *labelServiceImpl) Create(ctx context.Context, name string, actingEmail string) (LabelView, error) {
	label, err := domain.NewLabel(name)
	if err != nil {
		return LabelView{}, err
	}

	if err := s.labelStore.Create(ctx, label); err != nil {
		s.logger.Error("failed to create label", "error", err, "name", name)
		return LabelView{}, fmt.Errorf("failed to create label: %w", err)
	}

	s.logger.Info("label created",
		"label_id", label.ID,
		"acting_email", actingEmail)

	return NewLabelView(label), nil
}

// Update implements LabelService.Update
func (s *labelServiceImpl) Update(ctx context.Context, id int64, name string, actingEmail string) (LabelView, error) {
	label, err := s.labelStore.GetByID(ctx, id)
	if err != nil {
		return LabelView{}, err
	}

	label.Name = name
	if err := label.Validate(); err != nil {
		return LabelView{}, err
	}

	if err := s.labelStore.Update(ctx, label); err != nil {
		s.logger.Error("failed to update label", "error", err, "label_id", id)
		return LabelView{}, fmt.Errorf("failed to update label: %w", err)
	}

	return NewLabelView(label), nil
}

// Delete implements LabelService.Delete
func (s *labelServiceImpl) Delete(ctx context.Context, id int64, actingEmail string) error {
	if _, err := s.labelStore.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.taskStore.ExistsByLabel(ctx, id)
	if err != nil {
		s.logger.Error("failed to check label usage", "error", err, "label_id", id)
		return fmt.Errorf("failed to check label usage: %w", err)
	}
	if inUse {
		s.logger.Debug("label delete rejected: label in use", "label_id", id)
		return ErrLabelInUse
	}

	if err := s.labelStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete label", "error", err, "label_id", id)
		return err
	}

	s.logger.Info("label deleted", "label_id", id, "acting_email", actingEmail)
	return nil
}
