package domain

import (
	"errors"
	"testing"
)

func TestNewTask(t *testing.T) {
	index := 5
	assignee := int64(3)

	task, err := NewTask("Fix login", &index, "Session expires too early", 2, &assignee, []int64{1, 4})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Name != "Fix login" {
		t.Errorf("Expected name %q, got %q", "Fix login", task.Name)
	}

	if task.Index == nil || *task.Index != 5 {
		t.Errorf("Expected index 5, got %v", task.Index)
	}

	if task.StatusID != 2 {
		t.Errorf("Expected status id 2, got %d", task.StatusID)
	}

	if task.AssigneeID == nil || *task.AssigneeID != 3 {
		t.Errorf("Expected assignee id 3, got %v", task.AssigneeID)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Optional fields can all be absent
	task, err = NewTask("Minimal", nil, "", 1, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Index != nil || task.AssigneeID != nil || len(task.LabelIDs) != 0 {
		t.Error("Expected optional fields to stay empty")
	}

	_, err = NewTask("", nil, "", 1, nil, nil)
	if !errors.Is(err, ErrEmptyTaskName) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskName, err)
	}

	_, err = NewTask("   ", nil, "", 1, nil, nil)
	if !errors.Is(err, ErrEmptyTaskName) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskName, err)
	}

	_, err = NewTask("No status", nil, "", 0, nil, nil)
	if !errors.Is(err, ErrMissingStatusID) {
		t.Errorf("Expected error %v, got %v", ErrMissingStatusID, err)
	}
}

func TestTaskHasLabel(t *testing.T) {
	task := Task{LabelIDs: []int64{2, 7}}

	if !task.HasLabel(7) {
		t.Error("Expected task to carry label 7")
	}

	if task.HasLabel(3) {
		t.Error("Expected task not to carry label 3")
	}

	empty := Task{}
	if empty.HasLabel(1) {
		t.Error("Expected task with no labels to carry none")
	}
}
