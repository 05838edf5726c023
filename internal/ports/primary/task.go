package primary

import (
	"context"
	"time"
)

// TaskService defines the primary port for task operations.
type TaskService interface {
	// CreateTask creates a task at the end of the story's order.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error)

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, taskID string) (*Task, error)

	// ListTasks lists a story's tasks in order.
	ListTasks(ctx context.Context, storyID string) ([]*Task, error)

	// Board returns a story's tasks bucketed by status, one column per status.
	Board(ctx context.Context, storyID string) ([]TaskColumn, error)

	// UpdateTask applies a partial update.
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*Task, error)

	// MoveTask sets a task's status and returns held with that task replaced.
	// On failure held is returned unchanged with the error.
	MoveTask(ctx context.Context, held []*Task, taskID, status string) ([]*Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, taskID string) error
}

// CreateTaskRequest contains parameters for creating a task.
// Times are raw input in any accepted layout.
type CreateTaskRequest struct {
	StoryID string // Required
	Title   string // Required
	Note    string
	Status  string // Optional, defaults to ICEBOX
	StartAt string
	EndAt   string // Required
}

// UpdateTaskRequest contains parameters for updating a task.
// A pointer to "" for StartAt clears it.
type UpdateTaskRequest struct {
	TaskID  string
	Title   *string
	Note    *string
	Status  *string
	StartAt *string
	EndAt   *string
	OrderNo *int
}

// TaskColumn is one board column.
type TaskColumn struct {
	Status string
	Tasks  []*Task
}

// Task represents a task entity at the port boundary.
type Task struct {
	ID        string
	StoryID   string
	Title     string
	Note      string
	Status    string
	StartAt   *time.Time
	EndAt     *time.Time
	OrderNo   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
