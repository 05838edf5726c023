package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/core2/internal/ports/primary"
)

// TaskAdapter translates CLI operations to TaskService calls.
type TaskAdapter struct {
	service primary.TaskService
	out     io.Writer
}

// NewTaskAdapter creates a new TaskAdapter with the given service.
func NewTaskAdapter(service primary.TaskService, out io.Writer) *TaskAdapter {
	return &TaskAdapter{service: service, out: out}
}

// Create creates a task at the end of its story's order.
func (a *TaskAdapter) Create(ctx context.Context, req primary.CreateTaskRequest) error {
	t, err := a.service.CreateTask(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created task %s: %s\n", t.ID, t.Title)
	fmt.Fprintf(a.out, "  Status: %s  Due: %s\n", badge(t.Status, 0), formatOptional(t.EndAt))
	return nil
}

// Board prints the story's tasks bucketed by status.
func (a *TaskAdapter) Board(ctx context.Context, storyID string) error {
	columns, err := a.service.Board(ctx, storyID)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	for _, col := range columns {
		count := color.New(color.Bold).Sprintf("(%d)", len(col.Tasks))
		fmt.Fprintf(a.out, "\n%s %s\n", badge(col.Status, 0), count)
		fmt.Fprintln(a.out, divider)
		if len(col.Tasks) == 0 {
			fmt.Fprintln(a.out, "  (empty)")
			continue
		}
		for _, t := range col.Tasks {
			fmt.Fprintf(a.out, "  #%-3d %-36s %s  due %s\n", t.OrderNo, t.ID, t.Title, formatOptional(t.EndAt))
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays a single task.
func (a *TaskAdapter) Show(ctx context.Context, taskID string) error {
	t, err := a.service.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	fmt.Fprintf(a.out, "\nTask:   %s\n", t.ID)
	fmt.Fprintf(a.out, "Title:  %s\n", t.Title)
	fmt.Fprintf(a.out, "Status: %s\n", badge(t.Status, 0))
	fmt.Fprintf(a.out, "Story:  %s\n", t.StoryID)
	fmt.Fprintf(a.out, "Order:  %d\n", t.OrderNo)
	fmt.Fprintf(a.out, "Start:  %s\n", formatOptional(t.StartAt))
	fmt.Fprintf(a.out, "Due:    %s\n", formatOptional(t.EndAt))
	if t.Note != "" {
		fmt.Fprintf(a.out, "Note:   %s\n", t.Note)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the given fields of a task.
func (a *TaskAdapter) Update(ctx context.Context, req primary.UpdateTaskRequest) error {
	t, err := a.service.UpdateTask(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Task %s updated\n", t.ID)
	return nil
}

// Move changes a task's status. The story's current tasks form the held
// board the move is applied to.
func (a *TaskAdapter) Move(ctx context.Context, taskID, status string) error {
	t, err := a.service.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	held, err := a.service.ListTasks(ctx, t.StoryID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	if _, err := a.service.MoveTask(ctx, held, taskID, status); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Task %s moved %s → %s\n", taskID, t.Status, badge(status, 0))
	return nil
}

// Delete deletes a task.
func (a *TaskAdapter) Delete(ctx context.Context, taskID string) error {
	if err := a.service.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted task %s\n", taskID)
	return nil
}
