package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/ports/primary"
)

// TestLogAdapter translates CLI operations to TestLogService calls.
type TestLogAdapter struct {
	service primary.TestLogService
	out     io.Writer
}

// NewTestLogAdapter creates a new TestLogAdapter with the given service.
func NewTestLogAdapter(service primary.TestLogService, out io.Writer) *TestLogAdapter {
	return &TestLogAdapter{service: service, out: out}
}

// Create records a test note against a story.
func (a *TestLogAdapter) Create(ctx context.Context, req primary.CreateTestLogRequest) error {
	l, err := a.service.CreateTestLog(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created test log %s for story %s\n", l.ID, l.StoryID)
	return nil
}

// List lists a story's test logs.
func (a *TestLogAdapter) List(ctx context.Context, storyID string) error {
	logs, err := a.service.ListTestLogs(ctx, storyID)
	if err != nil {
		return fmt.Errorf("failed to list test logs: %w", err)
	}
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No test logs found")
		return nil
	}
	fmt.Fprintf(a.out, "\n%-36s %-16s %-36s %s\n", "ID", "CREATED", "TASK", "NOTES")
	fmt.Fprintln(a.out, divider)
	for _, l := range logs {
		fmt.Fprintf(a.out, "%-36s %-16s %-36s %s\n", l.ID, formatTime(l.CreatedAt), orDash(l.TaskID), l.Notes)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the given fields of a test log.
func (a *TestLogAdapter) Update(ctx context.Context, req primary.UpdateTestLogRequest) error {
	if req.TaskID == nil && req.Notes == nil {
		return fmt.Errorf("must specify at least --task or --notes")
	}
	l, err := a.service.UpdateTestLog(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update test log: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Test log %s updated\n", l.ID)
	return nil
}

// Delete deletes a test log.
func (a *TestLogAdapter) Delete(ctx context.Context, testLogID string) error {
	if err := a.service.DeleteTestLog(ctx, testLogID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted test log %s\n", testLogID)
	return nil
}
