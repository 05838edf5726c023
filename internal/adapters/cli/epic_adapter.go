package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/core2/internal/ports/primary"
)

// EpicAdapter translates CLI operations to EpicService calls.
type EpicAdapter struct {
	service primary.EpicService
	out     io.Writer
}

// NewEpicAdapter creates a new EpicAdapter with the given service.
func NewEpicAdapter(service primary.EpicService, out io.Writer) *EpicAdapter {
	return &EpicAdapter{service: service, out: out}
}

// Create creates an epic at the end of the project's order.
func (a *EpicAdapter) Create(ctx context.Context, projectID, title, description string) error {
	e, err := a.service.CreateEpic(ctx, primary.CreateEpicRequest{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created epic %s: %s (#%d)\n", e.ID, e.Title, e.OrderNo)
	return nil
}

// List lists a project's epics in order.
func (a *EpicAdapter) List(ctx context.Context, projectID string) error {
	epics, err := a.service.ListEpics(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list epics: %w", err)
	}
	if len(epics) == 0 {
		fmt.Fprintln(a.out, "No epics found")
		return nil
	}
	fmt.Fprintf(a.out, "\n%-5s %-36s %s\n", "ORDER", "ID", "TITLE")
	fmt.Fprintln(a.out, divider)
	for _, e := range epics {
		fmt.Fprintf(a.out, "%-5d %-36s %s\n", e.OrderNo, e.ID, e.Title)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the given fields of an epic.
func (a *EpicAdapter) Update(ctx context.Context, req primary.UpdateEpicRequest) error {
	if req.Title == nil && req.Description == nil && req.OrderNo == nil {
		return fmt.Errorf("must specify at least --title, --description or --order")
	}
	e, err := a.service.UpdateEpic(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update epic: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Epic %s updated\n", e.ID)
	return nil
}

// Delete removes an epic with its stories and their tasks. Without confirm
// nothing is deleted.
func (a *EpicAdapter) Delete(ctx context.Context, epicID string, confirm bool) error {
	e, err := a.service.GetEpic(ctx, epicID)
	if err != nil {
		return fmt.Errorf("failed to get epic: %w", err)
	}
	if !confirm {
		fmt.Fprintf(a.out, "%s deleting epic %s (%s) also deletes its stories and their tasks\n",
			color.New(color.FgYellow).Sprint("!"), e.ID, e.Title)
		fmt.Fprintln(a.out, "Re-run with --yes to confirm")
		return nil
	}

	resp, err := a.service.DeleteEpic(ctx, epicID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted epic %s: %s\n", e.ID, e.Title)
	fmt.Fprintf(a.out, "  Stories removed: %d\n", len(resp.StoryIDs))
	fmt.Fprintf(a.out, "  Tasks removed:   %d\n", len(resp.TaskIDs))
	return nil
}
