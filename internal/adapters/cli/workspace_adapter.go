package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/core/project"
	"github.com/example/core2/internal/ports/primary"
)

// WorkspaceAdapter renders the home view.
type WorkspaceAdapter struct {
	service primary.WorkspaceService
	out     io.Writer
}

// NewWorkspaceAdapter creates a new WorkspaceAdapter with the given service.
func NewWorkspaceAdapter(service primary.WorkspaceService, out io.Writer) *WorkspaceAdapter {
	return &WorkspaceAdapter{service: service, out: out}
}

// Home prints domains, projects (the selected one starred) and the selected
// project's stories. A partial view is printed before the error is returned.
func (a *WorkspaceAdapter) Home(ctx context.Context) error {
	view, err := a.service.LoadHome(ctx)
	if view == nil {
		return fmt.Errorf("failed to load home: %w", err)
	}

	fmt.Fprintf(a.out, "\nDomains (%d)\n", len(view.Domains))
	fmt.Fprintln(a.out, divider)
	for _, d := range view.Domains {
		marker := " "
		if d.ID == view.SelectedDomainID {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-8s %s  %s\n", marker, orDash(d.Code), d.Name, d.ID)
	}
	if view.SelectedDomainID == project.NoDomain {
		fmt.Fprintln(a.out, "* (no domain)")
	}

	fmt.Fprintf(a.out, "\nProjects (%d)", len(view.Projects))
	if len(view.Projects) == 0 {
		fmt.Fprintln(a.out, "\nNo projects found")
	} else {
		writeProjectTable(a.out, view.Projects, view.SelectedProjectID)
	}

	if view.SelectedProjectID != "" {
		fmt.Fprintf(a.out, "Stories of %s (%d)\n", view.SelectedProjectID, len(view.Stories))
		fmt.Fprintln(a.out, divider)
		writeStoryLines(a.out, view.Stories)
		fmt.Fprintln(a.out)
	}

	if err != nil {
		return fmt.Errorf("home partially loaded: %w", err)
	}
	return nil
}
