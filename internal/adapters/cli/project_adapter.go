package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/core/story"
	"github.com/example/core2/internal/ports/primary"
)

// ProjectAdapter translates CLI operations to ProjectService calls.
type ProjectAdapter struct {
	service primary.ProjectService
	out     io.Writer
}

// NewProjectAdapter creates a new ProjectAdapter with the given service.
func NewProjectAdapter(service primary.ProjectService, out io.Writer) *ProjectAdapter {
	return &ProjectAdapter{service: service, out: out}
}

// Create creates a project and its analysis document.
func (a *ProjectAdapter) Create(ctx context.Context, req primary.CreateProjectRequest) error {
	resp, err := a.service.CreateProject(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created project %s: %s\n", resp.ProjectID, resp.Project.Name)
	fmt.Fprintf(a.out, "  Type: %s  Status: %s\n", resp.Project.Type, badge(resp.Project.Status, 0))
	if resp.Analysis != nil {
		fmt.Fprintf(a.out, "  Analysis: %s\n", resp.Analysis.ID)
	}
	return nil
}

// List lists projects matching the filters.
func (a *ProjectAdapter) List(ctx context.Context, filters primary.ProjectFilters) error {
	projects, err := a.service.ListProjects(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects found")
		return nil
	}
	writeProjectTable(a.out, projects, "")
	return nil
}

func writeProjectTable(out io.Writer, projects []*primary.Project, selected string) {
	fmt.Fprintf(out, "\n  %-36s %-10s %-9s %s\n", "ID", "STATUS", "TYPE", "NAME")
	fmt.Fprintln(out, divider)
	for _, p := range projects {
		marker := " "
		if p.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-36s %s %-9s %s\n", marker, p.ID, badge(p.Status, 10), p.Type, p.Name)
	}
	fmt.Fprintln(out)
}

// Show displays a single project.
func (a *ProjectAdapter) Show(ctx context.Context, projectID string) error {
	p, err := a.service.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	writeProject(a.out, p)
	fmt.Fprintln(a.out)
	return nil
}

func writeProject(out io.Writer, p *primary.Project) {
	fmt.Fprintf(out, "\nProject: %s\n", p.ID)
	fmt.Fprintf(out, "Name:    %s\n", p.Name)
	fmt.Fprintf(out, "Type:    %s\n", p.Type)
	fmt.Fprintf(out, "Status:  %s\n", badge(p.Status, 0))
	fmt.Fprintf(out, "Active:  %t\n", p.Active)
	fmt.Fprintf(out, "Domain:  %s\n", orDash(p.DomainID))
	if p.DriveFolderURL != "" {
		fmt.Fprintf(out, "Drive:   %s\n", p.DriveFolderURL)
	}
	if p.PrimaryDocURL != "" {
		fmt.Fprintf(out, "Doc:     %s\n", p.PrimaryDocURL)
	}
	if p.PauseCondition != "" {
		fmt.Fprintf(out, "Paused until: %s\n", p.PauseCondition)
	}
	fmt.Fprintf(out, "Created: %s\n", formatTime(p.CreatedAt))
}

// Open loads the project workspace: analysis, epics and stories grouped by
// epic. A partially loaded view is printed before the error is returned.
func (a *ProjectAdapter) Open(ctx context.Context, projectID string) error {
	view, err := a.service.OpenProject(ctx, projectID)
	if view == nil {
		return fmt.Errorf("failed to open project: %w", err)
	}

	writeProject(a.out, view.Project)
	if view.Analysis != nil {
		fmt.Fprintf(a.out, "Analysis: %s %s\n", view.Analysis.ID, checkmark(view.Analysis.IsDone))
	}

	fmt.Fprintf(a.out, "\nEpics (%d)\n", len(view.Epics))
	fmt.Fprintln(a.out, divider)
	for _, e := range view.Epics {
		fmt.Fprintf(a.out, "#%-3d %s  %s\n", e.OrderNo, e.ID, e.Title)
		writeStoryLines(a.out, view.StoriesByEpic[e.ID])
	}
	if loose := view.StoriesByEpic[story.NoEpic]; len(loose) > 0 {
		fmt.Fprintln(a.out, "(no epic)")
		writeStoryLines(a.out, loose)
	}
	fmt.Fprintln(a.out)

	if err != nil {
		return fmt.Errorf("project partially loaded: %w", err)
	}
	return nil
}

func writeStoryLines(out io.Writer, stories []*primary.Story) {
	for _, s := range stories {
		fmt.Fprintf(out, "     P%d %s %s  %s\n", s.Priority, badge(s.Status, 11), s.ID, s.Title)
	}
}

// Update changes the given fields of a project.
func (a *ProjectAdapter) Update(ctx context.Context, req primary.UpdateProjectRequest) error {
	p, err := a.service.UpdateProject(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Project %s updated (%s)\n", p.ID, p.Status)
	return nil
}

// Delete deletes a project.
func (a *ProjectAdapter) Delete(ctx context.Context, projectID string) error {
	p, err := a.service.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if err := a.service.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted project %s: %s\n", p.ID, p.Name)
	return nil
}
