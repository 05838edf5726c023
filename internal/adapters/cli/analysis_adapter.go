package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/ports/primary"
)

// AnalysisAdapter translates CLI operations to AnalysisService calls.
type AnalysisAdapter struct {
	service primary.AnalysisService
	out     io.Writer
}

// NewAnalysisAdapter creates a new AnalysisAdapter with the given service.
func NewAnalysisAdapter(service primary.AnalysisService, out io.Writer) *AnalysisAdapter {
	return &AnalysisAdapter{service: service, out: out}
}

// Show prints the project's analysis document.
func (a *AnalysisAdapter) Show(ctx context.Context, projectID string) error {
	doc, err := a.service.GetAnalysis(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}
	fmt.Fprintf(a.out, "\nAnalysis %s (project %s) %s\n", doc.ID, doc.ProjectID, checkmark(doc.IsDone))
	fmt.Fprintln(a.out, divider)
	for _, section := range []struct{ title, body string }{
		{"Pain", doc.Pain},
		{"Knowledge", doc.Knowledge},
		{"Context", doc.Context},
		{"Legacy notes", doc.LegacyNotes},
		{"Scope in", doc.ScopeIn},
		{"Scope out", doc.ScopeOut},
	} {
		fmt.Fprintf(a.out, "%s:\n  %s\n", section.title, orDash(section.body))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the given sections.
func (a *AnalysisAdapter) Update(ctx context.Context, req primary.UpdateAnalysisRequest) error {
	doc, err := a.service.UpdateAnalysis(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Analysis %s updated\n", doc.ID)
	return nil
}
