package primary

import (
	"context"
	"time"
)

// AnalysisService defines the primary port for a project's analysis document.
type AnalysisService interface {
	// GetAnalysis returns the project's analysis document, creating an empty
	// one if the project has none.
	GetAnalysis(ctx context.Context, projectID string) (*AnalysisDocument, error)

	// UpdateAnalysis applies a partial update. Text is trimmed and empty
	// text clears the field.
	UpdateAnalysis(ctx context.Context, req UpdateAnalysisRequest) (*AnalysisDocument, error)
}

// UpdateAnalysisRequest contains parameters for updating an analysis document.
type UpdateAnalysisRequest struct {
	ProjectID   string
	Pain        *string
	Knowledge   *string
	Context     *string
	LegacyNotes *string
	ScopeIn     *string
	ScopeOut    *string
	IsDone      *bool
}

// AnalysisDocument represents a project's analysis at the port boundary.
type AnalysisDocument struct {
	ID          string
	ProjectID   string
	Pain        string
	Knowledge   string
	Context     string
	LegacyNotes string
	ScopeIn     string
	ScopeOut    string
	IsDone      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
