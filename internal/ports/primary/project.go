package primary

import (
	"context"
	"time"
)

// ProjectService defines the primary port for project operations.
type ProjectService interface {
	// CreateProject creates a project and its analysis document.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*CreateProjectResponse, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// ListProjects lists the caller's projects, newest first.
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*Project, error)

	// OpenProject loads a project with its analysis document, epics and
	// stories, and records it as the last opened project. A missing project
	// is an error. When a secondary load fails the view is still returned with
	// whatever loaded, together with the error.
	OpenProject(ctx context.Context, projectID string) (*ProjectView, error)

	// UpdateProject applies a partial update. The type is fixed at creation.
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error)

	// DeleteProject deletes a project. The store rejects projects that still
	// have children.
	DeleteProject(ctx context.Context, projectID string) error
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	Name           string // Required
	Type           string // Required: NEW or EXISTING
	Status         string // Optional, defaults to INTEL
	DomainID       string // Optional
	DriveFolderURL string
	PrimaryDocURL  string
	PauseCondition string
}

// CreateProjectResponse contains the result of project creation.
type CreateProjectResponse struct {
	ProjectID string
	Project   *Project
	Analysis  *AnalysisDocument
}

// ProjectFilters narrows ListProjects.
type ProjectFilters struct {
	DomainID string // "" for all, "none" for projects without a domain
	Query    string // case-insensitive name search
}

// UpdateProjectRequest contains parameters for updating a project.
// Nil fields are left unchanged; a pointer to "" clears nullable fields.
type UpdateProjectRequest struct {
	ProjectID      string
	DomainID       *string
	Name           *string
	Status         *string
	Active         *bool
	DriveFolderURL *string
	PrimaryDocURL  *string
	PauseCondition *string
}

// Project represents a project entity at the port boundary.
type Project struct {
	ID             string
	OwnerID        string
	DomainID       string
	Name           string
	Type           string
	Status         string
	Active         bool
	DriveFolderURL string
	PrimaryDocURL  string
	PauseCondition string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectView is everything the project screen shows.
type ProjectView struct {
	Project  *Project
	Analysis *AnalysisDocument
	Epics    []*Epic
	Stories  []*Story
	// StoriesByEpic groups Stories by epic ID; "none" holds stories without
	// a loaded epic.
	StoriesByEpic map[string][]*Story
}
