package primary

import "context"

// WorkspaceService assembles the home view.
type WorkspaceService interface {
	// LoadHome loads the caller's projects and domains and picks the
	// default project: the last opened one if it still exists, else the
	// first. When one of the loads fails the view still carries the other.
	LoadHome(ctx context.Context) (*HomeView, error)
}

// HomeView is everything the home screen shows.
type HomeView struct {
	Projects          []*Project
	Domains           []*Domain
	SelectedProjectID string
	// SelectedDomainID is the selected project's domain, or "none".
	SelectedDomainID string
	// Stories of the selected project, for the story picker.
	Stories []*Story
}
