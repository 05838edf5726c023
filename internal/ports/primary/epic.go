package primary

import (
	"context"
	"time"
)

// EpicService defines the primary port for epic operations.
type EpicService interface {
	// CreateEpic creates an epic at the end of the project's order.
	CreateEpic(ctx context.Context, req CreateEpicRequest) (*Epic, error)

	// GetEpic retrieves an epic by ID.
	GetEpic(ctx context.Context, epicID string) (*Epic, error)

	// ListEpics lists a project's epics in order.
	ListEpics(ctx context.Context, projectID string) ([]*Epic, error)

	// UpdateEpic applies a partial update.
	UpdateEpic(ctx context.Context, req UpdateEpicRequest) (*Epic, error)

	// DeleteEpic removes an epic together with its stories and their tasks.
	// Callers confirm before calling.
	DeleteEpic(ctx context.Context, epicID string) (*DeleteEpicResponse, error)
}

// CreateEpicRequest contains parameters for creating an epic.
type CreateEpicRequest struct {
	ProjectID   string // Required
	Title       string // Required
	Description string
}

// UpdateEpicRequest contains parameters for updating an epic.
type UpdateEpicRequest struct {
	EpicID      string
	Title       *string
	Description *string
	OrderNo     *int
}

// DeleteEpicResponse lists what a cascade removed.
type DeleteEpicResponse struct {
	EpicID        string
	StoryIDs      []string
	TaskIDs       []string
	Transactional bool // false when the rows were removed one call at a time
}

// Epic represents an epic entity at the port boundary.
type Epic struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	OrderNo     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
