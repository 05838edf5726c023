package primary

import (
	"context"
	"time"
)

// StoryService defines the primary port for story operations.
// Narrative and acceptance criteria follow fixed bracket templates.
type StoryService interface {
	// CreateStory creates a story. Empty acceptance criteria become the
	// default template and an empty status becomes START.
	CreateStory(ctx context.Context, req CreateStoryRequest) (*Story, error)

	// GetStory retrieves a story by ID.
	GetStory(ctx context.Context, storyID string) (*Story, error)

	// ListStories lists stories by priority, then newest.
	ListStories(ctx context.Context, filters StoryFilters) ([]*Story, error)

	// UpdateStory applies a partial update.
	UpdateStory(ctx context.Context, req UpdateStoryRequest) (*Story, error)

	// DeleteStory deletes a story. The store rejects stories that still
	// have tasks.
	DeleteStory(ctx context.Context, storyID string) error
}

// CreateStoryRequest contains parameters for creating a story.
type CreateStoryRequest struct {
	ProjectID          string // Required
	EpicID             string // Optional
	Title              string // Required
	UserStory          string // Required, must keep the template's placeholders
	AcceptanceCriteria string
	Status             string
	Priority           int // Required: 1..5
}

// StoryFilters narrows ListStories. EpicID takes precedence over ProjectID.
type StoryFilters struct {
	ProjectID string
	EpicID    string
	Query     string // matches title and user story
}

// UpdateStoryRequest contains parameters for updating a story.
// A pointer to "" for EpicID detaches the story from its epic.
type UpdateStoryRequest struct {
	StoryID            string
	EpicID             *string
	Title              *string
	UserStory          *string
	AcceptanceCriteria *string
	Status             *string
	Priority           *int
}

// Story represents a story entity at the port boundary.
type Story struct {
	ID                 string
	ProjectID          string
	EpicID             string
	Title              string
	UserStory          string
	AcceptanceCriteria string
	Status             string
	Priority           int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
