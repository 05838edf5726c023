package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/core/template"
	"github.com/example/core2/internal/ports/primary"
)

// StoryAdapter translates CLI operations to StoryService calls.
type StoryAdapter struct {
	service primary.StoryService
	out     io.Writer
}

// NewStoryAdapter creates a new StoryAdapter with the given service.
func NewStoryAdapter(service primary.StoryService, out io.Writer) *StoryAdapter {
	return &StoryAdapter{service: service, out: out}
}

// Create creates a story.
func (a *StoryAdapter) Create(ctx context.Context, req primary.CreateStoryRequest) error {
	s, err := a.service.CreateStory(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created story %s: %s\n", s.ID, s.Title)
	fmt.Fprintf(a.out, "  Project: %s\n", s.ProjectID)
	if s.EpicID != "" {
		fmt.Fprintf(a.out, "  Epic: %s\n", s.EpicID)
	}
	return nil
}

// List lists stories matching the filters.
func (a *StoryAdapter) List(ctx context.Context, filters primary.StoryFilters) error {
	stories, err := a.service.ListStories(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list stories: %w", err)
	}
	if len(stories) == 0 {
		fmt.Fprintln(a.out, "No stories found")
		return nil
	}
	fmt.Fprintf(a.out, "\n%-36s %-11s %-3s %s\n", "ID", "STATUS", "PRI", "TITLE")
	fmt.Fprintln(a.out, divider)
	for _, s := range stories {
		fmt.Fprintf(a.out, "%-36s %s P%-2d %s\n", s.ID, badge(s.Status, 11), s.Priority, s.Title)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays a story with its narrative and acceptance criteria.
func (a *StoryAdapter) Show(ctx context.Context, storyID string) error {
	s, err := a.service.GetStory(ctx, storyID)
	if err != nil {
		return fmt.Errorf("failed to get story: %w", err)
	}
	fmt.Fprintf(a.out, "\nStory:    %s\n", s.ID)
	fmt.Fprintf(a.out, "Title:    %s\n", s.Title)
	fmt.Fprintf(a.out, "Status:   %s\n", badge(s.Status, 0))
	fmt.Fprintf(a.out, "Priority: P%d\n", s.Priority)
	fmt.Fprintf(a.out, "Project:  %s\n", s.ProjectID)
	fmt.Fprintf(a.out, "Epic:     %s\n", orDash(s.EpicID))
	fmt.Fprintf(a.out, "\n%s\n\n%s\n\n", s.UserStory, s.AcceptanceCriteria)
	return nil
}

// Update changes the given fields of a story.
func (a *StoryAdapter) Update(ctx context.Context, req primary.UpdateStoryRequest) error {
	s, err := a.service.UpdateStory(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update story: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Story %s updated\n", s.ID)
	return nil
}

// Delete deletes a story. Test logs go with it; remaining tasks make the
// store reject the delete.
func (a *StoryAdapter) Delete(ctx context.Context, storyID string) error {
	if err := a.service.DeleteStory(ctx, storyID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted story %s\n", storyID)
	return nil
}

// Template prints the bracket templates a story's text must follow.
func (a *StoryAdapter) Template() {
	fmt.Fprintln(a.out, "User story:")
	fmt.Fprintln(a.out, template.UserStory)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Acceptance criteria:")
	fmt.Fprintln(a.out, template.AcceptanceCriteria)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Only the text inside [brackets] may change.")
}
