package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/core2/internal/core/story"
	"github.com/example/core2/internal/core/template"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// StoryServiceImpl implements the StoryService interface.
type StoryServiceImpl struct {
	storyRepo secondary.StoryRepository
	scope     *OwnerScope
	logger    *slog.Logger
}

// NewStoryService creates a new StoryService with injected dependencies.
func NewStoryService(storyRepo secondary.StoryRepository, scope *OwnerScope, logger *slog.Logger) *StoryServiceImpl {
	return &StoryServiceImpl{
		storyRepo: storyRepo,
		scope:     scope,
		logger:    loggerOrDefault(logger),
	}
}

// CreateStory validates and creates a story.
func (s *StoryServiceImpl) CreateStory(ctx context.Context, req primary.CreateStoryRequest) (*primary.Story, error) {
	if req.ProjectID == "" {
		return nil, core2err.Validation("project is required")
	}
	criteria := req.AcceptanceCriteria
	if strings.TrimSpace(criteria) == "" {
		criteria = template.AcceptanceCriteria
	}
	status := req.Status
	if status == "" {
		status = story.StatusStart
	}

	guard := story.CanSaveStory(story.SaveStoryContext{
		Title:              req.Title,
		UserStory:          req.UserStory,
		AcceptanceCriteria: criteria,
		Status:             status,
		Priority:           req.Priority,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if _, err := s.scope.Project(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if err := s.checkEpic(ctx, req.ProjectID, req.EpicID); err != nil {
		return nil, err
	}

	rec, err := s.storyRepo.Create(ctx, secondary.StoryInsert{
		ProjectID:          req.ProjectID,
		EpicID:             req.EpicID,
		Title:              strings.TrimSpace(req.Title),
		UserStory:          accept(template.UserStory, "", req.UserStory),
		AcceptanceCriteria: accept(template.AcceptanceCriteria, "", criteria),
		Status:             status,
		Priority:           req.Priority,
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "story created", "story", rec.ID)
	return recordToStory(rec), nil
}

// GetStory retrieves a story by ID.
func (s *StoryServiceImpl) GetStory(ctx context.Context, storyID string) (*primary.Story, error) {
	rec, err := s.scope.Story(ctx, storyID)
	if err != nil {
		return nil, err
	}
	return recordToStory(rec), nil
}

// ListStories lists the stories of an epic or a project.
func (s *StoryServiceImpl) ListStories(ctx context.Context, filters primary.StoryFilters) ([]*primary.Story, error) {
	var (
		records []*secondary.StoryRecord
		err     error
	)
	switch {
	case filters.EpicID != "":
		if _, err := s.scope.Epic(ctx, filters.EpicID); err != nil {
			return nil, err
		}
		records, err = s.storyRepo.ListByEpic(ctx, filters.EpicID, all)
	case filters.ProjectID != "":
		if _, err := s.scope.Project(ctx, filters.ProjectID); err != nil {
			return nil, err
		}
		records, err = s.storyRepo.ListByProject(ctx, filters.ProjectID, all)
	default:
		return nil, core2err.Validation("project or epic is required")
	}
	if err != nil {
		return nil, err
	}

	stories := make([]*primary.Story, len(records))
	for i, r := range records {
		stories[i] = recordToStory(r)
	}
	return story.Search(stories, filters.Query, storyText), nil
}

// UpdateStory merges the request into the stored story, validates the result
// and saves the changed fields.
func (s *StoryServiceImpl) UpdateStory(ctx context.Context, req primary.UpdateStoryRequest) (*primary.Story, error) {
	current, err := s.scope.Story(ctx, req.StoryID)
	if err != nil {
		return nil, err
	}
	if req.EpicID != nil {
		if err := s.checkEpic(ctx, current.ProjectID, *req.EpicID); err != nil {
			return nil, err
		}
	}

	merged := story.SaveStoryContext{
		Title:              current.Title,
		UserStory:          current.UserStory,
		AcceptanceCriteria: current.AcceptanceCriteria,
		Status:             current.Status,
		Priority:           current.Priority,
	}
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.UserStory != nil {
		merged.UserStory = *req.UserStory
	}
	if req.AcceptanceCriteria != nil {
		merged.AcceptanceCriteria = *req.AcceptanceCriteria
		if strings.TrimSpace(merged.AcceptanceCriteria) == "" {
			merged.AcceptanceCriteria = template.AcceptanceCriteria
		}
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.Priority != nil {
		merged.Priority = *req.Priority
	}
	if err := story.CanSaveStory(merged).Error(); err != nil {
		return nil, err
	}

	patch := secondary.StoryPatch{
		EpicID:   req.EpicID,
		Title:    trimmed(req.Title),
		Status:   req.Status,
		Priority: req.Priority,
	}
	if req.UserStory != nil {
		v := accept(template.UserStory, current.UserStory, merged.UserStory)
		patch.UserStory = &v
	}
	if req.AcceptanceCriteria != nil {
		v := accept(template.AcceptanceCriteria, current.AcceptanceCriteria, merged.AcceptanceCriteria)
		patch.AcceptanceCriteria = &v
	}

	rec, err := s.storyRepo.Update(ctx, req.StoryID, patch)
	if err != nil {
		return nil, err
	}
	return recordToStory(rec), nil
}

// DeleteStory deletes a story.
func (s *StoryServiceImpl) DeleteStory(ctx context.Context, storyID string) error {
	if _, err := s.scope.Story(ctx, storyID); err != nil {
		return err
	}
	if _, err := s.storyRepo.Delete(ctx, storyID); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "story deleted", "story", storyID)
	return nil
}

// checkEpic requires a non-empty epicID to name an epic of projectID.
func (s *StoryServiceImpl) checkEpic(ctx context.Context, projectID, epicID string) error {
	if epicID == "" {
		return nil
	}
	ep, err := s.scope.Epic(ctx, epicID)
	if err != nil {
		return err
	}
	if ep.ProjectID != projectID {
		return core2err.Validationf("epic %s belongs to another project", epicID)
	}
	return nil
}

// accept proposes text to an editor holding last and returns the editor's
// value: text rebuilt on the template scaffold, or last when the placeholder
// count does not match.
func accept(tmpl, last, text string) string {
	ed := template.NewEditor(tmpl, last)
	ed.Propose(text)
	return ed.Value()
}

func storyEpic(st *primary.Story) string { return st.EpicID }

func storyText(st *primary.Story) []string { return []string{st.Title, st.UserStory} }

func recordToStory(r *secondary.StoryRecord) *primary.Story {
	return &primary.Story{
		ID:                 r.ID,
		ProjectID:          r.ProjectID,
		EpicID:             r.EpicID,
		Title:              r.Title,
		UserStory:          r.UserStory,
		AcceptanceCriteria: r.AcceptanceCriteria,
		Status:             r.Status,
		Priority:           r.Priority,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Ensure StoryServiceImpl implements the interface
var _ primary.StoryService = (*StoryServiceImpl)(nil)
