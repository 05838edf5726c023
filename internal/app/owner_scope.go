package app

import (
	"context"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

// OwnerScope loads rows on behalf of the signed-in owner. A row owned by
// someone else reads as not found. Epics, stories, tasks and test logs belong
// to the owner of their project.
type OwnerScope struct {
	domainRepo    secondary.DomainRepository
	projectRepo   secondary.ProjectRepository
	epicRepo      secondary.EpicRepository
	storyRepo     secondary.StoryRepository
	taskRepo      secondary.TaskRepository
	testLogRepo   secondary.TestLogRepository
	dailyTaskRepo secondary.DailyTaskRepository
}

// NewOwnerScope creates an OwnerScope over the given repositories.
func NewOwnerScope(
	domainRepo secondary.DomainRepository,
	projectRepo secondary.ProjectRepository,
	epicRepo secondary.EpicRepository,
	storyRepo secondary.StoryRepository,
	taskRepo secondary.TaskRepository,
	testLogRepo secondary.TestLogRepository,
	dailyTaskRepo secondary.DailyTaskRepository,
) *OwnerScope {
	return &OwnerScope{
		domainRepo:    domainRepo,
		projectRepo:   projectRepo,
		epicRepo:      epicRepo,
		storyRepo:     storyRepo,
		taskRepo:      taskRepo,
		testLogRepo:   testLogRepo,
		dailyTaskRepo: dailyTaskRepo,
	}
}

// Domain returns the caller's domain.
func (s *OwnerScope) Domain(ctx context.Context, id string) (*secondary.DomainRecord, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.domainRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != owner {
		return nil, core2err.NotFound("domain", id)
	}
	return rec, nil
}

// Project returns the caller's project.
func (s *OwnerScope) Project(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != owner {
		return nil, core2err.NotFound("project", id)
	}
	return rec, nil
}

// Epic returns an epic of one of the caller's projects.
func (s *OwnerScope) Epic(ctx context.Context, id string) (*secondary.EpicRecord, error) {
	rec, err := s.epicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, "epic", id, rec.ProjectID); err != nil {
		return nil, err
	}
	return rec, nil
}

// Story returns a story of one of the caller's projects.
func (s *OwnerScope) Story(ctx context.Context, id string) (*secondary.StoryRecord, error) {
	rec, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, "story", id, rec.ProjectID); err != nil {
		return nil, err
	}
	return rec, nil
}

// Task returns a task whose story is in one of the caller's projects.
func (s *OwnerScope) Task(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	rec, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Story(ctx, rec.StoryID); err != nil {
		return nil, hideParent(err, "task", id)
	}
	return rec, nil
}

// TestLog returns a test log whose story is in one of the caller's projects.
func (s *OwnerScope) TestLog(ctx context.Context, id string) (*secondary.TestLogRecord, error) {
	rec, err := s.testLogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Story(ctx, rec.StoryID); err != nil {
		return nil, hideParent(err, "test_log", id)
	}
	return rec, nil
}

// DailyTask returns the caller's calendar entry.
func (s *OwnerScope) DailyTask(ctx context.Context, id string) (*secondary.DailyTaskRecord, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.dailyTaskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != owner {
		return nil, core2err.NotFound("daily_task", id)
	}
	return rec, nil
}

func (s *OwnerScope) checkParent(ctx context.Context, entity, id, projectID string) error {
	if _, err := s.Project(ctx, projectID); err != nil {
		return hideParent(err, entity, id)
	}
	return nil
}

// hideParent reports a child as missing when its parent is not visible.
func hideParent(err error, entity, id string) error {
	if core2err.IsNotFound(err) {
		return core2err.NotFound(entity, id)
	}
	return err
}
