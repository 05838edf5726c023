package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/core2/internal/core/testlog"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// TestLogServiceImpl implements the TestLogService interface.
type TestLogServiceImpl struct {
	testLogRepo secondary.TestLogRepository
	scope       *OwnerScope
	logger      *slog.Logger
}

// NewTestLogService creates a new TestLogService with injected dependencies.
func NewTestLogService(testLogRepo secondary.TestLogRepository, scope *OwnerScope, logger *slog.Logger) *TestLogServiceImpl {
	return &TestLogServiceImpl{
		testLogRepo: testLogRepo,
		scope:       scope,
		logger:      loggerOrDefault(logger),
	}
}

// CreateTestLog records a test run against a story.
func (s *TestLogServiceImpl) CreateTestLog(ctx context.Context, req primary.CreateTestLogRequest) (*primary.TestLog, error) {
	guard := testlog.CanSaveTestLog(testlog.SaveTestLogContext{StoryID: req.StoryID, Notes: req.Notes})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if _, err := s.scope.Story(ctx, req.StoryID); err != nil {
		return nil, err
	}
	if err := s.checkTask(ctx, req.StoryID, req.TaskID); err != nil {
		return nil, err
	}
	rec, err := s.testLogRepo.Create(ctx, secondary.TestLogInsert{
		StoryID: req.StoryID,
		TaskID:  req.TaskID,
		Notes:   strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "test log created", "test_log", rec.ID, "story", rec.StoryID)
	return recordToTestLog(rec), nil
}

// ListTestLogs lists a story's test logs, newest first.
func (s *TestLogServiceImpl) ListTestLogs(ctx context.Context, storyID string) ([]*primary.TestLog, error) {
	if _, err := s.scope.Story(ctx, storyID); err != nil {
		return nil, err
	}
	records, err := s.testLogRepo.ListByStory(ctx, storyID, all)
	if err != nil {
		return nil, err
	}
	logs := make([]*primary.TestLog, len(records))
	for i, r := range records {
		logs[i] = recordToTestLog(r)
	}
	return logs, nil
}

// UpdateTestLog applies a partial update.
func (s *TestLogServiceImpl) UpdateTestLog(ctx context.Context, req primary.UpdateTestLogRequest) (*primary.TestLog, error) {
	if req.Notes != nil {
		guard := testlog.CanSaveTestLog(testlog.SaveTestLogContext{Existing: true, Notes: *req.Notes})
		if err := guard.Error(); err != nil {
			return nil, err
		}
	}
	current, err := s.scope.TestLog(ctx, req.TestLogID)
	if err != nil {
		return nil, err
	}
	if req.TaskID != nil {
		if err := s.checkTask(ctx, current.StoryID, *req.TaskID); err != nil {
			return nil, err
		}
	}
	rec, err := s.testLogRepo.Update(ctx, req.TestLogID, secondary.TestLogPatch{
		TaskID: req.TaskID,
		Notes:  trimmed(req.Notes),
	})
	if err != nil {
		return nil, err
	}
	return recordToTestLog(rec), nil
}

// DeleteTestLog deletes a test log.
func (s *TestLogServiceImpl) DeleteTestLog(ctx context.Context, testLogID string) error {
	if _, err := s.scope.TestLog(ctx, testLogID); err != nil {
		return err
	}
	if _, err := s.testLogRepo.Delete(ctx, testLogID); err != nil {
		return err
	}
	return nil
}

// checkTask requires a non-empty taskID to name a task of storyID.
func (s *TestLogServiceImpl) checkTask(ctx context.Context, storyID, taskID string) error {
	if taskID == "" {
		return nil
	}
	t, err := s.scope.Task(ctx, taskID)
	if err != nil {
		return err
	}
	if t.StoryID != storyID {
		return core2err.Validationf("task %s belongs to another story", taskID)
	}
	return nil
}

func recordToTestLog(r *secondary.TestLogRecord) *primary.TestLog {
	return &primary.TestLog{
		ID:        r.ID,
		StoryID:   r.StoryID,
		TaskID:    r.TaskID,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure TestLogServiceImpl implements the interface
var _ primary.TestLogService = (*TestLogServiceImpl)(nil)
