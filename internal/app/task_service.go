package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/core2/internal/core/board"
	"github.com/example/core2/internal/core/instant"
	"github.com/example/core2/internal/core/task"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo secondary.TaskRepository
	scope    *OwnerScope
	loc      *time.Location
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService. Times without a zone are read in
// loc; nil means time.Local.
func NewTaskService(taskRepo secondary.TaskRepository, scope *OwnerScope, loc *time.Location, logger *slog.Logger) *TaskServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		scope:    scope,
		loc:      loc,
		logger:   loggerOrDefault(logger),
	}
}

// CreateTask validates and creates a task.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*primary.Task, error) {
	if req.StoryID == "" {
		return nil, core2err.Validation("story is required")
	}
	guard := task.CanSaveTask(task.SaveTaskContext{Title: req.Title, EndAt: req.EndAt, Status: req.Status})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	endAt, err := instant.Parse(req.EndAt, s.loc)
	if err != nil {
		return nil, core2err.Validationf("end date %q is not a valid date", req.EndAt)
	}
	startAt, err := s.optionalInstant(req.StartAt)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = task.StatusIcebox
	}
	if _, err := s.scope.Story(ctx, req.StoryID); err != nil {
		return nil, err
	}

	rec, err := s.taskRepo.Create(ctx, secondary.TaskInsert{
		StoryID: req.StoryID,
		Title:   strings.TrimSpace(req.Title),
		Note:    strings.TrimSpace(req.Note),
		Status:  status,
		StartAt: startAt,
		EndAt:   &endAt,
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "task created", "task", rec.ID, "order", rec.OrderNo)
	return recordToTask(rec), nil
}

// GetTask retrieves a task by ID.
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID string) (*primary.Task, error) {
	rec, err := s.scope.Task(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return recordToTask(rec), nil
}

// ListTasks lists a story's tasks in order.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, storyID string) ([]*primary.Task, error) {
	if _, err := s.scope.Story(ctx, storyID); err != nil {
		return nil, err
	}
	records, err := s.taskRepo.ListByStory(ctx, storyID, all)
	if err != nil {
		return nil, err
	}
	tasks := make([]*primary.Task, len(records))
	for i, r := range records {
		tasks[i] = recordToTask(r)
	}
	return tasks, nil
}

// Board buckets a story's tasks into one column per status.
func (s *TaskServiceImpl) Board(ctx context.Context, storyID string) ([]primary.TaskColumn, error) {
	tasks, err := s.ListTasks(ctx, storyID)
	if err != nil {
		return nil, err
	}
	cols := board.ByStatus(tasks, taskStatus, task.Statuses)
	out := make([]primary.TaskColumn, len(cols))
	for i, c := range cols {
		out[i] = primary.TaskColumn{Status: c.Status, Tasks: c.Items}
	}
	return out, nil
}

// UpdateTask merges the request into the stored task, validates the result
// and saves the changed fields.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req primary.UpdateTaskRequest) (*primary.Task, error) {
	current, err := s.scope.Task(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	check := task.SaveTaskContext{Title: current.Title}
	if current.EndAt != nil {
		check.EndAt = current.EndAt.Format(time.RFC3339)
	}
	if req.Title != nil {
		check.Title = *req.Title
	}
	if req.EndAt != nil {
		check.EndAt = *req.EndAt
	}
	if req.Status != nil {
		check.Status = *req.Status
		if check.Status == "" {
			return nil, core2err.Validation("status must not be empty")
		}
	}
	if err := task.CanSaveTask(check).Error(); err != nil {
		return nil, err
	}

	patch := secondary.TaskPatch{
		Title:   trimmed(req.Title),
		Note:    trimmed(req.Note),
		Status:  req.Status,
		OrderNo: req.OrderNo,
	}
	if req.EndAt != nil {
		end, err := instant.Parse(*req.EndAt, s.loc)
		if err != nil {
			return nil, core2err.Validationf("end date %q is not a valid date", *req.EndAt)
		}
		patch.EndAt = &end
	}
	if req.StartAt != nil {
		start, err := s.optionalInstant(*req.StartAt)
		if err != nil {
			return nil, err
		}
		patch.StartAt = start
		patch.ClearStartAt = start == nil
	}

	rec, err := s.taskRepo.Update(ctx, req.TaskID, patch)
	if err != nil {
		return nil, err
	}
	return recordToTask(rec), nil
}

// MoveTask changes a task's status from the board. held is never modified;
// on success a copy with the stored row swapped in is returned.
func (s *TaskServiceImpl) MoveTask(ctx context.Context, held []*primary.Task, taskID, status string) ([]*primary.Task, error) {
	current, found := board.Find(held, taskIDOf, taskID)
	guard := task.CanMoveTask(task.MoveTaskContext{TaskID: taskID, TaskFound: found, TargetStatus: status})
	if err := guard.Error(); err != nil {
		return held, err
	}
	if current.Status == status {
		return held, nil
	}
	if _, err := s.scope.Task(ctx, taskID); err != nil {
		return held, err
	}

	rec, err := s.taskRepo.Update(ctx, taskID, secondary.TaskPatch{Status: &status})
	if err != nil {
		return held, err
	}
	s.logger.DebugContext(ctx, "task moved", "task", taskID, "from", current.Status, "to", status)
	return board.Replace(held, taskIDOf, recordToTask(rec)), nil
}

// DeleteTask deletes a task.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := s.scope.Task(ctx, taskID); err != nil {
		return err
	}
	if _, err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "task deleted", "task", taskID)
	return nil
}

// optionalInstant parses raw, returning nil for blank input.
func (s *TaskServiceImpl) optionalInstant(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := instant.Parse(raw, s.loc)
	if err != nil {
		return nil, core2err.Validationf("start date %q is not a valid date", raw)
	}
	return &t, nil
}

func taskIDOf(t *primary.Task) string    { return t.ID }
func taskStatus(t *primary.Task) string { return t.Status }

func recordToTask(r *secondary.TaskRecord) *primary.Task {
	return &primary.Task{
		ID:        r.ID,
		StoryID:   r.StoryID,
		Title:     r.Title,
		Note:      r.Note,
		Status:    r.Status,
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		OrderNo:   r.OrderNo,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure TaskServiceImpl implements the interface
var _ primary.TaskService = (*TaskServiceImpl)(nil)
