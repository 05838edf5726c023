package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/core2/internal/core/calendar"
	"github.com/example/core2/internal/core/dailytask"
	"github.com/example/core2/internal/core/instant"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// DailyTaskServiceImpl implements the DailyTaskService interface.
type DailyTaskServiceImpl struct {
	dailyTaskRepo secondary.DailyTaskRepository
	scope         *OwnerScope
	loc           *time.Location
	logger        *slog.Logger
}

// NewDailyTaskService creates a new DailyTaskService. Days and times without
// a zone are read in loc; nil means time.Local.
func NewDailyTaskService(dailyTaskRepo secondary.DailyTaskRepository, scope *OwnerScope, loc *time.Location, logger *slog.Logger) *DailyTaskServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &DailyTaskServiceImpl{
		dailyTaskRepo: dailyTaskRepo,
		scope:         scope,
		loc:           loc,
		logger:        loggerOrDefault(logger),
	}
}

// CreateDailyTask validates and creates an entry for the caller.
func (s *DailyTaskServiceImpl) CreateDailyTask(ctx context.Context, req primary.CreateDailyTaskRequest) (*primary.DailyTask, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}

	startRaw, endRaw := req.StartAt, req.EndAt
	if startRaw == "" && endRaw == "" && !req.Day.IsZero() {
		start, end := calendar.DefaultSlot(req.Day.In(s.loc))
		startRaw, endRaw = start.Format(time.RFC3339), end.Format(time.RFC3339)
	}
	kind := req.Kind
	if kind == "" {
		kind = dailytask.KindOther
	}

	guard := dailytask.CanSaveDailyTask(dailytask.SaveDailyTaskContext{
		Title:    req.Title,
		StartAt:  startRaw,
		EndAt:    endRaw,
		Kind:     kind,
		Location: s.loc,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	// The guard has parsed both already.
	start, _ := instant.Parse(startRaw, s.loc)
	end, _ := instant.Parse(endRaw, s.loc)

	rec, err := s.dailyTaskRepo.Create(ctx, secondary.DailyTaskInsert{
		OwnerID: owner,
		Title:   strings.TrimSpace(req.Title),
		Notes:   strings.TrimSpace(req.Notes),
		StartAt: start,
		EndAt:   end,
		Kind:    kind,
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "daily task created", "daily_task", rec.ID)
	return recordToDailyTask(rec), nil
}

// ListDailyTasks lists all of the caller's entries.
func (s *DailyTaskServiceImpl) ListDailyTasks(ctx context.Context) ([]*primary.DailyTask, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.dailyTaskRepo.ListByOwner(ctx, owner, all)
	if err != nil {
		return nil, err
	}
	return recordsToDailyTasks(records), nil
}

// ListDay lists the caller's entries starting on day, in start order.
func (s *DailyTaskServiceImpl) ListDay(ctx context.Context, day time.Time) ([]*primary.DailyTask, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	from, to := calendar.DayBounds(day.In(s.loc))
	records, err := s.dailyTaskRepo.ListByOwnerAndRange(ctx, owner, from, to, all)
	if err != nil {
		return nil, err
	}
	return recordsToDailyTasks(records), nil
}

// Calendar lays out day's month and lists day's entries.
func (s *DailyTaskServiceImpl) Calendar(ctx context.Context, day time.Time) (*primary.CalendarView, error) {
	day = day.In(s.loc)
	grid := calendar.MonthGrid(day.Year(), day.Month())
	entries, err := s.ListDay(ctx, day)
	if err != nil {
		return nil, err
	}

	view := &primary.CalendarView{
		Year:     grid.Year,
		Month:    grid.Month,
		Selected: day,
		Weeks:    make([][7]int, len(grid.Weeks)),
		Entries:  entries,
	}
	for i, w := range grid.Weeks {
		view.Weeks[i] = w
	}
	return view, nil
}

// DeleteDailyTask deletes an entry.
func (s *DailyTaskServiceImpl) DeleteDailyTask(ctx context.Context, dailyTaskID string) error {
	if _, err := s.scope.DailyTask(ctx, dailyTaskID); err != nil {
		return err
	}
	if _, err := s.dailyTaskRepo.Delete(ctx, dailyTaskID); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "daily task deleted", "daily_task", dailyTaskID)
	return nil
}

func recordsToDailyTasks(records []*secondary.DailyTaskRecord) []*primary.DailyTask {
	out := make([]*primary.DailyTask, len(records))
	for i, r := range records {
		out[i] = recordToDailyTask(r)
	}
	return out
}

func recordToDailyTask(r *secondary.DailyTaskRecord) *primary.DailyTask {
	return &primary.DailyTask{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Notes:     r.Notes,
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		Kind:      r.Kind,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure DailyTaskServiceImpl implements the interface
var _ primary.DailyTaskService = (*DailyTaskServiceImpl)(nil)
