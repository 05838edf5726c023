package primary

import (
	"context"
	"time"
)

// DailyTaskService defines the primary port for calendar entries.
type DailyTaskService interface {
	// CreateDailyTask creates an entry for the caller.
	CreateDailyTask(ctx context.Context, req CreateDailyTaskRequest) (*DailyTask, error)

	// ListDailyTasks lists all of the caller's entries by start time.
	ListDailyTasks(ctx context.Context) ([]*DailyTask, error)

	// ListDay lists the caller's entries starting on day.
	ListDay(ctx context.Context, day time.Time) ([]*DailyTask, error)

	// Calendar returns the month grid and the entries of the selected day.
	Calendar(ctx context.Context, day time.Time) (*CalendarView, error)

	// DeleteDailyTask deletes an entry.
	DeleteDailyTask(ctx context.Context, dailyTaskID string) error
}

// CreateDailyTaskRequest contains parameters for creating an entry.
// Empty StartAt and EndAt default to 09:00-10:00 on Day.
type CreateDailyTaskRequest struct {
	Title   string // Required
	Notes   string
	Kind    string // Optional, defaults to OTHER
	Day     time.Time
	StartAt string
	EndAt   string
}

// CalendarView is a Monday-first month grid with the selected day's entries.
type CalendarView struct {
	Year     int
	Month    time.Month
	Selected time.Time
	Weeks    [][7]int // day numbers, 0 for blank cells
	Entries  []*DailyTask
}

// DailyTask represents a calendar entry at the port boundary.
type DailyTask struct {
	ID        string
	OwnerID   string
	Title     string
	Notes     string
	StartAt   time.Time
	EndAt     time.Time
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
