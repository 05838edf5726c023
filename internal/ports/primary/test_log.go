package primary

import (
	"context"
	"time"
)

// TestLogService defines the primary port for story test logs.
type TestLogService interface {
	CreateTestLog(ctx context.Context, req CreateTestLogRequest) (*TestLog, error)
	ListTestLogs(ctx context.Context, storyID string) ([]*TestLog, error)
	UpdateTestLog(ctx context.Context, req UpdateTestLogRequest) (*TestLog, error)
	DeleteTestLog(ctx context.Context, testLogID string) error
}

// CreateTestLogRequest contains parameters for creating a test log.
type CreateTestLogRequest struct {
	StoryID string // Required
	TaskID  string // Optional task the log refers to
	Notes   string // Required
}

// UpdateTestLogRequest contains parameters for updating a test log.
type UpdateTestLogRequest struct {
	TestLogID string
	TaskID    *string
	Notes     *string
}

// TestLog represents a test log at the port boundary.
type TestLog struct {
	ID        string
	StoryID   string
	TaskID    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
