package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// TestLogRepository implements secondary.TestLogRepository.
type TestLogRepository struct {
	base
}

// NewTestLogRepository creates a new test log repository.
func NewTestLogRepository(drv driver.Driver) *TestLogRepository {
	return &TestLogRepository{base{drv: drv}}
}

const testLogSelectCols = "id, story_id, task_id, notes, created_at, updated_at"

func scanTestLog(s scanner) (*secondary.TestLogRecord, error) {
	var (
		taskID               sql.NullString
		createdAt, updatedAt timeCol
	)
	r := &secondary.TestLogRecord{}
	if err := s.Scan(&r.ID, &r.StoryID, &taskID, &r.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.TaskID = taskID.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByStory returns the story's logs, newest first.
func (r *TestLogRepository) ListByStory(ctx context.Context, storyID string, page secondary.Page) ([]*secondary.TestLogRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+testLogSelectCols+" FROM test_log WHERE story_id = ? ORDER BY created_at DESC"+limit),
		append([]any{storyID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list test logs", err)
	}
	out, err := collect(rows, scanTestLog)
	if err != nil {
		return nil, r.storeErr("scan test logs", err)
	}
	return out, nil
}

// GetByID retrieves a log by its ID.
func (r *TestLogRepository) GetByID(ctx context.Context, id string) (*secondary.TestLogRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+testLogSelectCols+" FROM test_log WHERE id = ?"), id)
	rec, err := scanTestLog(row)
	if err != nil {
		return nil, r.rowErr("test log", id, "get test log", err)
	}
	return rec, nil
}

// Create persists a new log.
func (r *TestLogRepository) Create(ctx context.Context, in secondary.TestLogInsert) (*secondary.TestLogRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q("INSERT INTO test_log (id, story_id, task_id, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING "+testLogSelectCols),
		r.newID(), in.StoryID, nullString(in.TaskID), in.Notes, now, now,
	)
	rec, err := scanTestLog(row)
	if err != nil {
		return nil, r.storeErr("create test log", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *TestLogRepository) Update(ctx context.Context, id string, patch secondary.TestLogPatch) (*secondary.TestLogRecord, error) {
	var s setList
	s.nullableText("task_id", patch.TaskID)
	s.text("notes", patch.Notes)

	rec, err := scanTestLog(r.update(ctx, "test_log", testLogSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("test log", id, "update test log", err)
	}
	return rec, nil
}

// Delete removes a log and returns the deleted row.
func (r *TestLogRepository) Delete(ctx context.Context, id string) (*secondary.TestLogRecord, error) {
	rec, err := scanTestLog(r.deleteReturning(ctx, r.drv.DB(), "test_log", testLogSelectCols, id))
	if err != nil {
		return nil, r.rowErr("test log", id, "delete test log", err)
	}
	return rec, nil
}

var _ secondary.TestLogRepository = (*TestLogRepository)(nil)
