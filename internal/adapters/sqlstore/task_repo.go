package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository.
type TaskRepository struct {
	base
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(drv driver.Driver) *TaskRepository {
	return &TaskRepository{base{drv: drv}}
}

const taskSelectCols = "id, story_id, title, note, status, start_at, end_at, order_no, created_at, updated_at"

// scanTask scans a task row into a TaskRecord.
func scanTask(s scanner) (*secondary.TaskRecord, error) {
	var (
		note                 sql.NullString
		startAt, endAt       timeCol
		createdAt, updatedAt timeCol
	)
	r := &secondary.TaskRecord{}
	err := s.Scan(&r.ID, &r.StoryID, &r.Title, &note, &r.Status, &startAt, &endAt, &r.OrderNo, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	r.Note = note.String
	r.StartAt = startAt.ptr()
	r.EndAt = endAt.ptr()
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByStory returns the story's tasks by order number, then age.
func (r *TaskRepository) ListByStory(ctx context.Context, storyID string, page secondary.Page) ([]*secondary.TaskRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+taskSelectCols+" FROM task WHERE story_id = ? ORDER BY order_no ASC, created_at ASC"+limit),
		append([]any{storyID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list tasks", err)
	}
	out, err := collect(rows, scanTask)
	if err != nil {
		return nil, r.storeErr("scan tasks", err)
	}
	return out, nil
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+taskSelectCols+" FROM task WHERE id = ?"), id)
	rec, err := scanTask(row)
	if err != nil {
		return nil, r.rowErr("task", id, "get task", err)
	}
	return rec, nil
}

// Create persists a new task with order number max+1 for its story (1 when the
// story has none). The story row is locked for the duration.
func (r *TaskRepository) Create(ctx context.Context, in secondary.TaskInsert) (*secondary.TaskRecord, error) {
	var rec *secondary.TaskRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var storyID string
		err := tx.QueryRowContext(ctx, r.q("SELECT id FROM story WHERE id = ?"+r.drv.ForUpdate()), in.StoryID).Scan(&storyID)
		if err != nil {
			return r.rowErr("story", in.StoryID, "lock story", err)
		}

		var next int
		err = tx.QueryRowContext(ctx, r.q("SELECT COALESCE(MAX(order_no), 0) + 1 FROM task WHERE story_id = ?"), in.StoryID).Scan(&next)
		if err != nil {
			return r.storeErr("compute task order", err)
		}

		now := r.drv.Now()
		row := tx.QueryRowContext(ctx,
			r.q(`INSERT INTO task (id, story_id, title, note, status, start_at, end_at, order_no, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+taskSelectCols),
			r.newID(), in.StoryID, in.Title, nullString(in.Note), in.Status,
			nullTime(in.StartAt), nullTime(in.EndAt), next, now, now,
		)
		rec, err = scanTask(row)
		if err != nil {
			return r.storeErr("create task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *TaskRepository) Update(ctx context.Context, id string, patch secondary.TaskPatch) (*secondary.TaskRecord, error) {
	var s setList
	s.text("title", patch.Title)
	s.nullableText("note", patch.Note)
	s.text("status", patch.Status)
	switch {
	case patch.ClearStartAt:
		s.add("start_at", sql.NullTime{})
	case patch.StartAt != nil:
		s.add("start_at", nullTime(patch.StartAt))
	}
	if patch.EndAt != nil {
		s.add("end_at", nullTime(patch.EndAt))
	}
	if patch.OrderNo != nil {
		s.add("order_no", *patch.OrderNo)
	}

	rec, err := scanTask(r.update(ctx, "task", taskSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("task", id, "update task", err)
	}
	return rec, nil
}

// Delete removes a task and returns the deleted row.
func (r *TaskRepository) Delete(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	rec, err := scanTask(r.deleteReturning(ctx, r.drv.DB(), "task", taskSelectCols, id))
	if err != nil {
		return nil, r.rowErr("task", id, "delete task", err)
	}
	return rec, nil
}

var _ secondary.TaskRepository = (*TaskRepository)(nil)
