package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// DailyTaskRepository implements secondary.DailyTaskRepository.
type DailyTaskRepository struct {
	base
}

// NewDailyTaskRepository creates a new daily task repository.
func NewDailyTaskRepository(drv driver.Driver) *DailyTaskRepository {
	return &DailyTaskRepository{base{drv: drv}}
}

const dailyTaskSelectCols = "id, owner_id, title, notes, start_at, end_at, kind, created_at, updated_at"

func scanDailyTask(s scanner) (*secondary.DailyTaskRecord, error) {
	var (
		notes                sql.NullString
		startAt, endAt       timeCol
		createdAt, updatedAt timeCol
	)
	r := &secondary.DailyTaskRecord{}
	err := s.Scan(&r.ID, &r.OwnerID, &r.Title, &notes, &startAt, &endAt, &r.Kind, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	r.Notes = notes.String
	r.StartAt = startAt.Time
	r.EndAt = endAt.Time
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

func (r *DailyTaskRepository) list(ctx context.Context, where string, args []any, page secondary.Page) ([]*secondary.DailyTaskRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+dailyTaskSelectCols+" FROM daily_task WHERE "+where+" ORDER BY start_at ASC, created_at ASC"+limit),
		append(args, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list daily tasks", err)
	}
	out, err := collect(rows, scanDailyTask)
	if err != nil {
		return nil, r.storeErr("scan daily tasks", err)
	}
	return out, nil
}

// ListByOwner returns the owner's entries by start, then age.
func (r *DailyTaskRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.DailyTaskRecord, error) {
	return r.list(ctx, "owner_id = ?", []any{ownerID}, page)
}

// ListByOwnerAndRange returns entries starting within [from, to].
func (r *DailyTaskRepository) ListByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time, page secondary.Page) ([]*secondary.DailyTaskRecord, error) {
	return r.list(ctx, "owner_id = ? AND start_at >= ? AND start_at <= ?", []any{ownerID, from.UTC(), to.UTC()}, page)
}

// GetByID retrieves an entry by its ID.
func (r *DailyTaskRepository) GetByID(ctx context.Context, id string) (*secondary.DailyTaskRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+dailyTaskSelectCols+" FROM daily_task WHERE id = ?"), id)
	rec, err := scanDailyTask(row)
	if err != nil {
		return nil, r.rowErr("daily task", id, "get daily task", err)
	}
	return rec, nil
}

// Create persists a new entry.
func (r *DailyTaskRepository) Create(ctx context.Context, in secondary.DailyTaskInsert) (*secondary.DailyTaskRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q(`INSERT INTO daily_task (id, owner_id, title, notes, start_at, end_at, kind, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+dailyTaskSelectCols),
		r.newID(), in.OwnerID, in.Title, nullString(in.Notes), in.StartAt.UTC(), in.EndAt.UTC(), in.Kind, now, now,
	)
	rec, err := scanDailyTask(row)
	if err != nil {
		return nil, r.storeErr("create daily task", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *DailyTaskRepository) Update(ctx context.Context, id string, patch secondary.DailyTaskPatch) (*secondary.DailyTaskRecord, error) {
	var s setList
	s.text("title", patch.Title)
	s.nullableText("notes", patch.Notes)
	if patch.StartAt != nil {
		s.add("start_at", patch.StartAt.UTC())
	}
	if patch.EndAt != nil {
		s.add("end_at", patch.EndAt.UTC())
	}
	s.text("kind", patch.Kind)

	rec, err := scanDailyTask(r.update(ctx, "daily_task", dailyTaskSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("daily task", id, "update daily task", err)
	}
	return rec, nil
}

// Delete removes an entry and returns the deleted row.
func (r *DailyTaskRepository) Delete(ctx context.Context, id string) (*secondary.DailyTaskRecord, error) {
	rec, err := scanDailyTask(r.deleteReturning(ctx, r.drv.DB(), "daily_task", dailyTaskSelectCols, id))
	if err != nil {
		return nil, r.rowErr("daily task", id, "delete daily task", err)
	}
	return rec, nil
}

var _ secondary.DailyTaskRepository = (*DailyTaskRepository)(nil)
