package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// EpicRepository implements secondary.EpicRepository and
// secondary.EpicCascadeDeleter.
type EpicRepository struct {
	base
}

// NewEpicRepository creates a new epic repository.
func NewEpicRepository(drv driver.Driver) *EpicRepository {
	return &EpicRepository{base{drv: drv}}
}

const epicSelectCols = "id, project_id, title, description, order_no, created_at, updated_at"

func scanEpic(s scanner) (*secondary.EpicRecord, error) {
	var (
		desc                 sql.NullString
		createdAt, updatedAt timeCol
	)
	r := &secondary.EpicRecord{}
	if err := s.Scan(&r.ID, &r.ProjectID, &r.Title, &desc, &r.OrderNo, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Description = desc.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByProject returns the project's epics by order number, then age.
func (r *EpicRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.EpicRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+epicSelectCols+" FROM epic WHERE project_id = ? ORDER BY order_no ASC, created_at ASC"+limit),
		append([]any{projectID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list epics", err)
	}
	out, err := collect(rows, scanEpic)
	if err != nil {
		return nil, r.storeErr("scan epics", err)
	}
	return out, nil
}

// GetByID retrieves an epic by its ID.
func (r *EpicRepository) GetByID(ctx context.Context, id string) (*secondary.EpicRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+epicSelectCols+" FROM epic WHERE id = ?"), id)
	rec, err := scanEpic(row)
	if err != nil {
		return nil, r.rowErr("epic", id, "get epic", err)
	}
	return rec, nil
}

// Create persists a new epic with order number max+1 for its project (1 when
// the project has none). The project row is locked for the duration.
func (r *EpicRepository) Create(ctx context.Context, in secondary.EpicInsert) (*secondary.EpicRecord, error) {
	var rec *secondary.EpicRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var projectID string
		err := tx.QueryRowContext(ctx, r.q("SELECT id FROM project WHERE id = ?"+r.drv.ForUpdate()), in.ProjectID).Scan(&projectID)
		if err != nil {
			return r.rowErr("project", in.ProjectID, "lock project", err)
		}

		var next int
		err = tx.QueryRowContext(ctx, r.q("SELECT COALESCE(MAX(order_no), 0) + 1 FROM epic WHERE project_id = ?"), in.ProjectID).Scan(&next)
		if err != nil {
			return r.storeErr("compute epic order", err)
		}

		now := r.drv.Now()
		row := tx.QueryRowContext(ctx,
			r.q("INSERT INTO epic (id, project_id, title, description, order_no, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING "+epicSelectCols),
			r.newID(), in.ProjectID, in.Title, nullString(in.Description), next, now, now,
		)
		rec, err = scanEpic(row)
		if err != nil {
			return r.storeErr("create epic", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *EpicRepository) Update(ctx context.Context, id string, patch secondary.EpicPatch) (*secondary.EpicRecord, error) {
	var s setList
	s.text("title", patch.Title)
	s.nullableText("description", patch.Description)
	if patch.OrderNo != nil {
		s.add("order_no", *patch.OrderNo)
	}

	rec, err := scanEpic(r.update(ctx, "epic", epicSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("epic", id, "update epic", err)
	}
	return rec, nil
}

// Delete removes a single epic. It fails while stories still reference it.
func (r *EpicRepository) Delete(ctx context.Context, id string) (*secondary.EpicRecord, error) {
	rec, err := scanEpic(r.deleteReturning(ctx, r.drv.DB(), "epic", epicSelectCols, id))
	if err != nil {
		return nil, r.rowErr("epic", id, "delete epic", err)
	}
	return rec, nil
}

// DeleteCascade removes the epic, its stories and their tasks in one
// transaction. Nothing is removed when any step fails.
func (r *EpicRepository) DeleteCascade(ctx context.Context, epicID string) (*secondary.EpicCascadeResult, error) {
	res := &secondary.EpicCascadeResult{}
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var id string
		err := tx.QueryRowContext(ctx, r.q("SELECT id FROM epic WHERE id = ?"+r.drv.ForUpdate()), epicID).Scan(&id)
		if err != nil {
			return r.rowErr("epic", epicID, "lock epic", err)
		}

		res.StoryIDs, err = queryIDs(ctx, tx, r.q("SELECT id FROM story WHERE epic_id = ? ORDER BY priority DESC, created_at DESC"), epicID)
		if err != nil {
			return r.storeErr("list stories", err)
		}
		res.TaskIDs, err = queryIDs(ctx, tx,
			r.q("SELECT t.id FROM task t JOIN story s ON s.id = t.story_id WHERE s.epic_id = ? ORDER BY t.order_no ASC, t.created_at ASC"), epicID)
		if err != nil {
			return r.storeErr("list tasks", err)
		}

		if _, err := tx.ExecContext(ctx, r.q("DELETE FROM task WHERE story_id IN (SELECT id FROM story WHERE epic_id = ?)"), epicID); err != nil {
			return r.storeErr("delete tasks", err)
		}
		if _, err := tx.ExecContext(ctx, r.q("DELETE FROM story WHERE epic_id = ?"), epicID); err != nil {
			return r.storeErr("delete stories", err)
		}
		res.Epic, err = scanEpic(r.deleteReturning(ctx, tx, "epic", epicSelectCols, epicID))
		if err != nil {
			return r.rowErr("epic", epicID, "delete epic", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func queryIDs(ctx context.Context, q driver.Querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var (
	_ secondary.EpicRepository     = (*EpicRepository)(nil)
	_ secondary.EpicCascadeDeleter = (*EpicRepository)(nil)
)
