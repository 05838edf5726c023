package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// StoryRepository implements secondary.StoryRepository.
type StoryRepository struct {
	base
}

// NewStoryRepository creates a new story repository.
func NewStoryRepository(drv driver.Driver) *StoryRepository {
	return &StoryRepository{base{drv: drv}}
}

const storySelectCols = "id, project_id, epic_id, title, user_story, acceptance_criteria, status, priority, created_at, updated_at"

func scanStory(s scanner) (*secondary.StoryRecord, error) {
	var (
		epicID               sql.NullString
		createdAt, updatedAt timeCol
	)
	r := &secondary.StoryRecord{}
	err := s.Scan(&r.ID, &r.ProjectID, &epicID, &r.Title, &r.UserStory, &r.AcceptanceCriteria,
		&r.Status, &r.Priority, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	r.EpicID = epicID.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

func (r *StoryRepository) listBy(ctx context.Context, col, val string, page secondary.Page) ([]*secondary.StoryRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+storySelectCols+" FROM story WHERE "+col+" = ? ORDER BY priority DESC, created_at DESC"+limit),
		append([]any{val}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list stories", err)
	}
	out, err := collect(rows, scanStory)
	if err != nil {
		return nil, r.storeErr("scan stories", err)
	}
	return out, nil
}

// ListByProject returns the project's stories by priority, then newest first.
func (r *StoryRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.StoryRecord, error) {
	return r.listBy(ctx, "project_id", projectID, page)
}

// ListByEpic returns the epic's stories by priority, then newest first.
func (r *StoryRepository) ListByEpic(ctx context.Context, epicID string, page secondary.Page) ([]*secondary.StoryRecord, error) {
	return r.listBy(ctx, "epic_id", epicID, page)
}

// GetByID retrieves a story by its ID.
func (r *StoryRepository) GetByID(ctx context.Context, id string) (*secondary.StoryRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+storySelectCols+" FROM story WHERE id = ?"), id)
	rec, err := scanStory(row)
	if err != nil {
		return nil, r.rowErr("story", id, "get story", err)
	}
	return rec, nil
}

// Create persists a new story.
func (r *StoryRepository) Create(ctx context.Context, in secondary.StoryInsert) (*secondary.StoryRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q(`INSERT INTO story (id, project_id, epic_id, title, user_story, acceptance_criteria, status, priority, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+storySelectCols),
		r.newID(), in.ProjectID, nullString(in.EpicID), in.Title, in.UserStory, in.AcceptanceCriteria,
		in.Status, in.Priority, now, now,
	)
	rec, err := scanStory(row)
	if err != nil {
		return nil, r.storeErr("create story", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *StoryRepository) Update(ctx context.Context, id string, patch secondary.StoryPatch) (*secondary.StoryRecord, error) {
	var s setList
	s.nullableText("epic_id", patch.EpicID)
	s.text("title", patch.Title)
	s.text("user_story", patch.UserStory)
	s.text("acceptance_criteria", patch.AcceptanceCriteria)
	s.text("status", patch.Status)
	if patch.Priority != nil {
		s.add("priority", *patch.Priority)
	}

	rec, err := scanStory(r.update(ctx, "story", storySelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("story", id, "update story", err)
	}
	return rec, nil
}

// Delete removes a story. It fails while tasks still reference it.
func (r *StoryRepository) Delete(ctx context.Context, id string) (*secondary.StoryRecord, error) {
	rec, err := scanStory(r.deleteReturning(ctx, r.drv.DB(), "story", storySelectCols, id))
	if err != nil {
		return nil, r.rowErr("story", id, "delete story", err)
	}
	return rec, nil
}

var _ secondary.StoryRepository = (*StoryRepository)(nil)
