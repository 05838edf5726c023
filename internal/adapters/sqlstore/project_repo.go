package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository.
type ProjectRepository struct {
	base
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(drv driver.Driver) *ProjectRepository {
	return &ProjectRepository{base{drv: drv}}
}

const projectSelectCols = "id, owner_id, domain_id, name, type, status, active, drive_folder_url, primary_doc_url, pause_condition, created_at, updated_at"

// scanProject scans a project row into a ProjectRecord.
func scanProject(s scanner) (*secondary.ProjectRecord, error) {
	var (
		domainID, driveURL, docURL, pause sql.NullString
		createdAt, updatedAt              timeCol
	)
	r := &secondary.ProjectRecord{}
	err := s.Scan(
		&r.ID, &r.OwnerID, &domainID, &r.Name, &r.Type, &r.Status, &r.Active,
		&driveURL, &docURL, &pause, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.DomainID = domainID.String
	r.DriveFolderURL = driveURL.String
	r.PrimaryDocURL = docURL.String
	r.PauseCondition = pause.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByOwner returns the owner's projects, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.ProjectRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+projectSelectCols+" FROM project WHERE owner_id = ? ORDER BY created_at DESC"+limit),
		append([]any{ownerID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list projects", err)
	}
	out, err := collect(rows, scanProject)
	if err != nil {
		return nil, r.storeErr("scan projects", err)
	}
	return out, nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+projectSelectCols+" FROM project WHERE id = ?"), id)
	rec, err := scanProject(row)
	if err != nil {
		return nil, r.rowErr("project", id, "get project", err)
	}
	return rec, nil
}

// Create persists a new project.
func (r *ProjectRepository) Create(ctx context.Context, in secondary.ProjectInsert) (*secondary.ProjectRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q(`INSERT INTO project (id, owner_id, domain_id, name, type, status, active, drive_folder_url, primary_doc_url, pause_condition, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+projectSelectCols),
		r.newID(), in.OwnerID, nullString(in.DomainID), in.Name, in.Type, in.Status, in.Active,
		nullString(in.DriveFolderURL), nullString(in.PrimaryDocURL), nullString(in.PauseCondition), now, now,
	)
	rec, err := scanProject(row)
	if err != nil {
		return nil, r.storeErr("create project", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch secondary.ProjectPatch) (*secondary.ProjectRecord, error) {
	var s setList
	s.nullableText("domain_id", patch.DomainID)
	s.text("name", patch.Name)
	s.text("status", patch.Status)
	if patch.Active != nil {
		s.add("active", *patch.Active)
	}
	s.nullableText("drive_folder_url", patch.DriveFolderURL)
	s.nullableText("primary_doc_url", patch.PrimaryDocURL)
	s.nullableText("pause_condition", patch.PauseCondition)

	rec, err := scanProject(r.update(ctx, "project", projectSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("project", id, "update project", err)
	}
	return rec, nil
}

// Delete removes a project. Children are not removed; the store rejects the
// delete while any remain.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	rec, err := scanProject(r.deleteReturning(ctx, r.drv.DB(), "project", projectSelectCols, id))
	if err != nil {
		return nil, r.rowErr("project", id, "delete project", err)
	}
	return rec, nil
}

var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
