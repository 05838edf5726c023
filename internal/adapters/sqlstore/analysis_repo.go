package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// AnalysisDocumentRepository implements secondary.AnalysisDocumentRepository.
type AnalysisDocumentRepository struct {
	base
}

// NewAnalysisDocumentRepository creates a new analysis document repository.
func NewAnalysisDocumentRepository(drv driver.Driver) *AnalysisDocumentRepository {
	return &AnalysisDocumentRepository{base{drv: drv}}
}

const analysisSelectCols = "id, project_id, pain, knowledge, context, legacy_notes, scope_in, scope_out, is_done, created_at, updated_at"

func scanAnalysisDocument(s scanner) (*secondary.AnalysisDocumentRecord, error) {
	var (
		pain, knowledge, ctxText, legacy, scopeIn, scopeOut sql.NullString
		createdAt, updatedAt                                timeCol
	)
	r := &secondary.AnalysisDocumentRecord{}
	err := s.Scan(&r.ID, &r.ProjectID, &pain, &knowledge, &ctxText, &legacy, &scopeIn, &scopeOut, &r.IsDone, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	r.Pain = pain.String
	r.Knowledge = knowledge.String
	r.Context = ctxText.String
	r.LegacyNotes = legacy.String
	r.ScopeIn = scopeIn.String
	r.ScopeOut = scopeOut.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByProject returns the project's documents, newest first.
func (r *AnalysisDocumentRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.AnalysisDocumentRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+analysisSelectCols+" FROM analysis_document WHERE project_id = ? ORDER BY created_at DESC"+limit),
		append([]any{projectID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list analysis documents", err)
	}
	out, err := collect(rows, scanAnalysisDocument)
	if err != nil {
		return nil, r.storeErr("scan analysis documents", err)
	}
	return out, nil
}

// GetByID retrieves a document by its ID.
func (r *AnalysisDocumentRepository) GetByID(ctx context.Context, id string) (*secondary.AnalysisDocumentRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+analysisSelectCols+" FROM analysis_document WHERE id = ?"), id)
	rec, err := scanAnalysisDocument(row)
	if err != nil {
		return nil, r.rowErr("analysis document", id, "get analysis document", err)
	}
	return rec, nil
}

// Create persists a new document.
func (r *AnalysisDocumentRepository) Create(ctx context.Context, in secondary.AnalysisDocumentInsert) (*secondary.AnalysisDocumentRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q(`INSERT INTO analysis_document (id, project_id, pain, knowledge, context, legacy_notes, scope_in, scope_out, is_done, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+analysisSelectCols),
		r.newID(), in.ProjectID, nullString(in.Pain), nullString(in.Knowledge), nullString(in.Context),
		nullString(in.LegacyNotes), nullString(in.ScopeIn), nullString(in.ScopeOut), in.IsDone, now, now,
	)
	rec, err := scanAnalysisDocument(row)
	if err != nil {
		return nil, r.storeErr("create analysis document", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *AnalysisDocumentRepository) Update(ctx context.Context, id string, patch secondary.AnalysisDocumentPatch) (*secondary.AnalysisDocumentRecord, error) {
	var s setList
	s.nullableText("pain", patch.Pain)
	s.nullableText("knowledge", patch.Knowledge)
	s.nullableText("context", patch.Context)
	s.nullableText("legacy_notes", patch.LegacyNotes)
	s.nullableText("scope_in", patch.ScopeIn)
	s.nullableText("scope_out", patch.ScopeOut)
	if patch.IsDone != nil {
		s.add("is_done", *patch.IsDone)
	}

	rec, err := scanAnalysisDocument(r.update(ctx, "analysis_document", analysisSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("analysis document", id, "update analysis document", err)
	}
	return rec, nil
}

// Delete removes a document and returns the deleted row.
func (r *AnalysisDocumentRepository) Delete(ctx context.Context, id string) (*secondary.AnalysisDocumentRecord, error) {
	rec, err := scanAnalysisDocument(r.deleteReturning(ctx, r.drv.DB(), "analysis_document", analysisSelectCols, id))
	if err != nil {
		return nil, r.rowErr("analysis document", id, "delete analysis document", err)
	}
	return rec, nil
}

var _ secondary.AnalysisDocumentRepository = (*AnalysisDocumentRepository)(nil)
