package app

import (
	"context"
	"log/slog"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// AnalysisServiceImpl implements the AnalysisService interface.
type AnalysisServiceImpl struct {
	analysisRepo secondary.AnalysisDocumentRepository
	scope        *OwnerScope
	logger       *slog.Logger
}

// NewAnalysisService creates a new AnalysisService with injected dependencies.
func NewAnalysisService(
	analysisRepo secondary.AnalysisDocumentRepository,
	scope *OwnerScope,
	logger *slog.Logger,
) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		analysisRepo: analysisRepo,
		scope:        scope,
		logger:       loggerOrDefault(logger),
	}
}

// GetAnalysis returns the project's analysis document, creating it if missing.
func (s *AnalysisServiceImpl) GetAnalysis(ctx context.Context, projectID string) (*primary.AnalysisDocument, error) {
	if _, err := s.scope.Project(ctx, projectID); err != nil {
		return nil, err
	}
	rec, err := ensureAnalysis(ctx, s.analysisRepo, s.logger, projectID)
	if err != nil {
		return nil, err
	}
	return recordToAnalysis(rec), nil
}

// UpdateAnalysis trims every given field and saves them.
func (s *AnalysisServiceImpl) UpdateAnalysis(ctx context.Context, req primary.UpdateAnalysisRequest) (*primary.AnalysisDocument, error) {
	if _, err := s.scope.Project(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	doc, err := ensureAnalysis(ctx, s.analysisRepo, s.logger, req.ProjectID)
	if err != nil {
		return nil, err
	}

	rec, err := s.analysisRepo.Update(ctx, doc.ID, secondary.AnalysisDocumentPatch{
		Pain:        trimmed(req.Pain),
		Knowledge:   trimmed(req.Knowledge),
		Context:     trimmed(req.Context),
		LegacyNotes: trimmed(req.LegacyNotes),
		ScopeIn:     trimmed(req.ScopeIn),
		ScopeOut:    trimmed(req.ScopeOut),
		IsDone:      req.IsDone,
	})
	if err != nil {
		return nil, err
	}
	return recordToAnalysis(rec), nil
}

// ensureAnalysis returns the analysis document of a project, creating an empty
// one when there is none.
func ensureAnalysis(ctx context.Context, repo secondary.AnalysisDocumentRepository, logger *slog.Logger, projectID string) (*secondary.AnalysisDocumentRecord, error) {
	docs, err := repo.ListByProject(ctx, projectID, secondary.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs[0], nil
	}
	rec, err := repo.Create(ctx, secondary.AnalysisDocumentInsert{ProjectID: projectID})
	if err != nil {
		// A project holds one document. Another writer may have created it
		// between the list and the insert.
		if docs, listErr := repo.ListByProject(ctx, projectID, secondary.Page{Limit: 1}); listErr == nil && len(docs) > 0 {
			return docs[0], nil
		}
		return nil, err
	}
	logger.InfoContext(ctx, "analysis document created for project", "project", projectID)
	return rec, nil
}

func recordToAnalysis(r *secondary.AnalysisDocumentRecord) *primary.AnalysisDocument {
	return &primary.AnalysisDocument{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Pain:        r.Pain,
		Knowledge:   r.Knowledge,
		Context:     r.Context,
		LegacyNotes: r.LegacyNotes,
		ScopeIn:     r.ScopeIn,
		ScopeOut:    r.ScopeOut,
		IsDone:      r.IsDone,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure AnalysisServiceImpl implements the interface
var _ primary.AnalysisService = (*AnalysisServiceImpl)(nil)
