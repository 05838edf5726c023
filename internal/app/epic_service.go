package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/core2/internal/core/epic"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// EpicServiceImpl implements the EpicService interface.
type EpicServiceImpl struct {
	epicRepo secondary.EpicRepository
	cascade  *EpicCascade
	scope    *OwnerScope
	logger   *slog.Logger
}

// NewEpicService creates a new EpicService with injected dependencies.
func NewEpicService(epicRepo secondary.EpicRepository, cascade *EpicCascade, scope *OwnerScope, logger *slog.Logger) *EpicServiceImpl {
	return &EpicServiceImpl{
		epicRepo: epicRepo,
		cascade:  cascade,
		scope:    scope,
		logger:   loggerOrDefault(logger),
	}
}

// CreateEpic creates an epic; the store assigns its order number.
func (s *EpicServiceImpl) CreateEpic(ctx context.Context, req primary.CreateEpicRequest) (*primary.Epic, error) {
	guard := epic.CanSaveEpic(epic.SaveEpicContext{ProjectID: req.ProjectID, Title: req.Title})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if _, err := s.scope.Project(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	rec, err := s.epicRepo.Create(ctx, secondary.EpicInsert{
		ProjectID:   req.ProjectID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "epic created", "epic", rec.ID, "order", rec.OrderNo)
	return recordToEpic(rec), nil
}

// GetEpic retrieves an epic by ID.
func (s *EpicServiceImpl) GetEpic(ctx context.Context, epicID string) (*primary.Epic, error) {
	rec, err := s.scope.Epic(ctx, epicID)
	if err != nil {
		return nil, err
	}
	return recordToEpic(rec), nil
}

// ListEpics lists a project's epics in order.
func (s *EpicServiceImpl) ListEpics(ctx context.Context, projectID string) ([]*primary.Epic, error) {
	if _, err := s.scope.Project(ctx, projectID); err != nil {
		return nil, err
	}
	records, err := s.epicRepo.ListByProject(ctx, projectID, all)
	if err != nil {
		return nil, err
	}
	epics := make([]*primary.Epic, len(records))
	for i, r := range records {
		epics[i] = recordToEpic(r)
	}
	return epics, nil
}

// UpdateEpic applies a partial update.
func (s *EpicServiceImpl) UpdateEpic(ctx context.Context, req primary.UpdateEpicRequest) (*primary.Epic, error) {
	if req.Title != nil {
		guard := epic.CanSaveEpic(epic.SaveEpicContext{Existing: true, Title: *req.Title})
		if err := guard.Error(); err != nil {
			return nil, err
		}
	}
	if _, err := s.scope.Epic(ctx, req.EpicID); err != nil {
		return nil, err
	}
	rec, err := s.epicRepo.Update(ctx, req.EpicID, secondary.EpicPatch{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		OrderNo:     req.OrderNo,
	})
	if err != nil {
		return nil, err
	}
	return recordToEpic(rec), nil
}

// DeleteEpic removes the epic with its stories and tasks. Stores that support
// it do this in one transaction; otherwise the sequential cascade runs.
func (s *EpicServiceImpl) DeleteEpic(ctx context.Context, epicID string) (*primary.DeleteEpicResponse, error) {
	if _, err := s.scope.Epic(ctx, epicID); err != nil {
		return nil, err
	}
	if deleter, ok := s.epicRepo.(secondary.EpicCascadeDeleter); ok {
		res, err := deleter.DeleteCascade(ctx, epicID)
		if err != nil {
			return nil, err
		}
		s.logger.DebugContext(ctx, "epic cascade deleted", "epic", epicID,
			"stories", len(res.StoryIDs), "tasks", len(res.TaskIDs))
		return &primary.DeleteEpicResponse{
			EpicID:        res.Epic.ID,
			StoryIDs:      res.StoryIDs,
			TaskIDs:       res.TaskIDs,
			Transactional: true,
		}, nil
	}
	return s.cascade.Run(ctx, epicID)
}

func recordToEpic(r *secondary.EpicRecord) *primary.Epic {
	return &primary.Epic{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		OrderNo:     r.OrderNo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure EpicServiceImpl implements the interface
var _ primary.EpicService = (*EpicServiceImpl)(nil)
