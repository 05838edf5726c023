package app

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/example/core2/internal/core/project"
	"github.com/example/core2/internal/core/story"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo  secondary.ProjectRepository
	analysisRepo secondary.AnalysisDocumentRepository
	epicRepo     secondary.EpicRepository
	storyRepo    secondary.StoryRepository
	state        secondary.StateStore
	scope        *OwnerScope
	logger       *slog.Logger
}

// NewProjectService creates a new ProjectService with injected dependencies.
// state may be nil, in which case the last opened project is not recorded.
func NewProjectService(
	projectRepo secondary.ProjectRepository,
	analysisRepo secondary.AnalysisDocumentRepository,
	epicRepo secondary.EpicRepository,
	storyRepo secondary.StoryRepository,
	state secondary.StateStore,
	scope *OwnerScope,
	logger *slog.Logger,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		analysisRepo: analysisRepo,
		epicRepo:     epicRepo,
		storyRepo:    storyRepo,
		state:        state,
		scope:        scope,
		logger:       loggerOrDefault(logger),
	}
}

// CreateProject creates a project and its analysis document.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.CreateProjectResponse, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	guard := project.CanCreateProject(project.CreateProjectContext{
		OwnerID: owner,
		Name:    req.Name,
		Type:    req.Type,
		Status:  req.Status,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if req.DomainID != "" {
		if _, err := s.scope.Domain(ctx, req.DomainID); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = project.StatusIntel
	}
	rec, err := s.projectRepo.Create(ctx, secondary.ProjectInsert{
		OwnerID:        owner,
		DomainID:       req.DomainID,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		Status:         status,
		Active:         true,
		DriveFolderURL: strings.TrimSpace(req.DriveFolderURL),
		PrimaryDocURL:  strings.TrimSpace(req.PrimaryDocURL),
		PauseCondition: strings.TrimSpace(req.PauseCondition),
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "project created", "project", rec.ID)

	resp := &primary.CreateProjectResponse{
		ProjectID: rec.ID,
		Project:   recordToProject(rec),
	}
	// The document is healed on open if this fails.
	doc, err := s.analysisRepo.Create(ctx, secondary.AnalysisDocumentInsert{ProjectID: rec.ID})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create analysis document", "project", rec.ID, "error", err)
		return resp, nil
	}
	resp.Analysis = recordToAnalysis(doc)
	return resp, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	rec, err := s.scope.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(rec), nil
}

// ListProjects lists the caller's projects, optionally filtered.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.projectRepo.ListByOwner(ctx, owner, all)
	if err != nil {
		return nil, err
	}

	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = recordToProject(r)
	}
	if filters.DomainID != "" {
		projects = project.FilterByDomain(projects, projectDomain, filters.DomainID)
	}
	return project.SearchByName(projects, projectName, filters.Query), nil
}

// OpenProject loads the project screen. The analysis document, epics and
// stories are fetched concurrently; a failing leg does not discard the others.
func (s *ProjectServiceImpl) OpenProject(ctx context.Context, projectID string) (*primary.ProjectView, error) {
	rec, err := s.scope.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var (
		doc     *secondary.AnalysisDocumentRecord
		epics   []*secondary.EpicRecord
		stories []*secondary.StoryRecord
		g       errgroup.Group
	)
	g.Go(func() error {
		var err error
		doc, err = ensureAnalysis(ctx, s.analysisRepo, s.logger, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		epics, err = s.epicRepo.ListByProject(ctx, projectID, all)
		return err
	})
	g.Go(func() error {
		var err error
		stories, err = s.storyRepo.ListByProject(ctx, projectID, all)
		return err
	})
	loadErr := g.Wait()
	if loadErr != nil {
		s.logger.WarnContext(ctx, "project view partially loaded", "project", projectID, "error", loadErr)
	}

	view := &primary.ProjectView{
		Project: recordToProject(rec),
		Epics:   make([]*primary.Epic, len(epics)),
		Stories: make([]*primary.Story, len(stories)),
	}
	if doc != nil {
		view.Analysis = recordToAnalysis(doc)
	}
	epicIDs := make([]string, len(epics))
	for i, e := range epics {
		view.Epics[i] = recordToEpic(e)
		epicIDs[i] = e.ID
	}
	for i, st := range stories {
		view.Stories[i] = recordToStory(st)
	}
	view.StoriesByEpic = story.GroupByEpic(view.Stories, storyEpic, epicIDs)

	s.rememberProject(ctx, projectID)
	return view, loadErr
}

// UpdateProject applies a partial update.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) (*primary.Project, error) {
	guard := project.CanUpdateProject(project.UpdateProjectContext{Name: req.Name, Status: req.Status})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if _, err := s.scope.Project(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if req.DomainID != nil && *req.DomainID != "" {
		if _, err := s.scope.Domain(ctx, *req.DomainID); err != nil {
			return nil, err
		}
	}
	rec, err := s.projectRepo.Update(ctx, req.ProjectID, secondary.ProjectPatch{
		DomainID:       req.DomainID,
		Name:           trimmed(req.Name),
		Status:         req.Status,
		Active:         req.Active,
		DriveFolderURL: trimmed(req.DriveFolderURL),
		PrimaryDocURL:  trimmed(req.PrimaryDocURL),
		PauseCondition: trimmed(req.PauseCondition),
	})
	if err != nil {
		return nil, err
	}
	return recordToProject(rec), nil
}

// DeleteProject deletes a project.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.scope.Project(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "project deleted", "project", projectID)
	return nil
}

// rememberProject records the last opened project. Failures only log.
func (s *ProjectServiceImpl) rememberProject(ctx context.Context, projectID string) {
	if s.state == nil {
		return
	}
	st, err := s.state.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load state", "error", err)
		return
	}
	if st.LastProjectID == projectID {
		return
	}
	st.LastProjectID = projectID
	if err := s.state.Save(ctx, st); err != nil {
		s.logger.WarnContext(ctx, "failed to save last project", "error", err)
	}
}

func projectDomain(p *primary.Project) string { return p.DomainID }
func projectName(p *primary.Project) string   { return p.Name }

func recordToProject(r *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		DomainID:       r.DomainID,
		Name:           r.Name,
		Type:           r.Type,
		Status:         r.Status,
		Active:         r.Active,
		DriveFolderURL: r.DriveFolderURL,
		PrimaryDocURL:  r.PrimaryDocURL,
		PauseCondition: r.PauseCondition,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
