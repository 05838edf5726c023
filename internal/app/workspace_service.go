package app

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/example/core2/internal/core/project"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// WorkspaceServiceImpl implements the WorkspaceService interface.
type WorkspaceServiceImpl struct {
	projectRepo secondary.ProjectRepository
	domainRepo  secondary.DomainRepository
	storyRepo   secondary.StoryRepository
	state       secondary.StateStore
	logger      *slog.Logger
}

// NewWorkspaceService creates a new WorkspaceService with injected dependencies.
func NewWorkspaceService(
	projectRepo secondary.ProjectRepository,
	domainRepo secondary.DomainRepository,
	storyRepo secondary.StoryRepository,
	state secondary.StateStore,
	logger *slog.Logger,
) *WorkspaceServiceImpl {
	return &WorkspaceServiceImpl{
		projectRepo: projectRepo,
		domainRepo:  domainRepo,
		storyRepo:   storyRepo,
		state:       state,
		logger:      loggerOrDefault(logger),
	}
}

// LoadHome loads projects and domains concurrently, then the stories of the
// default project.
func (s *WorkspaceServiceImpl) LoadHome(ctx context.Context) (*primary.HomeView, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}

	var (
		projects []*secondary.ProjectRecord
		domains  []*secondary.DomainRecord
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListByOwner(ctx, owner, all)
		return err
	})
	g.Go(func() error {
		var err error
		domains, err = s.domainRepo.ListByOwner(ctx, owner, all)
		return err
	})
	loadErr := g.Wait()

	view := &primary.HomeView{
		Projects:         make([]*primary.Project, len(projects)),
		Domains:          make([]*primary.Domain, len(domains)),
		SelectedDomainID: project.NoDomain,
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		view.Projects[i] = recordToProject(p)
		ids[i] = p.ID
	}
	for i, d := range domains {
		view.Domains[i] = recordToDomain(d)
	}

	view.SelectedProjectID = project.PickDefault(ids, s.lastProjectID(ctx))
	if view.SelectedProjectID == "" {
		return view, loadErr
	}
	for _, p := range view.Projects {
		if p.ID == view.SelectedProjectID && p.DomainID != "" {
			view.SelectedDomainID = p.DomainID
		}
	}

	stories, err := s.storyRepo.ListByProject(ctx, view.SelectedProjectID, all)
	if err != nil {
		return view, errors.Join(loadErr, err)
	}
	view.Stories = make([]*primary.Story, len(stories))
	for i, st := range stories {
		view.Stories[i] = recordToStory(st)
	}
	return view, loadErr
}

func (s *WorkspaceServiceImpl) lastProjectID(ctx context.Context) string {
	if s.state == nil {
		return ""
	}
	st, err := s.state.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load state", "error", err)
		return ""
	}
	return st.LastProjectID
}

// Ensure WorkspaceServiceImpl implements the interface
var _ primary.WorkspaceService = (*WorkspaceServiceImpl)(nil)
