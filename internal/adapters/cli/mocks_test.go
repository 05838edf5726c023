package cli

import (
	"context"
	"errors"
	"time"

	"github.com/example/core2/internal/ports/primary"
)

var errNotImplemented = errors.New("not implemented in adapter")

// mockDomainService implements primary.DomainService for testing
type mockDomainService struct {
	domains   []*primary.Domain
	deleteErr error

	lastUpdateReq primary.UpdateDomainRequest
	deletedID     string
}

func (m *mockDomainService) CreateDomain(ctx context.Context, req primary.CreateDomainRequest) (*primary.Domain, error) {
	return &primary.Domain{ID: "DOM-1", Name: req.Name, Code: req.Code}, nil
}

func (m *mockDomainService) GetDomain(ctx context.Context, domainID string) (*primary.Domain, error) {
	for _, d := range m.domains {
		if d.ID == domainID {
			return d, nil
		}
	}
	return nil, errors.New("domain not found")
}

func (m *mockDomainService) ListDomains(ctx context.Context) ([]*primary.Domain, error) {
	return m.domains, nil
}

func (m *mockDomainService) UpdateDomain(ctx context.Context, req primary.UpdateDomainRequest) (*primary.Domain, error) {
	m.lastUpdateReq = req
	return &primary.Domain{ID: req.DomainID}, nil
}

func (m *mockDomainService) DeleteDomain(ctx context.Context, domainID string) error {
	m.deletedID = domainID
	return m.deleteErr
}

// mockProjectService implements primary.ProjectService for testing
type mockProjectService struct {
	openFn   func(ctx context.Context, projectID string) (*primary.ProjectView, error)
	projects []*primary.Project

	lastFilters primary.ProjectFilters
}

func (m *mockProjectService) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.CreateProjectResponse, error) {
	p := &primary.Project{ID: "PROJ-1", Name: req.Name, Type: req.Type, Status: "INTEL"}
	return &primary.CreateProjectResponse{
		ProjectID: p.ID,
		Project:   p,
		Analysis:  &primary.AnalysisDocument{ID: "AN-1", ProjectID: p.ID},
	}, nil
}

func (m *mockProjectService) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	for _, p := range m.projects {
		if p.ID == projectID {
			return p, nil
		}
	}
	return nil, errors.New("project not found")
}

func (m *mockProjectService) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	m.lastFilters = filters
	return m.projects, nil
}

func (m *mockProjectService) OpenProject(ctx context.Context, projectID string) (*primary.ProjectView, error) {
	if m.openFn != nil {
		return m.openFn(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *mockProjectService) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) (*primary.Project, error) {
	return &primary.Project{ID: req.ProjectID, Status: "DESIGN"}, nil
}

func (m *mockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	return nil
}

// mockEpicService implements primary.EpicService for testing
type mockEpicService struct {
	deleteCalls int
	deleteErr   error
}

func (m *mockEpicService) CreateEpic(ctx context.Context, req primary.CreateEpicRequest) (*primary.Epic, error) {
	return &primary.Epic{ID: "EPIC-1", ProjectID: req.ProjectID, Title: req.Title, OrderNo: 3}, nil
}

func (m *mockEpicService) GetEpic(ctx context.Context, epicID string) (*primary.Epic, error) {
	return &primary.Epic{ID: epicID, Title: "Billing"}, nil
}

func (m *mockEpicService) ListEpics(ctx context.Context, projectID string) ([]*primary.Epic, error) {
	return nil, nil
}

func (m *mockEpicService) UpdateEpic(ctx context.Context, req primary.UpdateEpicRequest) (*primary.Epic, error) {
	return &primary.Epic{ID: req.EpicID}, nil
}

func (m *mockEpicService) DeleteEpic(ctx context.Context, epicID string) (*primary.DeleteEpicResponse, error) {
	m.deleteCalls++
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return &primary.DeleteEpicResponse{
		EpicID:        epicID,
		StoryIDs:      []string{"S1", "S2"},
		TaskIDs:       []string{"T1", "T2", "T3"},
		Transactional: true,
	}, nil
}

// mockTaskService implements primary.TaskService for testing
type mockTaskService struct {
	tasks   []*primary.Task
	columns []primary.TaskColumn
	moveErr error

	movedHeld   []*primary.Task
	movedID     string
	movedStatus string
}

func (m *mockTaskService) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*primary.Task, error) {
	return &primary.Task{ID: "TASK-1", StoryID: req.StoryID, Title: req.Title, Status: "ICEBOX"}, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, taskID string) (*primary.Task, error) {
	for _, t := range m.tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return nil, errors.New("task not found")
}

func (m *mockTaskService) ListTasks(ctx context.Context, storyID string) ([]*primary.Task, error) {
	return m.tasks, nil
}

func (m *mockTaskService) Board(ctx context.Context, storyID string) ([]primary.TaskColumn, error) {
	return m.columns, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, req primary.UpdateTaskRequest) (*primary.Task, error) {
	return &primary.Task{ID: req.TaskID}, nil
}

func (m *mockTaskService) MoveTask(ctx context.Context, held []*primary.Task, taskID, status string) ([]*primary.Task, error) {
	m.movedHeld, m.movedID, m.movedStatus = held, taskID, status
	if m.moveErr != nil {
		return held, m.moveErr
	}
	return held, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, taskID string) error {
	return nil
}

// mockDailyTaskService implements primary.DailyTaskService for testing
type mockDailyTaskService struct {
	view *primary.CalendarView
}

func (m *mockDailyTaskService) CreateDailyTask(ctx context.Context, req primary.CreateDailyTaskRequest) (*primary.DailyTask, error) {
	return nil, errNotImplemented
}

func (m *mockDailyTaskService) ListDailyTasks(ctx context.Context) ([]*primary.DailyTask, error) {
	return nil, nil
}

func (m *mockDailyTaskService) ListDay(ctx context.Context, day time.Time) ([]*primary.DailyTask, error) {
	return m.view.Entries, nil
}

func (m *mockDailyTaskService) Calendar(ctx context.Context, day time.Time) (*primary.CalendarView, error) {
	return m.view, nil
}

func (m *mockDailyTaskService) DeleteDailyTask(ctx context.Context, dailyTaskID string) error {
	return nil
}

// mockSessionService implements primary.SessionService for testing
type mockSessionService struct {
	signUpSession *primary.Session
	signOutErr    error
	current       *primary.Session
}

func (m *mockSessionService) SignIn(ctx context.Context, email, password string) (*primary.Session, error) {
	return &primary.Session{UserID: "user-1", Email: email}, nil
}

func (m *mockSessionService) SignUp(ctx context.Context, email, password string) (*primary.Session, error) {
	return m.signUpSession, nil
}

func (m *mockSessionService) ResetPassword(ctx context.Context, email string) error {
	return nil
}

func (m *mockSessionService) SignOut(ctx context.Context) error {
	return m.signOutErr
}

func (m *mockSessionService) Current(ctx context.Context) (*primary.Session, error) {
	if m.current == nil {
		return nil, errors.New("login required")
	}
	return m.current, nil
}

func (m *mockSessionService) Subscribe(fn func(*primary.Session)) func() {
	return func() {}
}

func (m *mockSessionService) Watch(ctx context.Context) error {
	return nil
}

// mockWorkspaceService implements primary.WorkspaceService for testing
type mockWorkspaceService struct {
	view *primary.HomeView
	err  error
}

func (m *mockWorkspaceService) LoadHome(ctx context.Context) (*primary.HomeView, error) {
	return m.view, m.err
}
