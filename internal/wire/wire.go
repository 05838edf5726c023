// Package wire provides dependency injection for the core2 application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/core2/internal/adapters/cli"
	"github.com/example/core2/internal/adapters/filesystem"
	"github.com/example/core2/internal/adapters/gotrue"
	"github.com/example/core2/internal/adapters/sqlstore"
	"github.com/example/core2/internal/app"
	"github.com/example/core2/internal/config"
	"github.com/example/core2/internal/ctxutil"
	"github.com/example/core2/internal/db"
	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/logging"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

var (
	configPath string

	cfg       *config.Config
	cfgErr    error
	cfgOnce   sync.Once
	logger    *slog.Logger
	stateFile *filesystem.StateStore

	store            driver.Driver
	domainService    primary.DomainService
	projectService   primary.ProjectService
	analysisService  primary.AnalysisService
	epicService      primary.EpicService
	storyService     primary.StoryService
	taskService      primary.TaskService
	dailyTaskService primary.DailyTaskService
	testLogService   primary.TestLogService
	workspaceService primary.WorkspaceService
	sessionService   primary.SessionService
	initErr          error
	once             sync.Once
)

// SetConfigPath selects an explicit config file. It must be called before
// any other function of this package.
func SetConfigPath(path string) {
	configPath = path
}

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, cfgErr
}

// Logger returns the application logger, writing to stderr.
func Logger() *slog.Logger {
	cfgOnce.Do(loadConfig)
	return logger
}

func loadConfig() {
	cfg, cfgErr = config.Load(configPath)
	if cfgErr != nil {
		logger = logging.New(os.Stderr, config.LogConfig{Level: "info", Format: "text"})
		return
	}
	logger = logging.New(os.Stderr, cfg.Log)
	stateFile = filesystem.NewStateStore(cfg.StatePath)
}

// Init opens the store and builds every service. It is safe to call more
// than once; the first result is kept.
func Init() error {
	once.Do(initServices)
	return initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if _, err := Config(); err != nil {
		initErr = err
		return
	}

	drv, err := db.Open(context.Background(), cfg.Store, logger)
	if err != nil {
		initErr = fmt.Errorf("failed to initialize database: %w", err)
		return
	}
	store = drv

	// Create repository adapters (secondary ports) with the injected driver
	domainRepo := sqlstore.NewDomainRepository(drv)
	projectRepo := sqlstore.NewProjectRepository(drv)
	analysisRepo := sqlstore.NewAnalysisDocumentRepository(drv)
	epicRepo := sqlstore.NewEpicRepository(drv)
	storyRepo := sqlstore.NewStoryRepository(drv)
	taskRepo := sqlstore.NewTaskRepository(drv)
	dailyTaskRepo := sqlstore.NewDailyTaskRepository(drv)
	testLogRepo := sqlstore.NewTestLogRepository(drv)

	executor := app.NewEffectExecutor(epicRepo, storyRepo, taskRepo, logger)
	cascade := app.NewEpicCascade(epicRepo, storyRepo, taskRepo, executor)
	scope := app.NewOwnerScope(domainRepo, projectRepo, epicRepo, storyRepo, taskRepo, testLogRepo, dailyTaskRepo)

	// Create services (primary ports implementation)
	domainService = app.NewDomainService(domainRepo, scope, logger)
	projectService = app.NewProjectService(projectRepo, analysisRepo, epicRepo, storyRepo, stateFile, scope, logger)
	analysisService = app.NewAnalysisService(analysisRepo, scope, logger)
	epicService = app.NewEpicService(epicRepo, cascade, scope, logger)
	storyService = app.NewStoryService(storyRepo, scope, logger)
	taskService = app.NewTaskService(taskRepo, scope, time.Local, logger)
	dailyTaskService = app.NewDailyTaskService(dailyTaskRepo, scope, time.Local, logger)
	testLogService = app.NewTestLogService(testLogRepo, scope, logger)
	workspaceService = app.NewWorkspaceService(projectRepo, domainRepo, storyRepo, stateFile, logger)
}

// Close releases the store connection, if one was opened.
func Close() error {
	if store == nil {
		return nil
	}
	return store.Close()
}

var (
	sessionOnce sync.Once
	sessionErr  error
)

// SessionService returns the singleton SessionService. It needs only the
// configuration and the state file, not the store.
func SessionService() (primary.SessionService, error) {
	sessionOnce.Do(func() {
		if _, err := Config(); err != nil {
			sessionErr = err
			return
		}
		var auth secondary.AuthProvider
		if !cfg.Offline() {
			auth = gotrue.New(cfg.Auth.URL, cfg.Auth.AnonKey)
		}
		sessionService = app.NewSessionService(auth, stateFile, cfg.OwnerID, logger)
	})
	return sessionService, sessionErr
}

// Context returns a context carrying the current session's owner id.
func Context(ctx context.Context) (context.Context, error) {
	sessions, err := SessionService()
	if err != nil {
		return nil, err
	}
	sess, err := sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	return ctxutil.WithOwnerID(ctx, sess.UserID), nil
}

// DomainAdapter returns a new DomainAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DomainAdapter() (*cliadapter.DomainAdapter, error) {
	return DomainAdapterWithOutput(os.Stdout)
}

// DomainAdapterWithOutput returns a new DomainAdapter writing to the given output.
func DomainAdapterWithOutput(out io.Writer) (*cliadapter.DomainAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewDomainAdapter(domainService, out), nil
}

// ProjectAdapter returns a new ProjectAdapter writing to stdout.
func ProjectAdapter() (*cliadapter.ProjectAdapter, error) {
	return ProjectAdapterWithOutput(os.Stdout)
}

// ProjectAdapterWithOutput returns a new ProjectAdapter writing to the given output.
func ProjectAdapterWithOutput(out io.Writer) (*cliadapter.ProjectAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewProjectAdapter(projectService, out), nil
}

// AnalysisAdapter returns a new AnalysisAdapter writing to stdout.
func AnalysisAdapter() (*cliadapter.AnalysisAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewAnalysisAdapter(analysisService, os.Stdout), nil
}

// EpicAdapter returns a new EpicAdapter writing to stdout.
func EpicAdapter() (*cliadapter.EpicAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewEpicAdapter(epicService, os.Stdout), nil
}

// StoryAdapter returns a new StoryAdapter writing to stdout.
func StoryAdapter() (*cliadapter.StoryAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewStoryAdapter(storyService, os.Stdout), nil
}

// TaskAdapter returns a new TaskAdapter writing to stdout.
func TaskAdapter() (*cliadapter.TaskAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewTaskAdapter(taskService, os.Stdout), nil
}

// DailyTaskAdapter returns a new DailyTaskAdapter writing to stdout.
func DailyTaskAdapter() (*cliadapter.DailyTaskAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewDailyTaskAdapter(dailyTaskService, os.Stdout), nil
}

// TestLogAdapter returns a new TestLogAdapter writing to stdout.
func TestLogAdapter() (*cliadapter.TestLogAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewTestLogAdapter(testLogService, os.Stdout), nil
}

// WorkspaceAdapter returns a new WorkspaceAdapter writing to stdout.
func WorkspaceAdapter() (*cliadapter.WorkspaceAdapter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return cliadapter.NewWorkspaceAdapter(workspaceService, os.Stdout), nil
}

// SessionAdapter returns a new SessionAdapter writing to stdout.
func SessionAdapter() (*cliadapter.SessionAdapter, error) {
	sessions, err := SessionService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewSessionAdapter(sessions, os.Stdout), nil
}
