package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/core2/internal/ctxutil"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

// ============================================================================
// Shared mock plumbing
// ============================================================================

var mockNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// callLog records repository deletes in the order they happen.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// mockTable is an in-memory table in insertion order. errs injects failures
// keyed by method name, or by "Method:id" for a single row.
type mockTable[R any] struct {
	mu     sync.Mutex
	entity string
	prefix string
	seq    int
	rows   []*R
	idOf   func(*R) string
	errs   map[string]error
	log    *callLog
}

func newMockTable[R any](entity, prefix string, idOf func(*R) string, log *callLog) *mockTable[R] {
	return &mockTable[R]{entity: entity, prefix: prefix, idOf: idOf, errs: map[string]error{}, log: log}
}

func (m *mockTable[R]) failWith(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[key] = err
}

func (m *mockTable[R]) fail(method, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errs[method+":"+id]; err != nil {
		return err
	}
	return m.errs[method]
}

func (m *mockTable[R]) newID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("%s-%03d", m.prefix, m.seq)
}

func (m *mockTable[R]) seed(rows ...*R) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rows...)
}

func (m *mockTable[R]) get(id string) (*R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.idOf(r) == id {
			return r, nil
		}
	}
	return nil, core2err.NotFound(m.entity, id)
}

func (m *mockTable[R]) filter(keep func(*R) bool) []*R {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*R{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (m *mockTable[R]) remove(id string) (*R, error) {
	if err := m.fail("Delete", id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if m.idOf(r) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			if m.log != nil {
				m.log.add("delete " + m.entity + " " + id)
			}
			return r, nil
		}
	}
	return nil, core2err.NotFound(m.entity, id)
}

// update runs apply on the stored row under the table lock.
func (m *mockTable[R]) update(id string, apply func(*R)) (*R, error) {
	if err := m.fail("Update", id); err != nil {
		return nil, err
	}
	r, err := m.get(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	apply(r)
	return r, nil
}

func (m *mockTable[R]) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func storeFailure(op string) error {
	return core2err.Store(op, fmt.Errorf("connection reset"))
}

// ============================================================================
// Fixtures
// ============================================================================

const otherOwner = "owner-2"

func otherCtx() context.Context {
	return ctxutil.WithOwnerID(context.Background(), otherOwner)
}

// tables holds one mock per table and an OwnerScope over them.
type tables struct {
	domains  *mockDomainRepository
	projects *mockProjectRepository
	analysis *mockAnalysisRepository
	epics    *mockEpicRepository
	stories  *mockStoryRepository
	tasks    *mockTaskRepository
	testLogs *mockTestLogRepository
	daily    *mockDailyTaskRepository
	scope    *OwnerScope
}

func newTables(log *callLog) *tables {
	tb := &tables{
		domains:  newMockDomainRepository(),
		projects: newMockProjectRepository(),
		analysis: newMockAnalysisRepository(),
		epics:    newMockEpicRepository(log),
		stories:  newMockStoryRepository(log),
		tasks:    newMockTaskRepository(log),
		testLogs: newMockTestLogRepository(),
		daily:    newMockDailyTaskRepository(),
	}
	tb.scope = NewOwnerScope(tb.domains, tb.projects, tb.epics, tb.stories, tb.tasks, tb.testLogs, tb.daily)
	return tb
}

// seedProject stores project P owned by testOwner.
func (tb *tables) seedProject() *tables {
	tb.projects.seed(&secondary.ProjectRecord{ID: "P", OwnerID: testOwner, Name: "Billing"})
	return tb
}

// ============================================================================
// Repository mocks
// ============================================================================

type mockDomainRepository struct {
	*mockTable[secondary.DomainRecord]
}

func newMockDomainRepository() *mockDomainRepository {
	return &mockDomainRepository{newMockTable("domain", "DOM", func(r *secondary.DomainRecord) string { return r.ID }, nil)}
}

func (m *mockDomainRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.DomainRecord, error) {
	if err := m.fail("ListByOwner", ownerID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.DomainRecord) bool { return r.OwnerID == ownerID }), nil
}

func (m *mockDomainRepository) GetByID(ctx context.Context, id string) (*secondary.DomainRecord, error) {
	return m.get(id)
}

func (m *mockDomainRepository) Create(ctx context.Context, in secondary.DomainInsert) (*secondary.DomainRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.DomainRecord{ID: m.newID(), OwnerID: in.OwnerID, Name: in.Name, Code: in.Code, Color: in.Color, CreatedAt: mockNow, UpdatedAt: mockNow}
	m.seed(r)
	return r, nil
}

func (m *mockDomainRepository) Update(ctx context.Context, id string, p secondary.DomainPatch) (*secondary.DomainRecord, error) {
	return m.update(id, func(r *secondary.DomainRecord) {
		setStr(&r.Name, p.Name)
		setStr(&r.Code, p.Code)
		setStr(&r.Color, p.Color)
	})
}

func (m *mockDomainRepository) Delete(ctx context.Context, id string) (*secondary.DomainRecord, error) {
	return m.remove(id)
}

type mockProjectRepository struct {
	*mockTable[secondary.ProjectRecord]
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{newMockTable("project", "PROJ", func(r *secondary.ProjectRecord) string { return r.ID }, nil)}
}

func (m *mockProjectRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.ProjectRecord, error) {
	if err := m.fail("ListByOwner", ownerID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.ProjectRecord) bool { return r.OwnerID == ownerID }), nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if err := m.fail("GetByID", id); err != nil {
		return nil, err
	}
	return m.get(id)
}

func (m *mockProjectRepository) Create(ctx context.Context, in secondary.ProjectInsert) (*secondary.ProjectRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.ProjectRecord{
		ID: m.newID(), OwnerID: in.OwnerID, DomainID: in.DomainID, Name: in.Name, Type: in.Type,
		Status: in.Status, Active: in.Active, DriveFolderURL: in.DriveFolderURL,
		PrimaryDocURL: in.PrimaryDocURL, PauseCondition: in.PauseCondition,
		CreatedAt: mockNow, UpdatedAt: mockNow,
	}
	m.seed(r)
	return r, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, id string, p secondary.ProjectPatch) (*secondary.ProjectRecord, error) {
	return m.update(id, func(r *secondary.ProjectRecord) {
		setStr(&r.DomainID, p.DomainID)
		setStr(&r.Name, p.Name)
		setStr(&r.Status, p.Status)
		if p.Active != nil {
			r.Active = *p.Active
		}
		setStr(&r.DriveFolderURL, p.DriveFolderURL)
		setStr(&r.PrimaryDocURL, p.PrimaryDocURL)
		setStr(&r.PauseCondition, p.PauseCondition)
	})
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	return m.remove(id)
}

type mockAnalysisRepository struct {
	*mockTable[secondary.AnalysisDocumentRecord]
}

func newMockAnalysisRepository() *mockAnalysisRepository {
	return &mockAnalysisRepository{newMockTable("analysis_document", "DOC", func(r *secondary.AnalysisDocumentRecord) string { return r.ID }, nil)}
}

func (m *mockAnalysisRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.AnalysisDocumentRecord, error) {
	if err := m.fail("ListByProject", projectID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.AnalysisDocumentRecord) bool { return r.ProjectID == projectID }), nil
}

func (m *mockAnalysisRepository) GetByID(ctx context.Context, id string) (*secondary.AnalysisDocumentRecord, error) {
	return m.get(id)
}

func (m *mockAnalysisRepository) Create(ctx context.Context, in secondary.AnalysisDocumentInsert) (*secondary.AnalysisDocumentRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.AnalysisDocumentRecord{
		ID: m.newID(), ProjectID: in.ProjectID, Pain: in.Pain, Knowledge: in.Knowledge,
		Context: in.Context, LegacyNotes: in.LegacyNotes, ScopeIn: in.ScopeIn, ScopeOut: in.ScopeOut,
		IsDone: in.IsDone, CreatedAt: mockNow, UpdatedAt: mockNow,
	}
	m.seed(r)
	return r, nil
}

func (m *mockAnalysisRepository) Update(ctx context.Context, id string, p secondary.AnalysisDocumentPatch) (*secondary.AnalysisDocumentRecord, error) {
	return m.update(id, func(r *secondary.AnalysisDocumentRecord) {
		setStr(&r.Pain, p.Pain)
		setStr(&r.Knowledge, p.Knowledge)
		setStr(&r.Context, p.Context)
		setStr(&r.LegacyNotes, p.LegacyNotes)
		setStr(&r.ScopeIn, p.ScopeIn)
		setStr(&r.ScopeOut, p.ScopeOut)
		if p.IsDone != nil {
			r.IsDone = *p.IsDone
		}
	})
}

func (m *mockAnalysisRepository) Delete(ctx context.Context, id string) (*secondary.AnalysisDocumentRecord, error) {
	return m.remove(id)
}

type mockEpicRepository struct {
	*mockTable[secondary.EpicRecord]
}

func newMockEpicRepository(log *callLog) *mockEpicRepository {
	return &mockEpicRepository{newMockTable("epic", "EPIC", func(r *secondary.EpicRecord) string { return r.ID }, log)}
}

func (m *mockEpicRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.EpicRecord, error) {
	if err := m.fail("ListByProject", projectID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.EpicRecord) bool { return r.ProjectID == projectID }), nil
}

func (m *mockEpicRepository) GetByID(ctx context.Context, id string) (*secondary.EpicRecord, error) {
	return m.get(id)
}

func (m *mockEpicRepository) Create(ctx context.Context, in secondary.EpicInsert) (*secondary.EpicRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	order := len(m.filter(func(r *secondary.EpicRecord) bool { return r.ProjectID == in.ProjectID })) + 1
	r := &secondary.EpicRecord{ID: m.newID(), ProjectID: in.ProjectID, Title: in.Title, Description: in.Description, OrderNo: order, CreatedAt: mockNow, UpdatedAt: mockNow}
	m.seed(r)
	return r, nil
}

func (m *mockEpicRepository) Update(ctx context.Context, id string, p secondary.EpicPatch) (*secondary.EpicRecord, error) {
	return m.update(id, func(r *secondary.EpicRecord) {
		setStr(&r.Title, p.Title)
		setStr(&r.Description, p.Description)
		if p.OrderNo != nil {
			r.OrderNo = *p.OrderNo
		}
	})
}

func (m *mockEpicRepository) Delete(ctx context.Context, id string) (*secondary.EpicRecord, error) {
	return m.remove(id)
}

type mockStoryRepository struct {
	*mockTable[secondary.StoryRecord]
}

func newMockStoryRepository(log *callLog) *mockStoryRepository {
	return &mockStoryRepository{newMockTable("story", "STORY", func(r *secondary.StoryRecord) string { return r.ID }, log)}
}

func (m *mockStoryRepository) ListByProject(ctx context.Context, projectID string, page secondary.Page) ([]*secondary.StoryRecord, error) {
	if err := m.fail("ListByProject", projectID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.StoryRecord) bool { return r.ProjectID == projectID }), nil
}

func (m *mockStoryRepository) ListByEpic(ctx context.Context, epicID string, page secondary.Page) ([]*secondary.StoryRecord, error) {
	if err := m.fail("ListByEpic", epicID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.StoryRecord) bool { return r.EpicID == epicID }), nil
}

func (m *mockStoryRepository) GetByID(ctx context.Context, id string) (*secondary.StoryRecord, error) {
	return m.get(id)
}

func (m *mockStoryRepository) Create(ctx context.Context, in secondary.StoryInsert) (*secondary.StoryRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.StoryRecord{
		ID: m.newID(), ProjectID: in.ProjectID, EpicID: in.EpicID, Title: in.Title, UserStory: in.UserStory,
		AcceptanceCriteria: in.AcceptanceCriteria, Status: in.Status, Priority: in.Priority,
		CreatedAt: mockNow, UpdatedAt: mockNow,
	}
	m.seed(r)
	return r, nil
}

func (m *mockStoryRepository) Update(ctx context.Context, id string, p secondary.StoryPatch) (*secondary.StoryRecord, error) {
	return m.update(id, func(r *secondary.StoryRecord) {
		setStr(&r.EpicID, p.EpicID)
		setStr(&r.Title, p.Title)
		setStr(&r.UserStory, p.UserStory)
		setStr(&r.AcceptanceCriteria, p.AcceptanceCriteria)
		setStr(&r.Status, p.Status)
		if p.Priority != nil {
			r.Priority = *p.Priority
		}
	})
}

func (m *mockStoryRepository) Delete(ctx context.Context, id string) (*secondary.StoryRecord, error) {
	return m.remove(id)
}

type mockTaskRepository struct {
	*mockTable[secondary.TaskRecord]
	updates int
}

func newMockTaskRepository(log *callLog) *mockTaskRepository {
	return &mockTaskRepository{mockTable: newMockTable("task", "TASK", func(r *secondary.TaskRecord) string { return r.ID }, log)}
}

func (m *mockTaskRepository) ListByStory(ctx context.Context, storyID string, page secondary.Page) ([]*secondary.TaskRecord, error) {
	if err := m.fail("ListByStory", storyID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.TaskRecord) bool { return r.StoryID == storyID }), nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	return m.get(id)
}

func (m *mockTaskRepository) Create(ctx context.Context, in secondary.TaskInsert) (*secondary.TaskRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	order := len(m.filter(func(r *secondary.TaskRecord) bool { return r.StoryID == in.StoryID })) + 1
	r := &secondary.TaskRecord{
		ID: m.newID(), StoryID: in.StoryID, Title: in.Title, Note: in.Note, Status: in.Status,
		StartAt: in.StartAt, EndAt: in.EndAt, OrderNo: order, CreatedAt: mockNow, UpdatedAt: mockNow,
	}
	m.seed(r)
	return r, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, id string, p secondary.TaskPatch) (*secondary.TaskRecord, error) {
	m.mu.Lock()
	m.updates++
	m.mu.Unlock()
	return m.update(id, func(r *secondary.TaskRecord) {
		setStr(&r.Title, p.Title)
		setStr(&r.Note, p.Note)
		setStr(&r.Status, p.Status)
		if p.StartAt != nil {
			r.StartAt = p.StartAt
		}
		if p.ClearStartAt {
			r.StartAt = nil
		}
		if p.EndAt != nil {
			r.EndAt = p.EndAt
		}
		if p.OrderNo != nil {
			r.OrderNo = *p.OrderNo
		}
		r.UpdatedAt = mockNow.Add(time.Minute)
	})
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	return m.remove(id)
}

type mockDailyTaskRepository struct {
	*mockTable[secondary.DailyTaskRecord]
	lastFrom, lastTo time.Time
}

func newMockDailyTaskRepository() *mockDailyTaskRepository {
	return &mockDailyTaskRepository{mockTable: newMockTable("daily_task", "DAY", func(r *secondary.DailyTaskRecord) string { return r.ID }, nil)}
}

func (m *mockDailyTaskRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.DailyTaskRecord, error) {
	if err := m.fail("ListByOwner", ownerID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.DailyTaskRecord) bool { return r.OwnerID == ownerID }), nil
}

func (m *mockDailyTaskRepository) ListByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time, page secondary.Page) ([]*secondary.DailyTaskRecord, error) {
	if err := m.fail("ListByOwnerAndRange", ownerID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.lastFrom, m.lastTo = from, to
	m.mu.Unlock()
	return m.filter(func(r *secondary.DailyTaskRecord) bool {
		return r.OwnerID == ownerID && !r.StartAt.Before(from) && !r.StartAt.After(to)
	}), nil
}

func (m *mockDailyTaskRepository) GetByID(ctx context.Context, id string) (*secondary.DailyTaskRecord, error) {
	return m.get(id)
}

func (m *mockDailyTaskRepository) Create(ctx context.Context, in secondary.DailyTaskInsert) (*secondary.DailyTaskRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.DailyTaskRecord{
		ID: m.newID(), OwnerID: in.OwnerID, Title: in.Title, Notes: in.Notes,
		StartAt: in.StartAt, EndAt: in.EndAt, Kind: in.Kind, CreatedAt: mockNow, UpdatedAt: mockNow,
	}
	m.seed(r)
	return r, nil
}

func (m *mockDailyTaskRepository) Update(ctx context.Context, id string, p secondary.DailyTaskPatch) (*secondary.DailyTaskRecord, error) {
	return m.update(id, func(r *secondary.DailyTaskRecord) {
		setStr(&r.Title, p.Title)
		setStr(&r.Notes, p.Notes)
		setStr(&r.Kind, p.Kind)
		if p.StartAt != nil {
			r.StartAt = *p.StartAt
		}
		if p.EndAt != nil {
			r.EndAt = *p.EndAt
		}
	})
}

func (m *mockDailyTaskRepository) Delete(ctx context.Context, id string) (*secondary.DailyTaskRecord, error) {
	return m.remove(id)
}

type mockTestLogRepository struct {
	*mockTable[secondary.TestLogRecord]
}

func newMockTestLogRepository() *mockTestLogRepository {
	return &mockTestLogRepository{newMockTable("test_log", "LOG", func(r *secondary.TestLogRecord) string { return r.ID }, nil)}
}

func (m *mockTestLogRepository) ListByStory(ctx context.Context, storyID string, page secondary.Page) ([]*secondary.TestLogRecord, error) {
	if err := m.fail("ListByStory", storyID); err != nil {
		return nil, err
	}
	return m.filter(func(r *secondary.TestLogRecord) bool { return r.StoryID == storyID }), nil
}

func (m *mockTestLogRepository) GetByID(ctx context.Context, id string) (*secondary.TestLogRecord, error) {
	return m.get(id)
}

func (m *mockTestLogRepository) Create(ctx context.Context, in secondary.TestLogInsert) (*secondary.TestLogRecord, error) {
	if err := m.fail("Create", ""); err != nil {
		return nil, err
	}
	r := &secondary.TestLogRecord{ID: m.newID(), StoryID: in.StoryID, TaskID: in.TaskID, Notes: in.Notes, CreatedAt: mockNow, UpdatedAt: mockNow}
	m.seed(r)
	return r, nil
}

func (m *mockTestLogRepository) Update(ctx context.Context, id string, p secondary.TestLogPatch) (*secondary.TestLogRecord, error) {
	return m.update(id, func(r *secondary.TestLogRecord) {
		setStr(&r.TaskID, p.TaskID)
		setStr(&r.Notes, p.Notes)
	})
}

func (m *mockTestLogRepository) Delete(ctx context.Context, id string) (*secondary.TestLogRecord, error) {
	return m.remove(id)
}

// ============================================================================
// Session mocks
// ============================================================================

type mockStateStore struct {
	mu       sync.Mutex
	state    secondary.StateRecord
	loadErr  error
	saveErr  error
	saves    int
	onChange func()
	watching chan struct{}
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{watching: make(chan struct{})}
}

func (m *mockStateStore) Load(ctx context.Context) (*secondary.StateRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	cp := m.state
	return &cp, nil
}

func (m *mockStateStore) Save(ctx context.Context, st *secondary.StateRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = *st
	m.saves++
	return nil
}

func (m *mockStateStore) Watch(ctx context.Context, onChange func()) error {
	m.mu.Lock()
	m.onChange = onChange
	m.mu.Unlock()
	close(m.watching)
	<-ctx.Done()
	return nil
}

// externalWrite simulates another process replacing the state file.
func (m *mockStateStore) externalWrite(st secondary.StateRecord) {
	m.mu.Lock()
	m.state = st
	fn := m.onChange
	m.mu.Unlock()
	fn()
}

func (m *mockStateStore) snapshot() secondary.StateRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

type mockAuthProvider struct {
	signInSession *secondary.SessionRecord
	signInErr     error
	signUpSession *secondary.SessionRecord
	resetEmails   []string
	revoked       []string
	signOutErr    error
}

func (m *mockAuthProvider) SignInWithPassword(ctx context.Context, email, password string) (*secondary.SessionRecord, error) {
	if m.signInErr != nil {
		return nil, m.signInErr
	}
	return m.signInSession, nil
}

func (m *mockAuthProvider) SignUp(ctx context.Context, email, password string) (*secondary.SessionRecord, error) {
	return m.signUpSession, nil
}

func (m *mockAuthProvider) ResetPasswordForEmail(ctx context.Context, email string) error {
	m.resetEmails = append(m.resetEmails, email)
	return nil
}

func (m *mockAuthProvider) SignOut(ctx context.Context, accessToken string) error {
	m.revoked = append(m.revoked, accessToken)
	return m.signOutErr
}

var (
	_ secondary.DomainRepository           = (*mockDomainRepository)(nil)
	_ secondary.ProjectRepository          = (*mockProjectRepository)(nil)
	_ secondary.AnalysisDocumentRepository = (*mockAnalysisRepository)(nil)
	_ secondary.EpicRepository             = (*mockEpicRepository)(nil)
	_ secondary.StoryRepository            = (*mockStoryRepository)(nil)
	_ secondary.TaskRepository             = (*mockTaskRepository)(nil)
	_ secondary.DailyTaskRepository        = (*mockDailyTaskRepository)(nil)
	_ secondary.TestLogRepository          = (*mockTestLogRepository)(nil)
	_ secondary.StateStore                 = (*mockStateStore)(nil)
	_ secondary.AuthProvider               = (*mockAuthProvider)(nil)
)
