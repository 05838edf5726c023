// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
//
// Repositories are passthroughs: no validation, one round trip per call, and an
// empty list is never an error. Nullable text columns are modelled as "" for
// null; in patches a pointer to "" clears the column.
package secondary

import (
	"context"
	"time"
)

// Page limits a list call. Limit <= 0 returns every row.
type Page struct {
	Offset int
	Limit  int
}

// DomainRepository defines the secondary port for domain persistence.
type DomainRepository interface {
	// ListByOwner returns the owner's domains, newest first.
	ListByOwner(ctx context.Context, ownerID string, page Page) ([]*DomainRecord, error)
	GetByID(ctx context.Context, id string) (*DomainRecord, error)
	Create(ctx context.Context, in DomainInsert) (*DomainRecord, error)
	Update(ctx context.Context, id string, patch DomainPatch) (*DomainRecord, error)
	// Delete removes the domain and returns the deleted row.
	Delete(ctx context.Context, id string) (*DomainRecord, error)
}

// DomainRecord represents a domain as stored in persistence.
type DomainRecord struct {
	ID        string
	OwnerID   string
	Name      string
	Code      string // Empty string means null
	Color     string // Empty string means null
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DomainInsert is the create payload.
type DomainInsert struct {
	OwnerID string
	Name    string
	Code    string
	Color   string
}

// DomainPatch is a partial update; nil fields are left unchanged.
type DomainPatch struct {
	Name  *string
	Code  *string
	Color *string
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// ListByOwner returns the owner's projects, newest first.
	ListByOwner(ctx context.Context, ownerID string, page Page) ([]*ProjectRecord, error)
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)
	Create(ctx context.Context, in ProjectInsert) (*ProjectRecord, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*ProjectRecord, error)
	Delete(ctx context.Context, id string) (*ProjectRecord, error)
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID             string
	OwnerID        string
	DomainID       string // Empty string means null
	Name           string
	Type           string
	Status         string
	Active         bool
	DriveFolderURL string // Empty string means null
	PrimaryDocURL  string // Empty string means null
	PauseCondition string // Empty string means null
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectInsert is the create payload.
type ProjectInsert struct {
	OwnerID        string
	DomainID       string
	Name           string
	Type           string
	Status         string
	Active         bool
	DriveFolderURL string
	PrimaryDocURL  string
	PauseCondition string
}

// ProjectPatch is a partial update. Type is fixed at creation.
type ProjectPatch struct {
	DomainID       *string
	Name           *string
	Status         *string
	Active         *bool
	DriveFolderURL *string
	PrimaryDocURL  *string
	PauseCondition *string
}

// AnalysisDocumentRepository defines the secondary port for analysis documents.
type AnalysisDocumentRepository interface {
	// ListByProject returns the project's documents, newest first.
	ListByProject(ctx context.Context, projectID string, page Page) ([]*AnalysisDocumentRecord, error)
	GetByID(ctx context.Context, id string) (*AnalysisDocumentRecord, error)
	Create(ctx context.Context, in AnalysisDocumentInsert) (*AnalysisDocumentRecord, error)
	Update(ctx context.Context, id string, patch AnalysisDocumentPatch) (*AnalysisDocumentRecord, error)
	Delete(ctx context.Context, id string) (*AnalysisDocumentRecord, error)
}

// AnalysisDocumentRecord represents an analysis document as stored in persistence.
type AnalysisDocumentRecord struct {
	ID          string
	ProjectID   string
	Pain        string
	Knowledge   string
	Context     string
	LegacyNotes string
	ScopeIn     string
	ScopeOut    string
	IsDone      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnalysisDocumentInsert is the create payload.
type AnalysisDocumentInsert struct {
	ProjectID   string
	Pain        string
	Knowledge   string
	Context     string
	LegacyNotes string
	ScopeIn     string
	ScopeOut    string
	IsDone      bool
}

// AnalysisDocumentPatch is a partial update.
type AnalysisDocumentPatch struct {
	Pain        *string
	Knowledge   *string
	Context     *string
	LegacyNotes *string
	ScopeIn     *string
	ScopeOut    *string
	IsDone      *bool
}

// EpicRepository defines the secondary port for epic persistence.
type EpicRepository interface {
	// ListByProject returns the project's epics by order number, then age.
	ListByProject(ctx context.Context, projectID string, page Page) ([]*EpicRecord, error)
	GetByID(ctx context.Context, id string) (*EpicRecord, error)
	// Create assigns the next order number for the project in the store.
	Create(ctx context.Context, in EpicInsert) (*EpicRecord, error)
	Update(ctx context.Context, id string, patch EpicPatch) (*EpicRecord, error)
	Delete(ctx context.Context, id string) (*EpicRecord, error)
}

// EpicCascadeDeleter is implemented by stores that can remove an epic with its
// stories and their tasks in one transaction.
type EpicCascadeDeleter interface {
	DeleteCascade(ctx context.Context, epicID string) (*EpicCascadeResult, error)
}

// EpicCascadeResult lists what a cascade removed.
type EpicCascadeResult struct {
	Epic     *EpicRecord
	StoryIDs []string
	TaskIDs  []string
}

// EpicRecord represents an epic as stored in persistence.
type EpicRecord struct {
	ID          string
	ProjectID   string
	Title       string
	Description string // Empty string means null
	OrderNo     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EpicInsert is the create payload. The order number is store-assigned.
type EpicInsert struct {
	ProjectID   string
	Title       string
	Description string
}

// EpicPatch is a partial update.
type EpicPatch struct {
	Title       *string
	Description *string
	OrderNo     *int
}

// StoryRepository defines the secondary port for story persistence.
type StoryRepository interface {
	// ListByProject returns the project's stories by priority desc, then newest.
	ListByProject(ctx context.Context, projectID string, page Page) ([]*StoryRecord, error)
	// ListByEpic returns the epic's stories with the same ordering.
	ListByEpic(ctx context.Context, epicID string, page Page) ([]*StoryRecord, error)
	GetByID(ctx context.Context, id string) (*StoryRecord, error)
	Create(ctx context.Context, in StoryInsert) (*StoryRecord, error)
	Update(ctx context.Context, id string, patch StoryPatch) (*StoryRecord, error)
	Delete(ctx context.Context, id string) (*StoryRecord, error)
}

// StoryRecord represents a story as stored in persistence.
type StoryRecord struct {
	ID                 string
	ProjectID          string
	EpicID             string // Empty string means null
	Title              string
	UserStory          string
	AcceptanceCriteria string
	Status             string
	Priority           int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StoryInsert is the create payload.
type StoryInsert struct {
	ProjectID          string
	EpicID             string
	Title              string
	UserStory          string
	AcceptanceCriteria string
	Status             string
	Priority           int
}

// StoryPatch is a partial update.
type StoryPatch struct {
	EpicID             *string
	Title              *string
	UserStory          *string
	AcceptanceCriteria *string
	Status             *string
	Priority           *int
}

// TaskRepository defines the secondary port for task persistence.
type TaskRepository interface {
	// ListByStory returns the story's tasks by order number, then age.
	ListByStory(ctx context.Context, storyID string, page Page) ([]*TaskRecord, error)
	GetByID(ctx context.Context, id string) (*TaskRecord, error)
	// Create assigns the next order number for the story in the store.
	Create(ctx context.Context, in TaskInsert) (*TaskRecord, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*TaskRecord, error)
	Delete(ctx context.Context, id string) (*TaskRecord, error)
}

// TaskRecord represents a task as stored in persistence.
type TaskRecord struct {
	ID        string
	StoryID   string
	Title     string
	Note      string // Empty string means null
	Status    string
	StartAt   *time.Time
	EndAt     *time.Time
	OrderNo   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskInsert is the create payload. The order number is store-assigned.
type TaskInsert struct {
	StoryID string
	Title   string
	Note    string
	Status  string
	StartAt *time.Time
	EndAt   *time.Time
}

// TaskPatch is a partial update. ClearStartAt nulls start_at.
type TaskPatch struct {
	Title        *string
	Note         *string
	Status       *string
	StartAt      *time.Time
	ClearStartAt bool
	EndAt        *time.Time
	OrderNo      *int
}

// DailyTaskRepository defines the secondary port for calendar entries.
type DailyTaskRepository interface {
	// ListByOwner returns the owner's entries by start, then age.
	ListByOwner(ctx context.Context, ownerID string, page Page) ([]*DailyTaskRecord, error)
	// ListByOwnerAndRange returns entries whose start lies in [from, to].
	ListByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time, page Page) ([]*DailyTaskRecord, error)
	GetByID(ctx context.Context, id string) (*DailyTaskRecord, error)
	Create(ctx context.Context, in DailyTaskInsert) (*DailyTaskRecord, error)
	Update(ctx context.Context, id string, patch DailyTaskPatch) (*DailyTaskRecord, error)
	Delete(ctx context.Context, id string) (*DailyTaskRecord, error)
}

// DailyTaskRecord represents a calendar entry as stored in persistence.
type DailyTaskRecord struct {
	ID        string
	OwnerID   string
	Title     string
	Notes     string // Empty string means null
	StartAt   time.Time
	EndAt     time.Time
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyTaskInsert is the create payload.
type DailyTaskInsert struct {
	OwnerID string
	Title   string
	Notes   string
	StartAt time.Time
	EndAt   time.Time
	Kind    string
}

// DailyTaskPatch is a partial update.
type DailyTaskPatch struct {
	Title   *string
	Notes   *string
	StartAt *time.Time
	EndAt   *time.Time
	Kind    *string
}

// TestLogRepository defines the secondary port for story test logs.
type TestLogRepository interface {
	// ListByStory returns the story's logs, newest first.
	ListByStory(ctx context.Context, storyID string, page Page) ([]*TestLogRecord, error)
	GetByID(ctx context.Context, id string) (*TestLogRecord, error)
	Create(ctx context.Context, in TestLogInsert) (*TestLogRecord, error)
	Update(ctx context.Context, id string, patch TestLogPatch) (*TestLogRecord, error)
	Delete(ctx context.Context, id string) (*TestLogRecord, error)
}

// TestLogRecord represents a test log as stored in persistence.
type TestLogRecord struct {
	ID        string
	StoryID   string
	TaskID    string // Empty string means null
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TestLogInsert is the create payload.
type TestLogInsert struct {
	StoryID string
	TaskID  string
	Notes   string
}

// TestLogPatch is a partial update.
type TestLogPatch struct {
	TaskID *string
	Notes  *string
}
