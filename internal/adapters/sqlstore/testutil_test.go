// Package sqlstore_test contains integration tests for the SQL repositories.
//
// Every test runs against an in-memory SQLite database migrated with the
// authoritative schema from internal/db. Do not create tables by hand here.
package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/core2/internal/adapters/sqlstore"
	"github.com/example/core2/internal/db"
	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

const testOwner = "owner-1"

// setupTestDB opens a migrated in-memory database whose clock advances one
// second per call, so created_at ordering is deterministic.
func setupTestDB(t *testing.T) *driver.SQLiteDriver {
	t.Helper()
	ctx := context.Background()

	drv, err := driver.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close() })

	clock := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	drv.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	require.NoError(t, db.Migrate(ctx, drv, nil))
	return drv
}

func seedProject(t *testing.T, drv driver.Driver, name, domainID string) *secondary.ProjectRecord {
	t.Helper()
	p, err := sqlstore.NewProjectRepository(drv).Create(context.Background(), secondary.ProjectInsert{
		OwnerID:  testOwner,
		DomainID: domainID,
		Name:     name,
		Type:     "NEW",
		Status:   "INTEL",
		Active:   true,
	})
	require.NoError(t, err)
	return p
}

func seedEpic(t *testing.T, drv driver.Driver, projectID, title string) *secondary.EpicRecord {
	t.Helper()
	e, err := sqlstore.NewEpicRepository(drv).Create(context.Background(), secondary.EpicInsert{
		ProjectID: projectID,
		Title:     title,
	})
	require.NoError(t, err)
	return e
}

func seedStory(t *testing.T, drv driver.Driver, projectID, epicID, title string, priority int) *secondary.StoryRecord {
	t.Helper()
	s, err := sqlstore.NewStoryRepository(drv).Create(context.Background(), secondary.StoryInsert{
		ProjectID:          projectID,
		EpicID:             epicID,
		Title:              title,
		UserStory:          "As a [dev],\nI want [x],\nso that [y].",
		AcceptanceCriteria: "- Done when:\n  - [a]\n  - [b]\n  - [c]",
		Status:             "START",
		Priority:           priority,
	})
	require.NoError(t, err)
	return s
}

func seedTask(t *testing.T, drv driver.Driver, storyID, title string) *secondary.TaskRecord {
	t.Helper()
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	task, err := sqlstore.NewTaskRepository(drv).Create(context.Background(), secondary.TaskInsert{
		StoryID: storyID,
		Title:   title,
		Status:  "ICEBOX",
		EndAt:   &end,
	})
	require.NoError(t, err)
	return task
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
