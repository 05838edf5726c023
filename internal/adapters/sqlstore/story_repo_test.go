package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/core2/internal/adapters/sqlstore"
	"github.com/example/core2/internal/ports/secondary"
)

func TestStoryRepository_OrderingPriorityThenNewest(t *testing.T) {
	ctx := context.Background()
	drv := setupTestDB(t)
	p := seedProject(t, drv, "P", "")
	e := seedEpic(t, drv, p.ID, "E")

	seedStory(t, drv, p.ID, "", "low-old", 1)
	seedStory(t, drv, p.ID, e.ID, "high-old", 5)
	seedStory(t, drv, p.ID, "", "low-new", 1)
	seedStory(t, drv, p.ID, e.ID, "high-new", 5)

	repo := sqlstore.NewStoryRepository(drv)
	list, err := repo.ListByProject(ctx, p.ID, secondary.Page{})
	require.NoError(t, err)
	titles := make([]string, len(list))
	for i, s := range list {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"high-new", "high-old", "low-new", "low-old"}, titles)

	byEpic, err := repo.ListByEpic(ctx, e.ID, secondary.Page{})
	require.NoError(t, err)
	require.Len(t, byEpic, 2)
	assert.Equal(t, "high-new", byEpic[0].Title)
}

func TestStoryRepository_UpdateDetachesEpic(t *testing.T) {
	ctx := context.Background()
	drv := setupTestDB(t)
	p := seedProject(t, drv, "P", "")
	e := seedEpic(t, drv, p.ID, "E")
	s := seedStory(t, drv, p.ID, e.ID, "S", 3)
	assert.Equal(t, "START", s.Status)

	updated, err := sqlstore.NewStoryRepository(drv).Update(ctx, s.ID, secondary.StoryPatch{
		EpicID:   strPtr(""),
		Status:   strPtr("DONE"),
		Priority: intPtr(4),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.EpicID)
	assert.Equal(t, "DONE", updated.Status)
	assert.Equal(t, 4, updated.Priority)
	assert.Equal(t, s.UserStory, updated.UserStory)
}
