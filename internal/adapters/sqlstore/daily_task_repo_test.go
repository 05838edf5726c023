package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/core2/internal/adapters/sqlstore"
	"github.com/example/core2/internal/ports/secondary"
)

func TestDailyTaskRepository_ListByOwnerAndRange(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewDailyTaskRepository(setupTestDB(t))

	day := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	mk := func(title string, start time.Time) {
		t.Helper()
		_, err := repo.Create(ctx, secondary.DailyTaskInsert{
			OwnerID: testOwner, Title: title, StartAt: start, EndAt: start.Add(time.Hour), Kind: "FOCUS",
		})
		require.NoError(t, err)
	}
	mk("afternoon", day.Add(14*time.Hour))
	mk("morning", day.Add(9*time.Hour))
	mk("yesterday", day.Add(-2*time.Hour))
	mk("tomorrow", day.Add(24*time.Hour))

	from := day
	to := day.Add(24*time.Hour - time.Millisecond)
	list, err := repo.ListByOwnerAndRange(ctx, testOwner, from, to, secondary.Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "morning", list[0].Title)
	assert.Equal(t, "afternoon", list[1].Title)
	assert.True(t, list[0].StartAt.Equal(day.Add(9*time.Hour)))

	all, err := repo.ListByOwner(ctx, testOwner, secondary.Page{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "yesterday", all[0].Title)
	assert.Equal(t, "tomorrow", all[3].Title)
}

func TestDailyTaskRepository_UpdateKind(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewDailyTaskRepository(setupTestDB(t))
	start := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, secondary.DailyTaskInsert{
		OwnerID: testOwner, Title: "standup", StartAt: start, EndAt: start.Add(15 * time.Minute), Kind: "MEETING",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, secondary.DailyTaskPatch{Kind: strPtr("OTHER"), Notes: strPtr("moved")})
	require.NoError(t, err)
	assert.Equal(t, "OTHER", updated.Kind)
	assert.Equal(t, "moved", updated.Notes)
	assert.True(t, updated.EndAt.Equal(start.Add(15*time.Minute)))
}
