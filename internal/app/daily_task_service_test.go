package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

func newTestDailyTaskService() (*DailyTaskServiceImpl, *mockDailyTaskRepository) {
	tb := newTables(nil)
	return NewDailyTaskService(tb.daily, tb.scope, time.UTC, nil), tb.daily
}

func TestCreateDailyTask_EndMustFollowStart(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"end before start", "2024-05-01 10:00", "2024-05-01 09:00", true},
		{"end equals start", "2024-05-01 10:00", "2024-05-01 10:00", true},
		{"end after start", "2024-05-01 10:00", "2024-05-01 10:30", false},
		{"missing end", "2024-05-01 10:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestDailyTaskService()
			_, err := service.CreateDailyTask(ownerCtx(), primary.CreateDailyTaskRequest{Title: "Standup", StartAt: tt.start, EndAt: tt.end})
			if tt.wantErr {
				assert.True(t, errors.Is(err, core2err.ErrValidation), "got %v", err)
				assert.Equal(t, 0, repo.count())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, repo.count())
		})
	}
}

func TestCreateDailyTask_DefaultSlotAndKind(t *testing.T) {
	service, _ := newTestDailyTaskService()
	day := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	got, err := service.CreateDailyTask(ownerCtx(), primary.CreateDailyTaskRequest{Title: "Dentist", Day: day})

	require.NoError(t, err)
	assert.True(t, got.StartAt.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.True(t, got.EndAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "OTHER", got.Kind)
	assert.Equal(t, testOwner, got.OwnerID)
}

func TestCreateDailyTask_RequiresOwner(t *testing.T) {
	service, _ := newTestDailyTaskService()

	_, err := service.CreateDailyTask(context.Background(), primary.CreateDailyTaskRequest{Title: "x", StartAt: "2024-05-01 09:00", EndAt: "2024-05-01 10:00"})

	assert.True(t, errors.Is(err, core2err.ErrAuth))
}

func TestCalendar_ListsSelectedDay(t *testing.T) {
	service, repo := newTestDailyTaskService()
	at := func(d, h int) time.Time { return time.Date(2023, 11, d, h, 0, 0, 0, time.UTC) }
	repo.seed(
		&secondary.DailyTaskRecord{ID: "A", OwnerID: testOwner, StartAt: at(15, 9), EndAt: at(15, 10)},
		&secondary.DailyTaskRecord{ID: "B", OwnerID: testOwner, StartAt: at(16, 9), EndAt: at(16, 10)},
		&secondary.DailyTaskRecord{ID: "C", OwnerID: "other", StartAt: at(15, 11), EndAt: at(15, 12)},
	)

	view, err := service.Calendar(ownerCtx(), at(15, 18))

	require.NoError(t, err)
	assert.Equal(t, 2023, view.Year)
	assert.Equal(t, time.November, view.Month)
	require.Len(t, view.Weeks, 5)
	assert.Equal(t, [7]int{0, 0, 1, 2, 3, 4, 5}, view.Weeks[0])
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "A", view.Entries[0].ID)

	assert.Equal(t, at(15, 0), repo.lastFrom)
	assert.Equal(t, time.Date(2023, 11, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC), repo.lastTo)
}
