package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

func newTestTaskService() (*TaskServiceImpl, *mockTaskRepository) {
	tb := newTables(nil).seedProject()
	tb.stories.seed(
		&secondary.StoryRecord{ID: "S1", ProjectID: "P"},
		&secondary.StoryRecord{ID: "S2", ProjectID: "P"},
	)
	return NewTaskService(tb.tasks, tb.scope, time.UTC, nil), tb.tasks
}

func TestCreateTask_RequiresEndDate(t *testing.T) {
	service, repo := newTestTaskService()

	_, err := service.CreateTask(ownerCtx(), primary.CreateTaskRequest{StoryID: "S1", Title: "Write tests"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, core2err.ErrValidation))
	assert.Equal(t, "end date is required", err.Error())
	assert.Equal(t, 0, repo.count(), "no repository call before validation passes")
}

func TestCreateTask_InvalidDates(t *testing.T) {
	service, repo := newTestTaskService()
	ctx := ownerCtx()

	_, err := service.CreateTask(ctx, primary.CreateTaskRequest{StoryID: "S1", Title: "x", EndAt: "next week"})
	assert.True(t, errors.Is(err, core2err.ErrValidation))

	_, err = service.CreateTask(ctx, primary.CreateTaskRequest{StoryID: "S1", Title: "x", EndAt: "2024-05-01", StartAt: "soon"})
	assert.True(t, errors.Is(err, core2err.ErrValidation))
	assert.Equal(t, 0, repo.count())
}

func TestCreateTask_Success(t *testing.T) {
	service, _ := newTestTaskService()

	got, err := service.CreateTask(ownerCtx(), primary.CreateTaskRequest{
		StoryID: "S1",
		Title:   "  Write tests ",
		StartAt: "2024-05-01 09:00",
		EndAt:   "2024-05-03",
	})

	require.NoError(t, err)
	assert.Equal(t, "Write tests", got.Title)
	assert.Equal(t, "ICEBOX", got.Status)
	assert.Equal(t, 1, got.OrderNo)
	require.NotNil(t, got.StartAt)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), *got.StartAt)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), *got.EndAt)
}

func TestUpdateTask_ClearsStartAndKeepsEnd(t *testing.T) {
	service, repo := newTestTaskService()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	repo.seed(&secondary.TaskRecord{ID: "T1", StoryID: "S1", Title: "x", Status: "ICEBOX", StartAt: &start, EndAt: &end})

	none, note := "", "pairing with Sam"
	got, err := service.UpdateTask(ownerCtx(), primary.UpdateTaskRequest{TaskID: "T1", StartAt: &none, Note: &note})

	require.NoError(t, err)
	assert.Nil(t, got.StartAt)
	assert.Equal(t, end, *got.EndAt)
	assert.Equal(t, "pairing with Sam", got.Note)

	bad := "DOING"
	_, err = service.UpdateTask(ownerCtx(), primary.UpdateTaskRequest{TaskID: "T1", Status: &bad})
	assert.True(t, errors.Is(err, core2err.ErrValidation))
}

func heldTasks() []*primary.Task {
	return []*primary.Task{
		{ID: "T1", Status: "ICEBOX"},
		{ID: "T2", Status: "ICEBOX"},
		{ID: "T3", Status: "DONE"},
	}
}

func TestMoveTask_ReplacesOnlyMovedTask(t *testing.T) {
	service, repo := newTestTaskService()
	repo.seed(&secondary.TaskRecord{ID: "T2", StoryID: "S1", Status: "ICEBOX"})
	held := heldTasks()

	got, err := service.MoveTask(ownerCtx(), held, "T2", "IN_PROGRESS")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Same(t, held[0], got[0])
	assert.Same(t, held[2], got[2])
	assert.Equal(t, "IN_PROGRESS", got[1].Status)
	assert.Equal(t, "ICEBOX", held[1].Status, "held sequence is not modified")
}

func TestMoveTask_FailureKeepsHeld(t *testing.T) {
	service, repo := newTestTaskService()
	repo.seed(&secondary.TaskRecord{ID: "T2", StoryID: "S1", Status: "ICEBOX"})
	repo.failWith("Update", storeFailure("update task"))
	held := heldTasks()

	got, err := service.MoveTask(ownerCtx(), held, "T2", "DONE")

	assert.True(t, errors.Is(err, core2err.ErrStore))
	assert.Equal(t, held, got)
	assert.Equal(t, "ICEBOX", got[1].Status)
}

func TestMoveTask_SameStatusIsNoop(t *testing.T) {
	service, repo := newTestTaskService()
	held := heldTasks()

	got, err := service.MoveTask(ownerCtx(), held, "T3", "DONE")

	require.NoError(t, err)
	assert.Equal(t, held, got)
	assert.Equal(t, 0, repo.updates)
}

func TestMoveTask_Rejected(t *testing.T) {
	service, repo := newTestTaskService()

	_, err := service.MoveTask(ownerCtx(), heldTasks(), "T9", "DONE")
	assert.True(t, errors.Is(err, core2err.ErrValidation))
	_, err = service.MoveTask(ownerCtx(), heldTasks(), "T1", "ARCHIVED")
	assert.True(t, errors.Is(err, core2err.ErrValidation))
	assert.Equal(t, 0, repo.updates)
}

func TestBoard(t *testing.T) {
	service, repo := newTestTaskService()
	repo.seed(
		&secondary.TaskRecord{ID: "T1", StoryID: "S1", Status: "DONE"},
		&secondary.TaskRecord{ID: "T2", StoryID: "S1", Status: "ICEBOX"},
		&secondary.TaskRecord{ID: "T3", StoryID: "S1", Status: "DONE"},
		&secondary.TaskRecord{ID: "T4", StoryID: "S2", Status: "DONE"},
	)

	cols, err := service.Board(ownerCtx(), "S1")

	require.NoError(t, err)
	require.Len(t, cols, 4)
	assert.Equal(t, "ICEBOX", cols[0].Status)
	assert.Len(t, cols[0].Tasks, 1)
	assert.Empty(t, cols[1].Tasks)
	assert.Empty(t, cols[2].Tasks)
	require.Len(t, cols[3].Tasks, 2)
	assert.Equal(t, "T1", cols[3].Tasks[0].ID)
	assert.Equal(t, "T3", cols[3].Tasks[1].ID)
}
