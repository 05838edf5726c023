package app

import (
	"context"

	"github.com/example/core2/internal/core/epic"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// EpicCascade removes an epic, its stories and their tasks one row at a
// time: for each story its tasks then the story, and finally the epic. The
// first failing step stops the run and its error is returned alone; rows
// removed before it stay removed.
type EpicCascade struct {
	epicRepo  secondary.EpicRepository
	storyRepo secondary.StoryRepository
	taskRepo  secondary.TaskRepository
	executor  EffectExecutor
}

// NewEpicCascade creates the sequential cascade.
func NewEpicCascade(
	epicRepo secondary.EpicRepository,
	storyRepo secondary.StoryRepository,
	taskRepo secondary.TaskRepository,
	executor EffectExecutor,
) *EpicCascade {
	return &EpicCascade{
		epicRepo:  epicRepo,
		storyRepo: storyRepo,
		taskRepo:  taskRepo,
		executor:  executor,
	}
}

// Run executes the cascade for epicID.
func (c *EpicCascade) Run(ctx context.Context, epicID string) (*primary.DeleteEpicResponse, error) {
	if _, err := c.epicRepo.GetByID(ctx, epicID); err != nil {
		return nil, err
	}
	stories, err := c.storyRepo.ListByEpic(ctx, epicID, all)
	if err != nil {
		return nil, err
	}

	resp := &primary.DeleteEpicResponse{EpicID: epicID}
	for _, st := range stories {
		tasks, err := c.taskRepo.ListByStory(ctx, st.ID, all)
		if err != nil {
			return nil, err
		}
		in := epic.StoryCascadeInput{StoryID: st.ID, TaskIDs: make([]string, len(tasks))}
		for i, t := range tasks {
			in.TaskIDs[i] = t.ID
		}
		if err := c.executor.Execute(ctx, epic.PlanStoryRemoval(in)); err != nil {
			return nil, err
		}
		resp.TaskIDs = append(resp.TaskIDs, in.TaskIDs...)
		resp.StoryIDs = append(resp.StoryIDs, st.ID)
	}

	if err := c.executor.Execute(ctx, epic.PlanEpicRemoval(epicID)); err != nil {
		return nil, err
	}
	return resp, nil
}
