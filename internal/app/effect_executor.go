package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/core2/internal/core/effects"
	"github.com/example/core2/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor runs persist effects against the repositories and
// log effects through slog.
type DefaultEffectExecutor struct {
	epicRepo  secondary.EpicRepository
	storyRepo secondary.StoryRepository
	taskRepo  secondary.TaskRepository
	logger    *slog.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(
	epicRepo secondary.EpicRepository,
	storyRepo secondary.StoryRepository,
	taskRepo secondary.TaskRepository,
	logger *slog.Logger,
) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		epicRepo:  epicRepo,
		storyRepo: storyRepo,
		taskRepo:  taskRepo,
		logger:    loggerOrDefault(logger),
	}
}

// Execute processes effects in sequence and stops at the first failure,
// returning that step's error as is.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return err
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.LogEffect:
		e.log(ctx, typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	if eff.Operation != effects.OpDelete {
		return fmt.Errorf("unknown %s operation: %s", eff.Entity, eff.Operation)
	}
	var err error
	switch eff.Entity {
	case effects.EntityEpic:
		_, err = e.epicRepo.Delete(ctx, eff.ID)
	case effects.EntityStory:
		_, err = e.storyRepo.Delete(ctx, eff.ID)
	case effects.EntityTask:
		_, err = e.taskRepo.Delete(ctx, eff.ID)
	default:
		return fmt.Errorf("unknown persist entity: %s", eff.Entity)
	}
	if err != nil {
		return err
	}
	e.logger.DebugContext(ctx, "row deleted", "entity", eff.Entity, "id", eff.ID)
	return nil
}

func (e *DefaultEffectExecutor) log(ctx context.Context, eff effects.LogEffect) {
	level := slog.LevelInfo
	_ = level.UnmarshalText([]byte(eff.Level))
	args := make([]any, 0, 2*len(eff.Fields))
	for k, v := range eff.Fields {
		args = append(args, k, v)
	}
	e.logger.Log(ctx, level, eff.Message, args...)
}
