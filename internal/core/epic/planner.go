package epic

import "github.com/example/core2/internal/core/effects"

// StoryCascadeInput is one story and the tasks under it, pre-fetched by the
// caller.
type StoryCascadeInput struct {
	StoryID string
	TaskIDs []string
}

// PlanStoryRemoval returns the effects that remove a story: each task in
// order, then the story itself.
func PlanStoryRemoval(in StoryCascadeInput) []effects.Effect {
	out := make([]effects.Effect, 0, len(in.TaskIDs)+1)
	for _, id := range in.TaskIDs {
		out = append(out, effects.Delete(effects.EntityTask, id))
	}
	return append(out, effects.Delete(effects.EntityStory, in.StoryID))
}

// PlanEpicRemoval returns the final step of the cascade.
func PlanEpicRemoval(epicID string) []effects.Effect {
	return []effects.Effect{
		effects.Delete(effects.EntityEpic, epicID),
		effects.LogEffect{Level: "debug", Message: "epic deleted", Fields: map[string]any{"epic": epicID}},
	}
}
