// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Entity names understood by the executor.
const (
	EntityEpic  = "epic"
	EntityStory = "story"
	EntityTask  = "task"
)

// Persist operations.
const (
	OpDelete = "delete"
)

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a single-row store operation.
type PersistEffect struct {
	Entity    string // e.g. "task", "story", "epic"
	Operation string // e.g. "delete"
	ID        string // target row
}

func (e PersistEffect) EffectType() string { return "persist" }

// Delete is shorthand for a delete PersistEffect.
func Delete(entity, id string) PersistEffect {
	return PersistEffect{Entity: entity, Operation: OpDelete, ID: id}
}
