// Package story contains the pure business logic for user stories.
package story

import (
	"fmt"
	"strings"

	"github.com/example/core2/internal/core/template"
	core2err "github.com/example/core2/internal/errors"
)

// Story statuses.
const (
	StatusStart      = "START"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusTested     = "TESTED"
)

// Statuses lists every story status in workflow order.
var Statuses = []string{StatusStart, StatusInProgress, StatusDone, StatusTested}

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 5
)

// ValidStatus reports whether s is a story status.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to a validation error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return core2err.Validation(r.Reason)
}

// SaveStoryContext provides context for story create and update guards.
type SaveStoryContext struct {
	Title              string
	UserStory          string
	AcceptanceCriteria string // empty means the default template
	Status             string // optional
	Priority           int
}

// CanSaveStory evaluates whether a story can be saved.
// Rules:
// - Title and narrative must be non-empty
// - Priority must be within [1, 5]
// - Narrative and acceptance criteria keep their template's placeholder count
// - Status, when given, must be a story status
func CanSaveStory(ctx SaveStoryContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if strings.TrimSpace(ctx.UserStory) == "" {
		return GuardResult{Allowed: false, Reason: "user story is required"}
	}
	if ctx.Priority < MinPriority || ctx.Priority > MaxPriority {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("priority must be between %d and %d (got %d)", MinPriority, MaxPriority, ctx.Priority)}
	}
	if n, want := template.Count(ctx.UserStory), template.Count(template.UserStory); n != want {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("user story must keep its %d placeholders (found %d)", want, n)}
	}
	if ctx.AcceptanceCriteria != "" {
		if n, want := template.Count(ctx.AcceptanceCriteria), template.Count(template.AcceptanceCriteria); n != want {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("acceptance criteria must keep its %d placeholders (found %d)", want, n)}
		}
	}
	if ctx.Status != "" && !ValidStatus(ctx.Status) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid story status %q", ctx.Status)}
	}
	return GuardResult{Allowed: true}
}
