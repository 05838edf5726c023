// Package epic contains the pure business logic for epics, including the
// plan for deleting an epic together with its stories and tasks.
package epic

import (
	"strings"

	core2err "github.com/example/core2/internal/errors"
)

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

// SaveEpicContext provides context for epic guards.
type SaveEpicContext struct {
	ProjectID string
	Title     string
	Existing  bool // update of a stored epic; the project is already set
}

// CanSaveEpic requires a project and a non-empty title.
func CanSaveEpic(ctx SaveEpicContext) GuardResult {
	if !ctx.Existing && ctx.ProjectID == "" {
		return GuardResult{Allowed: false, Reason: "project is required"}
	}
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	return GuardResult{Allowed: true}
}
