// Package testlog contains the pure business logic for story test logs.
package testlog

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

// SaveTestLogContext provides context for test log guards.
type SaveTestLogContext struct {
	StoryID  string
	Notes    string
	Existing bool // update of a stored log; the story is already set
}

// CanSaveTestLog requires a story and non-empty notes.
func CanSaveTestLog(ctx SaveTestLogContext) GuardResult {
	if !ctx.Existing && ctx.StoryID == "" {
		return GuardResult{Allowed: false, Reason: "story is required"}
	}
	if strings.TrimSpace(ctx.Notes) == "" {
		return GuardResult{Allowed: false, Reason: "notes are required"}
	}
	return GuardResult{Allowed: true}
}
