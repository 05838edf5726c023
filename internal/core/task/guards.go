// Package task contains the pure business logic for task operations.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"fmt"
	"strings"

	"github.com/example/core2/internal/core/instant"
	core2err "github.com/example/core2/internal/errors"
)

// Task statuses, in board column order.
const (
	StatusIcebox     = "ICEBOX"
	StatusInProgress = "IN_PROGRESS"
	StatusDiscussion = "DISCUSSION"
	StatusDone       = "DONE"
)

// Statuses lists every status in board column order.
var Statuses = []string{StatusIcebox, StatusInProgress, StatusDiscussion, StatusDone}

// ValidStatus reports whether s is a task status.
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

// SaveTaskContext provides context for task create and update guards.
type SaveTaskContext struct {
	Title  string
	EndAt  string // raw input; required
	Status string // optional
}

// MoveTaskContext provides context for a board move.
type MoveTaskContext struct {
	TaskID       string
	TaskFound    bool
	TargetStatus string
}

// CanSaveTask evaluates whether a task can be created or updated.
// Rules:
// - Title must be non-empty
// - End date must be present and parse
// - Status, when given, must be a task status
func CanSaveTask(ctx SaveTaskContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if strings.TrimSpace(ctx.EndAt) == "" {
		return GuardResult{Allowed: false, Reason: "end date is required"}
	}
	if !instant.Valid(ctx.EndAt) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("end date %q is not a valid date", ctx.EndAt)}
	}
	if ctx.Status != "" && !ValidStatus(ctx.Status) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid task status %q", ctx.Status)}
	}
	return GuardResult{Allowed: true}
}

// CanMoveTask evaluates whether a task can be dropped on a board column.
func CanMoveTask(ctx MoveTaskContext) GuardResult {
	if !ctx.TaskFound {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("task %s not found", ctx.TaskID)}
	}
	if !ValidStatus(ctx.TargetStatus) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid task status %q", ctx.TargetStatus)}
	}
	return GuardResult{Allowed: true}
}
