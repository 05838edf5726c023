// Package dailytask contains the pure business logic for calendar entries.
package dailytask

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/core2/internal/core/instant"
	core2err "github.com/example/core2/internal/errors"
)

// Entry kinds.
const (
	KindMeeting  = "MEETING"
	KindPersonal = "PERSONAL"
	KindHealth   = "HEALTH"
	KindFocus    = "FOCUS"
	KindOther    = "OTHER"
)

// Kinds lists every entry kind.
var Kinds = []string{KindMeeting, KindPersonal, KindHealth, KindFocus, KindOther}

// ValidKind reports whether s is an entry kind.
func ValidKind(s string) bool {
	for _, k := range Kinds {
		if k == s {
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

// SaveDailyTaskContext provides context for entry guards. Times are raw input.
type SaveDailyTaskContext struct {
	Title    string
	StartAt  string
	EndAt    string
	Kind     string // optional
	Location *time.Location
}

// CanSaveDailyTask evaluates whether an entry can be saved.
// Rules:
// - Title must be non-empty
// - Both times must be present and parse
// - End must be strictly after start
func CanSaveDailyTask(ctx SaveDailyTaskContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if strings.TrimSpace(ctx.StartAt) == "" || strings.TrimSpace(ctx.EndAt) == "" {
		return GuardResult{Allowed: false, Reason: "start and end times are required"}
	}
	start, err := instant.Parse(ctx.StartAt, ctx.Location)
	if err != nil {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("start time %q is not a valid date", ctx.StartAt)}
	}
	end, err := instant.Parse(ctx.EndAt, ctx.Location)
	if err != nil {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("end time %q is not a valid date", ctx.EndAt)}
	}
	if !end.After(start) {
		return GuardResult{Allowed: false, Reason: "end time must be after start time"}
	}
	if ctx.Kind != "" && !ValidKind(ctx.Kind) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid kind %q", ctx.Kind)}
	}
	return GuardResult{Allowed: true}
}
