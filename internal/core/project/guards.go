// Package project contains the pure business logic for projects.
package project

import (
	"fmt"
	"strings"

	core2err "github.com/example/core2/internal/errors"
)

// Project types. The type is fixed at creation.
const (
	TypeNew      = "NEW"
	TypeExisting = "EXISTING"
)

// Project statuses.
const (
	StatusIntel     = "INTEL"
	StatusDesign    = "DESIGN"
	StatusExecution = "EXECUTION"
	StatusTest      = "TEST"
	StatusPaused    = "PAUSED"
	StatusArchived  = "ARCHIVED"
)

// Statuses lists every project status in lifecycle order.
var Statuses = []string{StatusIntel, StatusDesign, StatusExecution, StatusTest, StatusPaused, StatusArchived}

// ValidType reports whether s is a project type.
func ValidType(s string) bool {
	return s == TypeNew || s == TypeExisting
}

// ValidStatus reports whether s is a project status.
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

// CreateProjectContext provides context for project creation guards.
type CreateProjectContext struct {
	OwnerID string
	Name    string
	Type    string
	Status  string // optional
}

// UpdateProjectContext provides context for project update guards.
// Name and Status are only checked when set.
type UpdateProjectContext struct {
	Name   *string
	Status *string
}

// CanCreateProject evaluates whether a project can be created.
// Rules:
// - Owner must be known
// - Name must be non-empty
// - Type must be NEW or EXISTING
func CanCreateProject(ctx CreateProjectContext) GuardResult {
	if ctx.OwnerID == "" {
		return GuardResult{Allowed: false, Reason: "sign in required"}
	}
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "name is required"}
	}
	if !ValidType(ctx.Type) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid project type %q: must be %s or %s", ctx.Type, TypeNew, TypeExisting)}
	}
	if ctx.Status != "" && !ValidStatus(ctx.Status) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid project status %q", ctx.Status)}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateProject evaluates a partial update.
func CanUpdateProject(ctx UpdateProjectContext) GuardResult {
	if ctx.Name != nil && strings.TrimSpace(*ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "name is required"}
	}
	if ctx.Status != nil && !ValidStatus(*ctx.Status) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid project status %q", *ctx.Status)}
	}
	return GuardResult{Allowed: true}
}
