// Package domain contains the pure business logic for domains.
package domain

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

// SaveDomainContext provides context for domain guards.
type SaveDomainContext struct {
	OwnerID string
	Name    string
}

// CanSaveDomain requires an owner and a non-empty name.
func CanSaveDomain(ctx SaveDomainContext) GuardResult {
	if ctx.OwnerID == "" {
		return GuardResult{Allowed: false, Reason: "sign in required"}
	}
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "name is required"}
	}
	return GuardResult{Allowed: true}
}
