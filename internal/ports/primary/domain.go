// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces the CLI and terminal views call into.
package primary

import (
	"context"
	"time"
)

// DomainService defines the primary port for domain operations.
// A Domain is a named area of responsibility that groups projects.
type DomainService interface {
	// CreateDomain creates a domain owned by the caller.
	CreateDomain(ctx context.Context, req CreateDomainRequest) (*Domain, error)

	// GetDomain retrieves a domain by ID.
	GetDomain(ctx context.Context, domainID string) (*Domain, error)

	// ListDomains lists the caller's domains, newest first.
	ListDomains(ctx context.Context) ([]*Domain, error)

	// UpdateDomain applies a partial update.
	UpdateDomain(ctx context.Context, req UpdateDomainRequest) (*Domain, error)

	// DeleteDomain deletes a domain. Its projects keep existing without one.
	DeleteDomain(ctx context.Context, domainID string) error
}

// CreateDomainRequest contains parameters for creating a domain.
type CreateDomainRequest struct {
	Name  string // Required
	Code  string // Optional short code, e.g. "OPS"
	Color string // Optional display color
}

// UpdateDomainRequest contains parameters for updating a domain.
// Nil fields are left unchanged; a pointer to "" clears Code or Color.
type UpdateDomainRequest struct {
	DomainID string
	Name     *string
	Code     *string
	Color    *string
}

// Domain represents a domain entity at the port boundary.
type Domain struct {
	ID        string
	OwnerID   string
	Name      string
	Code      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
