package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/core2/internal/ports/primary"
)

// DomainAdapter translates CLI operations to DomainService calls.
type DomainAdapter struct {
	service primary.DomainService
	out     io.Writer
}

// NewDomainAdapter creates a new DomainAdapter with the given service.
func NewDomainAdapter(service primary.DomainService, out io.Writer) *DomainAdapter {
	return &DomainAdapter{service: service, out: out}
}

// Create creates a new domain.
func (a *DomainAdapter) Create(ctx context.Context, name, code, colorName string) error {
	d, err := a.service.CreateDomain(ctx, primary.CreateDomainRequest{Name: name, Code: code, Color: colorName})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created domain %s: %s\n", d.ID, d.Name)
	return nil
}

// List lists the owner's domains.
func (a *DomainAdapter) List(ctx context.Context) error {
	domains, err := a.service.ListDomains(ctx)
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}
	if len(domains) == 0 {
		fmt.Fprintln(a.out, "No domains found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-36s %-8s %-10s %s\n", "ID", "CODE", "COLOR", "NAME")
	fmt.Fprintln(a.out, divider)
	for _, d := range domains {
		fmt.Fprintf(a.out, "%-36s %-8s %-10s %s\n", d.ID, orDash(d.Code), orDash(d.Color), d.Name)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays a single domain.
func (a *DomainAdapter) Show(ctx context.Context, domainID string) error {
	d, err := a.service.GetDomain(ctx, domainID)
	if err != nil {
		return fmt.Errorf("failed to get domain: %w", err)
	}
	fmt.Fprintf(a.out, "\nDomain:  %s\n", d.ID)
	fmt.Fprintf(a.out, "Name:    %s\n", d.Name)
	fmt.Fprintf(a.out, "Code:    %s\n", orDash(d.Code))
	fmt.Fprintf(a.out, "Color:   %s\n", orDash(d.Color))
	fmt.Fprintf(a.out, "Created: %s\n\n", formatTime(d.CreatedAt))
	return nil
}

// Update changes the given fields of a domain.
func (a *DomainAdapter) Update(ctx context.Context, req primary.UpdateDomainRequest) error {
	if req.Name == nil && req.Code == nil && req.Color == nil {
		return fmt.Errorf("must specify at least --name, --code or --color")
	}
	d, err := a.service.UpdateDomain(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update domain: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Domain %s updated\n", d.ID)
	return nil
}

// Delete deletes a domain.
func (a *DomainAdapter) Delete(ctx context.Context, domainID string) error {
	if err := a.service.DeleteDomain(ctx, domainID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted domain %s\n", domainID)
	return nil
}
