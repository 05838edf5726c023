package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/core2/internal/db/driver"
	"github.com/example/core2/internal/ports/secondary"
)

// DomainRepository implements secondary.DomainRepository.
type DomainRepository struct {
	base
}

// NewDomainRepository creates a new domain repository.
func NewDomainRepository(drv driver.Driver) *DomainRepository {
	return &DomainRepository{base{drv: drv}}
}

const domainSelectCols = "id, owner_id, name, code, color, created_at, updated_at"

// scanDomain scans a domain row into a DomainRecord.
func scanDomain(s scanner) (*secondary.DomainRecord, error) {
	var (
		code, color          sql.NullString
		createdAt, updatedAt timeCol
	)
	r := &secondary.DomainRecord{}
	if err := s.Scan(&r.ID, &r.OwnerID, &r.Name, &code, &color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Code = code.String
	r.Color = color.String
	r.CreatedAt = createdAt.Time
	r.UpdatedAt = updatedAt.Time
	return r, nil
}

// ListByOwner returns the owner's domains, newest first.
func (r *DomainRepository) ListByOwner(ctx context.Context, ownerID string, page secondary.Page) ([]*secondary.DomainRecord, error) {
	limit, largs := pageClause(page)
	rows, err := r.drv.DB().QueryContext(ctx,
		r.q("SELECT "+domainSelectCols+" FROM domain WHERE owner_id = ? ORDER BY created_at DESC"+limit),
		append([]any{ownerID}, largs...)...,
	)
	if err != nil {
		return nil, r.storeErr("list domains", err)
	}
	out, err := collect(rows, scanDomain)
	if err != nil {
		return nil, r.storeErr("scan domains", err)
	}
	return out, nil
}

// GetByID retrieves a domain by its ID.
func (r *DomainRepository) GetByID(ctx context.Context, id string) (*secondary.DomainRecord, error) {
	row := r.drv.DB().QueryRowContext(ctx, r.q("SELECT "+domainSelectCols+" FROM domain WHERE id = ?"), id)
	rec, err := scanDomain(row)
	if err != nil {
		return nil, r.rowErr("domain", id, "get domain", err)
	}
	return rec, nil
}

// Create persists a new domain.
func (r *DomainRepository) Create(ctx context.Context, in secondary.DomainInsert) (*secondary.DomainRecord, error) {
	now := r.drv.Now()
	row := r.drv.DB().QueryRowContext(ctx,
		r.q("INSERT INTO domain (id, owner_id, name, code, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING "+domainSelectCols),
		r.newID(), in.OwnerID, in.Name, nullString(in.Code), nullString(in.Color), now, now,
	)
	rec, err := scanDomain(row)
	if err != nil {
		return nil, r.storeErr("create domain", err)
	}
	return rec, nil
}

// Update applies a partial patch.
func (r *DomainRepository) Update(ctx context.Context, id string, patch secondary.DomainPatch) (*secondary.DomainRecord, error) {
	var s setList
	s.text("name", patch.Name)
	s.nullableText("code", patch.Code)
	s.nullableText("color", patch.Color)

	rec, err := scanDomain(r.update(ctx, "domain", domainSelectCols, id, &s))
	if err != nil {
		return nil, r.rowErr("domain", id, "update domain", err)
	}
	return rec, nil
}

// Delete removes a domain and returns the deleted row.
func (r *DomainRepository) Delete(ctx context.Context, id string) (*secondary.DomainRecord, error) {
	rec, err := scanDomain(r.deleteReturning(ctx, r.drv.DB(), "domain", domainSelectCols, id))
	if err != nil {
		return nil, r.rowErr("domain", id, "delete domain", err)
	}
	return rec, nil
}

var _ secondary.DomainRepository = (*DomainRepository)(nil)
