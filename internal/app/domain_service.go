package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/core2/internal/core/domain"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

// DomainServiceImpl implements the DomainService interface.
type DomainServiceImpl struct {
	domainRepo secondary.DomainRepository
	scope      *OwnerScope
	logger     *slog.Logger
}

// NewDomainService creates a new DomainService with injected dependencies.
func NewDomainService(domainRepo secondary.DomainRepository, scope *OwnerScope, logger *slog.Logger) *DomainServiceImpl {
	return &DomainServiceImpl{
		domainRepo: domainRepo,
		scope:      scope,
		logger:     loggerOrDefault(logger),
	}
}

// CreateDomain creates a domain owned by the caller.
func (s *DomainServiceImpl) CreateDomain(ctx context.Context, req primary.CreateDomainRequest) (*primary.Domain, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	guard := domain.CanSaveDomain(domain.SaveDomainContext{OwnerID: owner, Name: req.Name})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	rec, err := s.domainRepo.Create(ctx, secondary.DomainInsert{
		OwnerID: owner,
		Name:    strings.TrimSpace(req.Name),
		Code:    strings.TrimSpace(req.Code),
		Color:   strings.TrimSpace(req.Color),
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "domain created", "domain", rec.ID)
	return recordToDomain(rec), nil
}

// GetDomain retrieves a domain by ID.
func (s *DomainServiceImpl) GetDomain(ctx context.Context, domainID string) (*primary.Domain, error) {
	rec, err := s.scope.Domain(ctx, domainID)
	if err != nil {
		return nil, err
	}
	return recordToDomain(rec), nil
}

// ListDomains lists the caller's domains.
func (s *DomainServiceImpl) ListDomains(ctx context.Context) ([]*primary.Domain, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.domainRepo.ListByOwner(ctx, owner, all)
	if err != nil {
		return nil, err
	}
	domains := make([]*primary.Domain, len(records))
	for i, r := range records {
		domains[i] = recordToDomain(r)
	}
	return domains, nil
}

// UpdateDomain applies a partial update.
func (s *DomainServiceImpl) UpdateDomain(ctx context.Context, req primary.UpdateDomainRequest) (*primary.Domain, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		guard := domain.CanSaveDomain(domain.SaveDomainContext{OwnerID: owner, Name: *req.Name})
		if err := guard.Error(); err != nil {
			return nil, err
		}
	}
	if _, err := s.scope.Domain(ctx, req.DomainID); err != nil {
		return nil, err
	}

	rec, err := s.domainRepo.Update(ctx, req.DomainID, secondary.DomainPatch{
		Name:  trimmed(req.Name),
		Code:  trimmed(req.Code),
		Color: trimmed(req.Color),
	})
	if err != nil {
		return nil, err
	}
	return recordToDomain(rec), nil
}

// DeleteDomain deletes a domain.
func (s *DomainServiceImpl) DeleteDomain(ctx context.Context, domainID string) error {
	if _, err := s.scope.Domain(ctx, domainID); err != nil {
		return err
	}
	if _, err := s.domainRepo.Delete(ctx, domainID); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "domain deleted", "domain", domainID)
	return nil
}

func recordToDomain(r *secondary.DomainRecord) *primary.Domain {
	return &primary.Domain{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Code:      r.Code,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure DomainServiceImpl implements the interface
var _ primary.DomainService = (*DomainServiceImpl)(nil)
