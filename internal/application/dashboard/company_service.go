package dashboard

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
)

// CompanyService handles the company directory: listing through the cache
// and the create, update and delete round trips. After every successful
// mutation the directory is re-fetched from the analytical service and the
// detail map rebuilt; a mutation result is never merged into the cached
// list optimistically.
type CompanyService struct {
	api       company.CompanyAPI
	store     *cache.Store
	details   *DetailService
	selection *Selection
	logger    *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(api company.CompanyAPI, store *cache.Store, details *DetailService, selection *Selection, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		api:       api,
		store:     store,
		details:   details,
		selection: selection,
		logger:    logger,
	}
}

// List returns the company directory, served from cache when warm
func (s *CompanyService) List(ctx context.Context) ([]company.Company, error) {
	return cache.Fetch(ctx, s.store, cache.CompanyListKey(), func(ctx context.Context) ([]company.Company, error) {
		return s.api.List(ctx)
	})
}

// Get returns one company from the cached directory
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			found := list[i]
			return &found, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Create registers a new company and refreshes the directory
func (s *CompanyService) Create(ctx context.Context, in company.Input) (*company.Company, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	created, err := s.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("company created",
		zap.String("company_id", created.ID.String()),
		zap.String("name", created.Name))
	s.refresh(ctx)
	return created, nil
}

// Update replaces a company's master data and refreshes the directory
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, in company.Input) (*company.Company, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.api.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("company updated", zap.String("company_id", id.String()))
	s.refresh(ctx)
	return updated, nil
}

// Delete removes a company, drops everything cached beneath it and
// refreshes the directory. A selection pointing at the deleted company is
// cleared.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.store.InvalidatePrefix(cache.CompanyKey(id))
	s.selection.ClearIfCompany(id)
	s.logger.Info("company deleted", zap.String("company_id", id.String()))
	s.refresh(ctx)
	return nil
}

// refresh drops the cached directory, loads it again and rebuilds the
// detail map against the fresh list. The invalidation alone already
// guarantees the next read sees fresh data, so a failed eager re-fetch is
// only logged.
func (s *CompanyService) refresh(ctx context.Context) {
	s.store.Invalidate(cache.CompanyListKey())
	list, err := s.List(ctx)
	if err != nil {
		s.logger.Warn("company list re-fetch after mutation failed", zap.Error(err))
		return
	}
	if _, err := s.details.Rebuild(ctx, list); err != nil {
		s.logger.Warn("detail rebuild after mutation failed", zap.Error(err))
	}
}
