package dashboard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
)

// Revalidator maps an external refresh signal to cache invalidation. The
// host raises it when the operator returns to the dashboard after working
// elsewhere; scoping keeps the flush as narrow as the signal allows.
type Revalidator struct {
	store  *cache.Store
	logger *zap.Logger
}

// NewRevalidator creates a new revalidator
func NewRevalidator(store *cache.Store, logger *zap.Logger) *Revalidator {
	return &Revalidator{store: store, logger: logger}
}

// Revalidate stales cached data for the given scope: both ids narrow the
// flush to one scenario subtree, a company alone to that company's
// subtree, no ids to everything including the directory.
func (r *Revalidator) Revalidate(companyID, scenarioID uuid.UUID) {
	switch {
	case companyID != uuid.Nil && scenarioID != uuid.Nil:
		r.store.InvalidatePrefix(cache.ScenarioKey(companyID, scenarioID))
		r.logger.Debug("revalidated scenario scope",
			zap.String("company_id", companyID.String()),
			zap.String("scenario_id", scenarioID.String()))
	case companyID != uuid.Nil:
		r.store.InvalidatePrefix(cache.CompanyKey(companyID))
		r.logger.Debug("revalidated company scope",
			zap.String("company_id", companyID.String()))
	default:
		r.store.InvalidateAll()
		r.logger.Debug("revalidated all scopes")
	}
}
