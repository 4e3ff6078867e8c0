package dashboard

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// DefaultDetailConcurrency bounds the fan-out when no explicit limit is
// configured.
const DefaultDetailConcurrency = 4

// DetailService maintains the per-company detail map: for every company in
// the directory, the fiscal years with recorded statements and the budget
// scenarios. The map is rebuilt as a whole and swapped in one step only
// after every branch of the fan-out has settled; readers never observe a
// half-built map.
//
// A company whose loads fail contributes the empty detail. One company
// with a broken dataset must not blank the rest of the overview.
type DetailService struct {
	scenarios budget.ScenarioAPI
	store     *cache.Store
	limit     int
	logger    *zap.Logger
	metrics   *telemetry.DashboardMetrics

	// buildMu serializes rebuilds so two triggers cannot interleave their
	// publications.
	buildMu sync.Mutex

	mu       sync.RWMutex
	details  map[uuid.UUID]budget.CompanyDetail
	identity string
	built    bool
}

// NewDetailService creates a new detail service. limit caps the number of
// companies loaded concurrently; metrics may be nil.
func NewDetailService(scenarios budget.ScenarioAPI, store *cache.Store, limit int, logger *zap.Logger, metrics *telemetry.DashboardMetrics) *DetailService {
	if limit <= 0 {
		limit = DefaultDetailConcurrency
	}
	return &DetailService{
		scenarios: scenarios,
		store:     store,
		limit:     limit,
		logger:    logger,
		metrics:   metrics,
	}
}

// Load returns the detail of one company, fetching years and scenarios
// from the analytical service on a cache miss.
func (s *DetailService) Load(ctx context.Context, companyID uuid.UUID) (budget.CompanyDetail, error) {
	return cache.Fetch(ctx, s.store, cache.CompanyDetailKey(companyID), func(ctx context.Context) (budget.CompanyDetail, error) {
		years, err := s.scenarios.Years(ctx, companyID)
		if err != nil {
			return budget.CompanyDetail{}, err
		}
		scenarios, err := s.scenarios.Scenarios(ctx, companyID)
		if err != nil {
			return budget.CompanyDetail{}, err
		}
		return budget.CompanyDetail{Years: years, Scenarios: scenarios}, nil
	})
}

// Rebuild loads the detail of every listed company and replaces the
// published map atomically. Per-company failures are isolated: the failing
// company maps to the empty detail and the others keep their data. Nothing
// is published until all branches have settled.
func (s *DetailService) Rebuild(ctx context.Context, companies []company.Company) (map[uuid.UUID]budget.CompanyDetail, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "detail", "rebuild")
	defer span.End()
	telemetry.SetAttributes(span, "company_count", len(companies))

	details := make(map[uuid.UUID]budget.CompanyDetail, len(companies))
	var (
		detailsMu sync.Mutex
		failed    atomic.Int32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for _, comp := range companies {
		g.Go(func() error {
			detail, err := s.Load(gctx, comp.ID)
			if err != nil {
				failed.Add(1)
				s.logger.Warn("company detail load failed, using empty detail",
					zap.String("company_id", comp.ID.String()),
					zap.String("name", comp.Name),
					zap.Error(err))
				if s.metrics != nil {
					s.metrics.RecordDetailFailure(gctx, comp.ID)
				}
				detail = budget.EmptyDetail()
			}
			detailsMu.Lock()
			details[comp.ID] = detail
			detailsMu.Unlock()
			return nil
		})
	}
	// Branches swallow their own failures, so Wait never reports one; a
	// canceled context is the only reason to abandon the build.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.mu.Lock()
	s.details = details
	s.identity = listIdentity(companies)
	s.built = true
	s.mu.Unlock()

	telemetry.SetAttributes(span, "failed", failed.Load())
	s.logger.Debug("company details rebuilt",
		zap.Int("companies", len(companies)),
		zap.Int32("failed", failed.Load()))
	return details, nil
}

// EnsureFresh returns the published map, rebuilding it first when the
// company directory changed since the last build or a mutation marked the
// map dirty.
func (s *DetailService) EnsureFresh(ctx context.Context, companies []company.Company) (map[uuid.UUID]budget.CompanyDetail, error) {
	identity := listIdentity(companies)
	s.mu.RLock()
	if s.built && s.identity == identity {
		details := s.details
		s.mu.RUnlock()
		return details, nil
	}
	s.mu.RUnlock()
	return s.Rebuild(ctx, companies)
}

// Detail returns the published detail for one company. Companies missing
// from the map resolve to the empty detail, so callers can always index
// years and scenarios.
func (s *DetailService) Detail(companyID uuid.UUID) budget.CompanyDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if detail, ok := s.details[companyID]; ok {
		return detail
	}
	return budget.EmptyDetail()
}

// Snapshot returns the published map and whether a build completed. The
// map is replaced wholesale on rebuild, never mutated in place; callers
// must treat it as read-only.
func (s *DetailService) Snapshot() (map[uuid.UUID]budget.CompanyDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.details, s.built
}

// MarkDirty forces the next EnsureFresh to rebuild even though the company
// directory is unchanged. Called after mutations that invalidate detail
// cache entries.
func (s *DetailService) MarkDirty() {
	s.mu.Lock()
	s.built = false
	s.mu.Unlock()
}

// listIdentity fingerprints the directory by its ordered company ids
func listIdentity(companies []company.Company) string {
	ids := make([]string, len(companies))
	for i, comp := range companies {
		ids[i] = comp.ID.String()
	}
	return strings.Join(ids, ",")
}
