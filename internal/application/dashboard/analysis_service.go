package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/analysis"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// AnalysisService serves the full analysis snapshot of one
// (company, scenario) pair through the cache. Failures surface to the
// caller: an analysis that cannot be loaded renders as an error, never as
// stale numbers.
type AnalysisService struct {
	api   analysis.AnalysisAPI
	store *cache.Store
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(api analysis.AnalysisAPI, store *cache.Store) *AnalysisService {
	return &AnalysisService{api: api, store: store}
}

// Snapshot returns the analysis for the pair, cached until the scenario
// subtree is invalidated
func (s *AnalysisService) Snapshot(ctx context.Context, companyID, scenarioID uuid.UUID) (*analysis.ScenarioAnalysis, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analysis", "snapshot")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID,
		telemetry.SpanAttrScenarioID, scenarioID,
	)

	snap, err := cache.Fetch(ctx, s.store, cache.AnalysisKey(companyID, scenarioID), func(ctx context.Context) (*analysis.ScenarioAnalysis, error) {
		return s.api.Analysis(ctx, companyID, scenarioID)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return snap, nil
}
