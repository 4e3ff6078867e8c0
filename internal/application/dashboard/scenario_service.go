package dashboard

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/cache"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

// ScenarioService handles scenario reads and the mutations that invalidate
// a scenario's derived data. After every successful mutation the whole
// (company, scenario) cache subtree is dropped: analysis, commentary and
// everything else derived from the scenario must be re-read, not patched.
type ScenarioService struct {
	api     budget.ScenarioAPI
	store   *cache.Store
	details *DetailService
	logger  *zap.Logger
	metrics *telemetry.DashboardMetrics
}

// NewScenarioService creates a new scenario service. metrics may be nil.
func NewScenarioService(api budget.ScenarioAPI, store *cache.Store, details *DetailService, logger *zap.Logger, metrics *telemetry.DashboardMetrics) *ScenarioService {
	return &ScenarioService{
		api:     api,
		store:   store,
		details: details,
		logger:  logger,
		metrics: metrics,
	}
}

// Years returns the fiscal years with recorded statements for one company
func (s *ScenarioService) Years(ctx context.Context, companyID uuid.UUID) ([]int, error) {
	detail, err := s.details.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return detail.Years, nil
}

// Scenarios returns the budget scenarios of one company
func (s *ScenarioService) Scenarios(ctx context.Context, companyID uuid.UUID) ([]budget.BudgetScenario, error) {
	detail, err := s.details.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return detail.Scenarios, nil
}

// Reportable returns the scenarios eligible for the printable report,
// annual scenarios only
func (s *ScenarioService) Reportable(ctx context.Context, companyID uuid.UUID) ([]budget.BudgetScenario, error) {
	scenarios, err := s.Scenarios(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return budget.ReportableScenarios(scenarios), nil
}

// Preferred resolves the scenario the dashboard should open for a company:
// the first active scenario, else the first, else ErrNoScenario.
func (s *ScenarioService) Preferred(ctx context.Context, companyID uuid.UUID) (*budget.BudgetScenario, error) {
	scenarios, err := s.Scenarios(ctx, companyID)
	if err != nil {
		return nil, err
	}
	preferred := budget.PreferredScenario(scenarios)
	if preferred == nil {
		return nil, shared.ErrNoScenario
	}
	return preferred, nil
}

// UpdateScenario forwards a scenario mutation and drops the derived data.
// Scenario master data lives in the detail bundle, so the company's detail
// entry is dropped too and the overview map marked for rebuild.
func (s *ScenarioService) UpdateScenario(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	if err := s.api.UpdateScenario(ctx, companyID, scenarioID, payload); err != nil {
		return err
	}
	s.invalidateScenario(companyID, scenarioID)
	s.store.Invalidate(cache.CompanyDetailKey(companyID))
	s.details.MarkDirty()
	s.logger.Info("scenario updated",
		zap.String("company_id", companyID.String()),
		zap.String("scenario_id", scenarioID.String()))
	return nil
}

// SaveAssumptions forwards an assumption-set mutation and drops the
// derived data
func (s *ScenarioService) SaveAssumptions(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	if err := s.api.SaveAssumptions(ctx, companyID, scenarioID, payload); err != nil {
		return err
	}
	s.invalidateScenario(companyID, scenarioID)
	s.logger.Info("assumptions saved",
		zap.String("company_id", companyID.String()),
		zap.String("scenario_id", scenarioID.String()))
	return nil
}

// GenerateForecast asks the analytical service to recompute a scenario's
// forecast, then drops the derived data so the dashboard re-reads the new
// numbers
func (s *ScenarioService) GenerateForecast(ctx context.Context, companyID, scenarioID uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "scenario", "generate_forecast")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID,
		telemetry.SpanAttrScenarioID, scenarioID,
	)

	if err := s.api.GenerateForecast(ctx, companyID, scenarioID); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	s.invalidateScenario(companyID, scenarioID)
	if s.metrics != nil {
		s.metrics.RecordForecastTriggered(ctx, companyID)
	}
	s.logger.Info("forecast generated",
		zap.String("company_id", companyID.String()),
		zap.String("scenario_id", scenarioID.String()))
	return nil
}

// invalidateScenario drops everything derived for the pair
func (s *ScenarioService) invalidateScenario(companyID, scenarioID uuid.UUID) {
	s.store.InvalidatePrefix(cache.ScenarioKey(companyID, scenarioID))
}
