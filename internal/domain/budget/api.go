package budget

import (
	"context"

	"github.com/google/uuid"
)

// ScenarioAPI defines the port for scenario and fiscal-year reads plus the
// scenario-scoped mutations this layer forwards without interpreting.
// The HTTP implementation lives in the infrastructure layer.
type ScenarioAPI interface {
	// Years returns the fiscal years with recorded statements for a company,
	// in the order the analytical service reports them
	Years(ctx context.Context, companyID uuid.UUID) ([]int, error)

	// Scenarios returns every budget scenario of a company
	Scenarios(ctx context.Context, companyID uuid.UUID) ([]BudgetScenario, error)

	// UpdateScenario forwards an opaque scenario mutation. On success the
	// caller must invalidate everything cached under (company, scenario).
	UpdateScenario(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error

	// SaveAssumptions forwards an opaque assumption-set mutation; same
	// invalidation duty as UpdateScenario
	SaveAssumptions(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error

	// GenerateForecast asks the analytical service to recompute the forecast
	// for a scenario; same invalidation duty as UpdateScenario
	GenerateForecast(ctx context.Context, companyID, scenarioID uuid.UUID) error
}
