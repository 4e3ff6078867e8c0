package analysis

import (
	"context"

	"github.com/google/uuid"
)

// AnalysisAPI defines the port for the scenario-scoped aggregate read.
// One call returns the full snapshot; there is no partial read.
type AnalysisAPI interface {
	// Analysis returns the complete analysis snapshot for one
	// (company, scenario) pair
	Analysis(ctx context.Context, companyID, scenarioID uuid.UUID) (*ScenarioAnalysis, error)
}
