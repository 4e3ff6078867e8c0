package budget

import (
	"github.com/google/uuid"
)

// ScenarioType tags how a budget scenario was built.
type ScenarioType string

const (
	ScenarioTypeAnnual  ScenarioType = "annuale"
	ScenarioTypeInterim ScenarioType = "infrannuale" // mid-year partial, not reportable
)

// BudgetScenario is one named set of forecast assumptions for a company,
// anchored to a base year. The analytical service owns the record.
// At most one scenario per company is conceptually active, but this layer
// must tolerate zero or many active flags.
type BudgetScenario struct {
	ID        uuid.UUID    `json:"id"`
	CompanyID uuid.UUID    `json:"company_id"`
	Name      string       `json:"name"`
	BaseYear  int          `json:"base_year"`
	Type      ScenarioType `json:"scenario_type"`
	IsActive  bool         `json:"is_active"`
}

// IsInterim returns true for mid-year partial scenarios
func (s BudgetScenario) IsInterim() bool {
	return s.Type == ScenarioTypeInterim
}

// ReportableScenarios returns the scenarios usable by report and analysis
// views. Interim scenarios carry partial-year figures and are excluded.
func ReportableScenarios(scenarios []BudgetScenario) []BudgetScenario {
	out := make([]BudgetScenario, 0, len(scenarios))
	for _, s := range scenarios {
		if s.IsInterim() {
			continue
		}
		out = append(out, s)
	}
	return out
}
