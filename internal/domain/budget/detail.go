package budget

// CompanyDetail aggregates what the dashboard needs before opening a
// company: the fiscal years with recorded statements and the budget
// scenarios. Derived by the bulk detail loader, held only in the cache,
// and rebuilt whenever the company list changes identity.
type CompanyDetail struct {
	Years     []int            `json:"years"`
	Scenarios []BudgetScenario `json:"scenarios"`
}

// EmptyDetail is the fallback for a company whose detail fetch failed.
// Both slices are non-nil so consumers can range without guards.
func EmptyDetail() CompanyDetail {
	return CompanyDetail{Years: []int{}, Scenarios: []BudgetScenario{}}
}
