package budget

// PreferredScenario picks the scenario a dashboard should open with.
// Scanning in list order, the first scenario with the active flag wins;
// if no flag is set the first element wins; an empty list yields nil.
// Total by construction: there is no error path.
func PreferredScenario(scenarios []BudgetScenario) *BudgetScenario {
	for i := range scenarios {
		if scenarios[i].IsActive {
			s := scenarios[i]
			return &s
		}
	}
	if len(scenarios) > 0 {
		s := scenarios[0]
		return &s
	}
	return nil
}
