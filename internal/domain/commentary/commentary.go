package commentary

// SectionKey identifies the report section a piece of generated narrative
// text belongs to. The keys are fixed by the narrative engine.
type SectionKey string

const (
	SectionDashboard     SectionKey = "dashboard_comment"
	SectionComposition   SectionKey = "composition_comment"
	SectionIncomeMargins SectionKey = "income_margins_comment"
	SectionBreakEven     SectionKey = "break_even_comment"
	SectionRatios        SectionKey = "ratios_comment"
	SectionCashflow      SectionKey = "cashflow_comment"
)

// Map holds generated narrative text per section for one (company,
// scenario) pair. Absence of a key means "not yet generated", never an
// empty string.
type Map map[SectionKey]string

// Get returns the narrative for a section and whether one was generated
func (m Map) Get(key SectionKey) (string, bool) {
	text, ok := m[key]
	return text, ok
}

// Empty returns an initialized empty map, the fallback value when
// hydration fails.
func Empty() Map {
	return Map{}
}
