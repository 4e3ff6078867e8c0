package report

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/analysis"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/commentary"
	"github.com/shopspring/decimal"
)

// SectionKind identifies one report section. Document order is fixed by
// sectionOrder; sections are otherwise mutually independent.
type SectionKind string

const (
	SectionDashboard     SectionKind = "dashboard"
	SectionComposition   SectionKind = "composition"
	SectionIncomeMargins SectionKind = "income_margins"
	SectionBreakEven     SectionKind = "break_even"
	SectionRatios        SectionKind = "ratios"
	SectionCashflow      SectionKind = "cashflow"
)

var sectionOrder = []SectionKind{
	SectionDashboard,
	SectionComposition,
	SectionIncomeMargins,
	SectionBreakEven,
	SectionRatios,
	SectionCashflow,
}

var sectionTitles = map[SectionKind]string{
	SectionDashboard:     "Sintesi",
	SectionComposition:   "Composizione patrimoniale",
	SectionIncomeMargins: "Margini reddituali",
	SectionBreakEven:     "Punto di pareggio",
	SectionRatios:        "Indici di bilancio",
	SectionCashflow:      "Flussi di cassa",
}

// sectionCommentary maps each section to its narrative key. Sections
// without an entry render without a commentary block.
var sectionCommentary = map[SectionKind]commentary.SectionKey{
	SectionDashboard:     commentary.SectionDashboard,
	SectionComposition:   commentary.SectionComposition,
	SectionIncomeMargins: commentary.SectionIncomeMargins,
	SectionBreakEven:     commentary.SectionBreakEven,
	SectionRatios:        commentary.SectionRatios,
	SectionCashflow:      commentary.SectionCashflow,
}

// NotAvailable is the placeholder rendered for a metric the analytical
// service did not compute. Rendering zero instead would imply a
// computed-and-zero result.
const NotAvailable = "n/d"

// Cell is one year-indexed value in a report row.
type Cell struct {
	Year      int              `json:"year"`
	Value     *decimal.Decimal `json:"value,omitempty" swaggertype:"string"`
	Available bool             `json:"available"`
}

// Render returns the display form of the cell
func (c Cell) Render() string {
	if !c.Available || c.Value == nil {
		return NotAvailable
	}
	return c.Value.String()
}

// Row is one labeled metric across all report years.
type Row struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// Section is one rendered report section: a table of year-indexed rows
// plus an optional narrative block.
type Section struct {
	Kind          SectionKind `json:"kind"`
	Title         string      `json:"title"`
	Years         []int       `json:"years"`
	Rows          []Row       `json:"rows"`
	Commentary    string      `json:"commentary,omitempty"`
	HasCommentary bool        `json:"has_commentary"`
}

// Report is the assembled document for one (company, scenario) snapshot.
type Report struct {
	CompanyName string    `json:"company_name"`
	Years       []int     `json:"years"`
	Sections    []Section `json:"sections"`
}

type metricRow struct {
	label string
	pick  func(analysis.YearCalculations) *decimal.Decimal
}

var sectionMetrics = map[SectionKind][]metricRow{
	SectionDashboard: {
		{"ROE %", func(c analysis.YearCalculations) *decimal.Decimal { return c.ROE }},
		{"ROI %", func(c analysis.YearCalculations) *decimal.Decimal { return c.ROI }},
		{"EBITDA margin %", func(c analysis.YearCalculations) *decimal.Decimal { return c.EBITDAMargin }},
		{"Posizione finanziaria netta", func(c analysis.YearCalculations) *decimal.Decimal { return c.NetFinancialPosition }},
	},
	SectionComposition: {
		{"Capitale circolante netto", func(c analysis.YearCalculations) *decimal.Decimal { return c.WorkingCapital }},
		{"Posizione finanziaria netta", func(c analysis.YearCalculations) *decimal.Decimal { return c.NetFinancialPosition }},
	},
	SectionIncomeMargins: {
		{"ROS %", func(c analysis.YearCalculations) *decimal.Decimal { return c.ROS }},
		{"EBITDA margin %", func(c analysis.YearCalculations) *decimal.Decimal { return c.EBITDAMargin }},
	},
	SectionBreakEven: {
		{"Fatturato di pareggio", func(c analysis.YearCalculations) *decimal.Decimal { return c.BreakEvenRevenue }},
		{"Margine di sicurezza %", func(c analysis.YearCalculations) *decimal.Decimal { return c.SafetyMargin }},
	},
	SectionRatios: {
		{"Indice di liquidità", func(c analysis.YearCalculations) *decimal.Decimal { return c.CurrentRatio }},
		{"Indice di liquidità secca", func(c analysis.YearCalculations) *decimal.Decimal { return c.QuickRatio }},
		{"Debt/Equity", func(c analysis.YearCalculations) *decimal.Decimal { return c.DebtToEquity }},
	},
}

// Build assembles the ordered section sequence from one immutable snapshot
// plus the commentary map. Each section derives its cells independently via
// the year-indexed lookup; a year missing from the calculations renders the
// explicit placeholder in every cell of that column.
func Build(companyName string, snap *analysis.ScenarioAnalysis, comments commentary.Map) *Report {
	years := snap.Years()
	sections := make([]Section, 0, len(sectionOrder))

	for _, kind := range sectionOrder {
		sec := Section{
			Kind:  kind,
			Title: sectionTitles[kind],
			Years: years,
		}
		if kind == SectionCashflow {
			sec.Rows = cashflowRows(snap, years)
		} else {
			sec.Rows = metricRows(snap, years, sectionMetrics[kind])
		}
		if key, ok := sectionCommentary[kind]; ok {
			if text, found := comments.Get(key); found {
				sec.Commentary = text
				sec.HasCommentary = true
			}
		}
		sections = append(sections, sec)
	}

	return &Report{CompanyName: companyName, Years: years, Sections: sections}
}

func metricRows(snap *analysis.ScenarioAnalysis, years []int, metrics []metricRow) []Row {
	rows := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		row := Row{Label: m.label, Cells: make([]Cell, 0, len(years))}
		for _, year := range years {
			cell := Cell{Year: year}
			if calc, ok := snap.ForYear(year); ok {
				if v := m.pick(calc); v != nil {
					value := *v
					cell.Value = &value
					cell.Available = true
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func cashflowRows(snap *analysis.ScenarioAnalysis, years []int) []Row {
	byYear := make(map[int]analysis.CashflowYear, len(snap.Calculations.Cashflow))
	for _, cf := range snap.Calculations.Cashflow {
		byYear[cf.Year] = cf
	}

	pickers := []struct {
		label string
		pick  func(analysis.CashflowYear) decimal.Decimal
	}{
		{"Flusso operativo", func(c analysis.CashflowYear) decimal.Decimal { return c.OperatingCashFlow }},
		{"Flusso da investimenti", func(c analysis.CashflowYear) decimal.Decimal { return c.InvestingCashFlow }},
		{"Flusso da finanziamenti", func(c analysis.CashflowYear) decimal.Decimal { return c.FinancingCashFlow }},
		{"Flusso netto", func(c analysis.CashflowYear) decimal.Decimal { return c.NetCashFlow }},
		{"Cassa finale", func(c analysis.CashflowYear) decimal.Decimal { return c.EndingCash }},
	}

	rows := make([]Row, 0, len(pickers))
	for _, p := range pickers {
		row := Row{Label: p.label, Cells: make([]Cell, 0, len(years))}
		for _, year := range years {
			cell := Cell{Year: year}
			if cf, ok := byYear[year]; ok {
				v := p.pick(cf)
				cell.Value = &v
				cell.Available = true
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows
}
