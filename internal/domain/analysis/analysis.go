package analysis

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// YearFigures holds the balance-sheet and income-statement figures recorded
// for one fiscal year, historical or forecast.
type YearFigures struct {
	Year int `json:"year"`

	// Balance sheet
	FixedAssets   decimal.Decimal `json:"fixed_assets" swaggertype:"string"`
	Inventory     decimal.Decimal `json:"inventory" swaggertype:"string"`
	Receivables   decimal.Decimal `json:"receivables" swaggertype:"string"`
	Cash          decimal.Decimal `json:"cash" swaggertype:"string"`
	Equity        decimal.Decimal `json:"equity" swaggertype:"string"`
	LongTermDebt  decimal.Decimal `json:"long_term_debt" swaggertype:"string"`
	ShortTermDebt decimal.Decimal `json:"short_term_debt" swaggertype:"string"`

	// Income statement
	Revenue          decimal.Decimal `json:"revenue" swaggertype:"string"`
	ProductionCosts  decimal.Decimal `json:"production_costs" swaggertype:"string"`
	EBITDA           decimal.Decimal `json:"ebitda" swaggertype:"string"`
	EBIT             decimal.Decimal `json:"ebit" swaggertype:"string"`
	FinancialCharges decimal.Decimal `json:"financial_charges" swaggertype:"string"`
	NetIncome        decimal.Decimal `json:"net_income" swaggertype:"string"`
}

// YearCalculations bundles the derived metrics for one fiscal year.
// Every metric is optional: the analytical service omits what it could not
// compute, and a nil metric must surface as "not available", never as zero.
type YearCalculations struct {
	ROE                  *decimal.Decimal `json:"roe,omitempty" swaggertype:"string"`
	ROI                  *decimal.Decimal `json:"roi,omitempty" swaggertype:"string"`
	ROS                  *decimal.Decimal `json:"ros,omitempty" swaggertype:"string"`
	EBITDAMargin         *decimal.Decimal `json:"ebitda_margin,omitempty" swaggertype:"string"`
	BreakEvenRevenue     *decimal.Decimal `json:"break_even_revenue,omitempty" swaggertype:"string"`
	SafetyMargin         *decimal.Decimal `json:"safety_margin,omitempty" swaggertype:"string"`
	WorkingCapital       *decimal.Decimal `json:"working_capital,omitempty" swaggertype:"string"`
	NetFinancialPosition *decimal.Decimal `json:"net_financial_position,omitempty" swaggertype:"string"`
	CurrentRatio         *decimal.Decimal `json:"current_ratio,omitempty" swaggertype:"string"`
	QuickRatio           *decimal.Decimal `json:"quick_ratio,omitempty" swaggertype:"string"`
	DebtToEquity         *decimal.Decimal `json:"debt_to_equity,omitempty" swaggertype:"string"`
}

// CashflowYear is one per-year cash-flow breakdown.
type CashflowYear struct {
	Year              int             `json:"year"`
	OperatingCashFlow decimal.Decimal `json:"operating_cash_flow" swaggertype:"string"`
	InvestingCashFlow decimal.Decimal `json:"investing_cash_flow" swaggertype:"string"`
	FinancingCashFlow decimal.Decimal `json:"financing_cash_flow" swaggertype:"string"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow" swaggertype:"string"`
	EndingCash        decimal.Decimal `json:"ending_cash" swaggertype:"string"`
}

// Calculations carries the derived-metric bundles keyed by the string form
// of the fiscal year, plus an optional cash-flow section.
type Calculations struct {
	ByYear   map[string]YearCalculations `json:"by_year"`
	Cashflow []CashflowYear              `json:"cashflow,omitempty"`
}

// ScenarioAnalysis is the immutable snapshot for one (company, scenario)
// pair. Every report section reads from the same snapshot so that figures
// agree across sections. Years present in the figure lists should have an
// entry in Calculations.ByYear, but consumers must treat a missing entry as
// "not computable" rather than erroring.
type ScenarioAnalysis struct {
	CompanyID       uuid.UUID     `json:"company_id" swaggertype:"string" format:"uuid"`
	ScenarioID      uuid.UUID     `json:"scenario_id" swaggertype:"string" format:"uuid"`
	HistoricalYears []YearFigures `json:"historical_years"`
	ForecastYears   []YearFigures `json:"forecast_years"`
	Calculations    Calculations  `json:"calculations"`
}

// Years returns the union of historical and forecast years, deduplicated
// and sorted ascending. This is the iteration order every report section
// uses.
func (a *ScenarioAnalysis) Years() []int {
	seen := make(map[int]bool, len(a.HistoricalYears)+len(a.ForecastYears))
	years := make([]int, 0, len(a.HistoricalYears)+len(a.ForecastYears))
	for _, f := range a.HistoricalYears {
		if !seen[f.Year] {
			seen[f.Year] = true
			years = append(years, f.Year)
		}
	}
	for _, f := range a.ForecastYears {
		if !seen[f.Year] {
			seen[f.Year] = true
			years = append(years, f.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ForYear returns the derived-metric bundle for one fiscal year. Lookup is
// by the string form of the year, matching how the analytical service keys
// the map. ok is false when the service computed nothing for that year.
func (a *ScenarioAnalysis) ForYear(year int) (YearCalculations, bool) {
	calc, ok := a.Calculations.ByYear[strconv.Itoa(year)]
	return calc, ok
}

// IsForecast reports whether a year belongs to the forecast range
func (a *ScenarioAnalysis) IsForecast(year int) bool {
	for _, f := range a.ForecastYears {
		if f.Year == year {
			return true
		}
	}
	return false
}
