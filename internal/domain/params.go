package domain

import "github.com/rpgo/projector/pkg/dateutil"

// CompoundParams drives the compound-growth projection.
type CompoundParams struct {
	Initial            float64  `json:"initial" yaml:"initial"`
	AnnualContribution float64  `json:"annual_contribution" yaml:"annual_contribution"`
	ContributionGrowth float64  `json:"contribution_growth" yaml:"contribution_growth"`
	Years              int      `json:"years" yaml:"years"`
	NumSimulations     int      `json:"n_sims" yaml:"n_sims"`
	ExpectedReturn     float64  `json:"expected_return" yaml:"expected_return"`
	Volatility         float64  `json:"volatility" yaml:"volatility"`
	ExpenseRatio       float64  `json:"expense_ratio" yaml:"expense_ratio"`
	Inflation          float64  `json:"inflation" yaml:"inflation"`
	Target             *float64 `json:"target,omitempty" yaml:"target,omitempty"`
	Frequency          int      `json:"frequency" yaml:"frequency"`
	Seed               *int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultCompoundParams returns the defaults applied to omitted request fields.
func DefaultCompoundParams() CompoundParams {
	return CompoundParams{
		AnnualContribution: 6000,
		ContributionGrowth: 0.03,
		Years:              30,
		NumSimulations:     100,
		ExpectedReturn:     0.07,
		Volatility:         0.18,
		Inflation:          0.02,
		Frequency:          12,
	}
}

// DrawdownParams drives the drawdown projection on a unit price index.
type DrawdownParams struct {
	Years          int            `json:"years" yaml:"years"`
	ExpectedReturn float64        `json:"expected_return" yaml:"expected_return"`
	Volatility     float64        `json:"volatility" yaml:"volatility"`
	ExpenseRatio   float64        `json:"expense_ratio" yaml:"expense_ratio"`
	NumSimulations int            `json:"n_sims" yaml:"n_sims"`
	Frequency      int            `json:"frequency" yaml:"frequency"`
	StartDate      *dateutil.Date `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Decimals       int            `json:"decimals" yaml:"decimals"`
	Seed           *int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func DefaultDrawdownParams() DrawdownParams {
	return DrawdownParams{
		Years:          30,
		ExpectedReturn: 0.07,
		Volatility:     0.18,
		ExpenseRatio:   0.001,
		NumSimulations: 2000,
		Frequency:      12,
		Decimals:       1,
	}
}

// FireParams drives the two-phase retirement sustainability projection.
// Monthly amounts are applied once per simulated period.
type FireParams struct {
	InitialBalance      float64        `json:"initial_balance" yaml:"initial_balance"`
	MonthlyDisposable   float64        `json:"monthly_disposable" yaml:"monthly_disposable"`
	MonthlyDrawdown     float64        `json:"monthly_drawdown" yaml:"monthly_drawdown"`
	YearsToRetire       int            `json:"years_to_retire" yaml:"years_to_retire"`
	YearsInRetirement   int            `json:"years_in_retirement" yaml:"years_in_retirement"`
	ExpectedReturnAccum float64        `json:"expected_return_accum" yaml:"expected_return_accum"`
	ExpectedReturnRet   float64        `json:"expected_return_ret" yaml:"expected_return_ret"`
	Volatility          float64        `json:"volatility" yaml:"volatility"`
	Inflation           float64        `json:"inflation" yaml:"inflation"`
	ExpenseRatio        float64        `json:"expense_ratio" yaml:"expense_ratio"`
	NumSimulations      int            `json:"n_sims" yaml:"n_sims"`
	Frequency           int            `json:"frequency" yaml:"frequency"`
	StartDate           *dateutil.Date `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Decimals            int            `json:"decimals" yaml:"decimals"`
	Seed                *int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func DefaultFireParams() FireParams {
	return FireParams{
		MonthlyDisposable:   500,
		MonthlyDrawdown:     2500,
		YearsToRetire:       20,
		YearsInRetirement:   30,
		ExpectedReturnAccum: 0.07,
		ExpectedReturnRet:   0.05,
		Volatility:          0.18,
		Inflation:           0.02,
		ExpenseRatio:        0.001,
		NumSimulations:      2000,
		Frequency:           12,
		Decimals:            1,
	}
}

// ExtraPayment is a one-time lump sum. Year is the offset from the start
// year and Month the 0-based month within that year.
type ExtraPayment struct {
	Year   int     `json:"year" yaml:"year"`
	Month  int     `json:"month" yaml:"month"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Period returns the absolute 1-based schedule period the payment lands on.
func (e ExtraPayment) Period() int {
	return e.Year*12 + e.Month + 1
}

// MortgageParams drives the amortization projection.
type MortgageParams struct {
	Principal          float64        `json:"principal" yaml:"principal"`
	TermYears          int            `json:"term_years" yaml:"term_years"`
	FixedYears         int            `json:"fixed_years" yaml:"fixed_years"`
	FixedRate          float64        `json:"fixed_rate" yaml:"fixed_rate"`
	VariableRate       float64        `json:"variable_rate" yaml:"variable_rate"`
	MonthlyOverpayment float64        `json:"monthly_overpayment" yaml:"monthly_overpayment"`
	ExtraPayments      []ExtraPayment `json:"extra_payments,omitempty" yaml:"extra_payments,omitempty"`
	StartDate          *dateutil.Date `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	RecalcOnRateChange bool           `json:"recalc_on_rate_change" yaml:"recalc_on_rate_change"`
	Decimals           int            `json:"decimals" yaml:"decimals"`
}

func DefaultMortgageParams() MortgageParams {
	return MortgageParams{
		Principal:          350_000,
		TermYears:          25,
		FixedYears:         5,
		FixedRate:          0.04,
		VariableRate:       0.055,
		RecalcOnRateChange: true,
		Decimals:           1,
	}
}

// SuggestParams drives the closed-form contribution suggestion.
type SuggestParams struct {
	Target                    float64 `json:"target" yaml:"target"`
	HorizonYears              int     `json:"horizon_years" yaml:"horizon_years"`
	ExpectedReturn            float64 `json:"expected_return" yaml:"expected_return"`
	Volatility                float64 `json:"volatility" yaml:"volatility"`
	ExpenseRatio              float64 `json:"expense_ratio" yaml:"expense_ratio"`
	Initial                   float64 `json:"initial" yaml:"initial"`
	CurrentAnnualContribution float64 `json:"current_annual_contribution" yaml:"current_annual_contribution"`
	ContributionGrowth        float64 `json:"contribution_growth" yaml:"contribution_growth"`
}

func DefaultSuggestParams() SuggestParams {
	return SuggestParams{
		HorizonYears:              20,
		ExpectedReturn:            0.07,
		Volatility:                0.18,
		ExpenseRatio:              0.001,
		CurrentAnnualContribution: 6000,
		ContributionGrowth:        0.03,
	}
}
