package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/projector/internal/domain"
)

// ErrValidation marks a request rejected by the range checks.
var ErrValidation = errors.New("invalid request")

const (
	maxSimulations  = 20_000
	minCompoundSims = 50
	maxCompoundYear = 80
	maxTermYears    = 50
	maxDecimals     = 10
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

type check struct {
	field string
	value float64
}

// nonNegative rejects negative or non-finite values.
func nonNegative(checks ...check) error {
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalid("%s must be a finite number", c.field)
		}
		if c.value < 0 {
			return invalid("%s cannot be negative", c.field)
		}
	}
	return nil
}

func finite(checks ...check) error {
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalid("%s must be a finite number", c.field)
		}
	}
	return nil
}

func intRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return invalid("%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateCompound applies the compound-growth ranges.
func ValidateCompound(p *domain.CompoundParams) error {
	if p == nil {
		return invalid("missing params")
	}
	var target error
	if p.Target != nil {
		target = nonNegative(check{"target", *p.Target})
	}
	return firstError(
		nonNegative(
			check{"initial", p.Initial},
			check{"annual_contribution", p.AnnualContribution},
			check{"contribution_growth", p.ContributionGrowth},
			check{"volatility", p.Volatility},
			check{"expense_ratio", p.ExpenseRatio},
			check{"inflation", p.Inflation},
		),
		finite(check{"expected_return", p.ExpectedReturn}),
		target,
		intRange("years", p.Years, 1, maxCompoundYear),
		intRange("n_sims", p.NumSimulations, minCompoundSims, maxSimulations),
		intRange("frequency", p.Frequency, 1, 12),
	)
}

// ValidateDrawdown applies the drawdown ranges.
func ValidateDrawdown(p *domain.DrawdownParams) error {
	if p == nil {
		return invalid("missing params")
	}
	return firstError(
		nonNegative(
			check{"volatility", p.Volatility},
			check{"expense_ratio", p.ExpenseRatio},
		),
		finite(check{"expected_return", p.ExpectedReturn}),
		intRange("years", p.Years, 1, maxCompoundYear),
		intRange("n_sims", p.NumSimulations, 1, maxSimulations),
		intRange("frequency", p.Frequency, 1, 12),
		intRange("decimals", p.Decimals, 0, maxDecimals),
	)
}

// ValidateFire applies the retirement projection ranges.
func ValidateFire(p *domain.FireParams) error {
	if p == nil {
		return invalid("missing params")
	}
	return firstError(
		nonNegative(
			check{"initial_balance", p.InitialBalance},
			check{"monthly_disposable", p.MonthlyDisposable},
			check{"monthly_drawdown", p.MonthlyDrawdown},
			check{"volatility", p.Volatility},
			check{"inflation", p.Inflation},
			check{"expense_ratio", p.ExpenseRatio},
		),
		finite(
			check{"expected_return_accum", p.ExpectedReturnAccum},
			check{"expected_return_ret", p.ExpectedReturnRet},
		),
		intRange("years_to_retire", p.YearsToRetire, 0, maxCompoundYear),
		intRange("years_in_retirement", p.YearsInRetirement, 1, maxCompoundYear),
		intRange("n_sims", p.NumSimulations, 1, maxSimulations),
		intRange("frequency", p.Frequency, 1, 12),
		intRange("decimals", p.Decimals, 0, maxDecimals),
	)
}

// ValidateMortgage applies the loan ranges.
func ValidateMortgage(p *domain.MortgageParams) error {
	if p == nil {
		return invalid("missing params")
	}
	if err := nonNegative(check{"principal", p.Principal}); err != nil {
		return err
	}
	if p.Principal == 0 {
		return invalid("principal must be positive")
	}
	if err := firstError(
		nonNegative(
			check{"fixed_rate", p.FixedRate},
			check{"variable_rate", p.VariableRate},
			check{"monthly_overpayment", p.MonthlyOverpayment},
		),
		intRange("term_years", p.TermYears, 1, maxTermYears),
		intRange("fixed_years", p.FixedYears, 0, maxTermYears),
		intRange("decimals", p.Decimals, 0, maxDecimals),
	); err != nil {
		return err
	}
	for i, e := range p.ExtraPayments {
		if e.Year < 0 {
			return invalid("extra_payments[%d].year cannot be negative", i)
		}
		if e.Month < 0 || e.Month > 11 {
			return invalid("extra_payments[%d].month must be between 0 and 11, got %d", i, e.Month)
		}
		if err := nonNegative(check{fmt.Sprintf("extra_payments[%d].amount", i), e.Amount}); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSuggest applies the contribution suggestion ranges.
func ValidateSuggest(p *domain.SuggestParams) error {
	if p == nil {
		return invalid("missing params")
	}
	return firstError(
		nonNegative(
			check{"target", p.Target},
			check{"volatility", p.Volatility},
			check{"expense_ratio", p.ExpenseRatio},
			check{"initial", p.Initial},
			check{"current_annual_contribution", p.CurrentAnnualContribution},
		),
		finite(
			check{"expected_return", p.ExpectedReturn},
			check{"contribution_growth", p.ContributionGrowth},
		),
		intRange("horizon_years", p.HorizonYears, 1, maxCompoundYear),
	)
}

// PathCells is the size of the simulated ensemble for a request, or 0 for
// calculators that do not simulate.
func PathCells(req *Request) int64 {
	switch req.Kind {
	case KindCompound:
		p := req.Compound
		return int64(p.NumSimulations) * int64(p.Years*p.Frequency+1)
	case KindDrawdown:
		p := req.Drawdown
		return int64(p.NumSimulations) * int64(p.Years*p.Frequency+1)
	case KindFire:
		p := req.Fire
		return int64(p.NumSimulations) * int64((p.YearsToRetire+p.YearsInRetirement)*p.Frequency+1)
	}
	return 0
}

// CheckPathBudget rejects requests whose ensemble would exceed maxCells.
// A non-positive budget disables the check.
func CheckPathBudget(req *Request, maxCells int64) error {
	if maxCells <= 0 {
		return nil
	}
	if cells := PathCells(req); cells > maxCells {
		return invalid("simulation too large: %d path cells exceeds the limit of %d", cells, maxCells)
	}
	return nil
}
