package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/pkg/dateutil"
	"github.com/rpgo/projector/pkg/decimal"
)

const monthsPerYear = 12

// Mortgage amortizes the loan twice, with and without overpayments and
// lumps, and reports both schedules on a shared monthly axis.
func (pe *ProjectionEngine) Mortgage(p domain.MortgageParams) (*domain.MortgageResult, error) {
	if p.TermYears < 0 || p.FixedYears < 0 {
		return nil, fmt.Errorf("mortgage projection: %w: term %d years, fixed %d years", ErrInvalidHorizon, p.TermYears, p.FixedYears)
	}
	fixedM := p.FixedYears * monthsPerYear
	start := startDate(p.StartDate)
	d := clampDecimals(p.Decimals)

	terms := MortgageTerms(p)
	actual := Amortize(terms)
	baseline := Amortize(terms.WithoutExtras())

	L := len(actual.Rows)
	if len(baseline.Rows) > L {
		L = len(baseline.Rows)
	}
	pe.Logger.Debugf("mortgage: actual %d periods, baseline %d periods", len(actual.Rows)-1, len(baseline.Rows)-1)

	payoff := actual.PayoffPeriod()
	basePayoff := baseline.PayoffPeriod()
	totalInterest := actual.TotalInterest()
	baseInterest := baseline.TotalInterest()
	// flag on the reported value so amortization noise is not a balloon
	ending := decimal.Round(actual.EndingBalance(), d)

	return &domain.MortgageResult{
		Labels:          dateutil.MonthLabels(start, L),
		Balance:         decimal.RoundSlice(PadRepeat(actual.Balances(), L), d),
		BaselineBalance: decimal.RoundSlice(PadRepeat(baseline.Balances(), L), d),
		SchedulePayment: decimal.RoundSlice(withOpening(PadRepeat(actual.ScheduledPayments(), L-1)), d),
		TotalPayment:    decimal.RoundSlice(withOpening(PadRepeat(actual.TotalPayments(), L-1)), d),
		Interest:        decimal.RoundSlice(withOpening(PadRepeat(actual.InterestPortions(), L-1)), d),
		Principal:       decimal.RoundSlice(withOpening(PadRepeat(actual.PrincipalPortions(), L-1)), d),
		Summary: domain.MortgageSummary{
			PayoffMonths:          payoff,
			PayoffDate:            dateutil.AddMonths(start, payoff).Format(dateutil.ISODate),
			BaselinePayoffMonths:  basePayoff,
			BaselinePayoffDate:    dateutil.AddMonths(start, basePayoff).Format(dateutil.ISODate),
			TotalInterest:         decimal.Round(totalInterest, d),
			BaselineTotalInterest: decimal.Round(baseInterest, d),
			InterestSaved:         decimal.Round(math.Max(0, baseInterest-totalInterest), d),
			MonthsSaved:           max(0, basePayoff-payoff),
			EndingBalance:         ending,
			IsBalloon:             ending > 0,
			FixedMonths:           fixedM,
		},
	}, nil
}

// withOpening prefixes a per-period column with 0 for period 0.
func withOpening(values []float64) []float64 {
	return append([]float64{0}, values...)
}

// MortgageTerms maps mortgage params onto monthly loan terms.
func MortgageTerms(p domain.MortgageParams) LoanTerms {
	termM := p.TermYears * monthsPerYear
	return LoanTerms{
		Principal:          p.Principal,
		TermPeriods:        termM,
		FixedPeriods:       p.FixedYears * monthsPerYear,
		FixedRate:          p.FixedRate,
		VariableRate:       p.VariableRate,
		PeriodsPerYear:     monthsPerYear,
		Overpayment:        p.MonthlyOverpayment,
		Lumps:              LumpSchedule(p.ExtraPayments, termM),
		RecalcOnRateChange: p.RecalcOnRateChange,
	}
}
