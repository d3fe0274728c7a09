package calculation

import (
	"testing"

	"github.com/rpgo/projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment(t *testing.T) {
	assert.Equal(t, 100_000.0, Payment(100_000, 0, 1))
	assert.Equal(t, 100.0, Payment(1200, 0, 12))
	assert.Equal(t, 5000.0, Payment(5000, 0.01, 0), "no periods left means pay the balance")
	assert.Equal(t, 5000.0, Payment(5000, 0.01, -3))
	assert.InDelta(t, 536.82, Payment(100_000, 0.05/12, 360), 0.01)
	assert.InDelta(t, 100_000*(1+0.01), Payment(100_000, 0.01, 1), 1e-6)
}

func fixedLoan(principal float64, months int, rate float64) LoanTerms {
	return LoanTerms{
		Principal:      principal,
		TermPeriods:    months,
		FixedPeriods:   months,
		FixedRate:      rate,
		VariableRate:   rate,
		PeriodsPerYear: 12,
	}
}

func TestAmortize_FullyAmortizes(t *testing.T) {
	s := Amortize(fixedLoan(200_000, 300, 0.045))

	require.Len(t, s.Rows, 301)
	assert.Equal(t, 200_000.0, s.Rows[0].BalanceAfter)
	assert.InDelta(t, 0, s.EndingBalance(), 1e-4)
	assert.Equal(t, 300, s.PayoffPeriod())
	for _, r := range s.Rows[1:] {
		assert.InDelta(t, r.TotalPayment, r.Interest+r.Principal, 1e-9)
	}
}

func TestAmortize_ZeroRate(t *testing.T) {
	s := Amortize(fixedLoan(1200, 12, 0))
	require.Len(t, s.Rows, 13)
	assert.Equal(t, 0.0, s.EndingBalance())
	assert.Equal(t, 0.0, s.TotalInterest())
	for _, p := range s.ScheduledPayments() {
		assert.Equal(t, 100.0, p)
	}
}

func TestAmortize_OverpaymentPaysOffEarly(t *testing.T) {
	base := Amortize(fixedLoan(100_000, 240, 0.05))
	terms := fixedLoan(100_000, 240, 0.05)
	terms.Overpayment = 200
	actual := Amortize(terms)

	assert.Less(t, actual.PayoffPeriod(), base.PayoffPeriod())
	assert.Less(t, actual.TotalInterest(), base.TotalInterest())
	assert.LessOrEqual(t, actual.EndingBalance(), 0.0)
	assert.Len(t, actual.Rows, actual.PayoffPeriod()+1, "no rows after payoff")
}

func TestAmortize_LumpClearsLoan(t *testing.T) {
	terms := fixedLoan(10_000, 60, 0.06)
	terms.Lumps = map[int]float64{1: 10_000}
	s := Amortize(terms)

	require.Len(t, s.Rows, 2)
	assert.Equal(t, 1, s.PayoffPeriod())
	assert.Less(t, s.EndingBalance(), 0.0, "overshoot is kept, not clamped")
}

func TestAmortize_BalloonWithoutRecalc(t *testing.T) {
	terms := LoanTerms{
		Principal:      100_000,
		TermPeriods:    24,
		FixedPeriods:   12,
		FixedRate:      0.03,
		VariableRate:   0.08,
		PeriodsPerYear: 12,
	}
	s := Amortize(terms)
	require.Len(t, s.Rows, 25)
	assert.Greater(t, s.EndingBalance(), 0.0)
	assert.Equal(t, 24, s.PayoffPeriod())

	terms.RecalcOnRateChange = true
	s = Amortize(terms)
	assert.InDelta(t, 0, s.EndingBalance(), 1e-4)

	pay := s.ScheduledPayments()
	assert.Equal(t, pay[0], pay[11])
	assert.Greater(t, pay[12], pay[11], "payment resets upward with the variable rate")
	assert.Equal(t, pay[12], pay[23])
}

func TestAmortize_UnderfundedPaymentGrowsBalance(t *testing.T) {
	terms := LoanTerms{
		Principal:      10_000,
		TermPeriods:    120,
		FixedPeriods:   0,
		FixedRate:      0,
		VariableRate:   0.24,
		PeriodsPerYear: 12,
	}
	s := Amortize(terms)
	require.Len(t, s.Rows, 121)

	// payment sized for a 0% loan but charged 2% a month
	first := s.Rows[1]
	assert.InDelta(t, 83.33, first.TotalPayment, 0.01)
	assert.InDelta(t, 200, first.Interest, 1e-9)
	assert.InDelta(t, -116.67, first.Principal, 0.01, "negative principal is kept")
	for i, r := range s.Rows[1:] {
		assert.InDelta(t, r.TotalPayment, r.Interest+r.Principal, 1e-9)
		assert.Less(t, r.Principal, 0.0)
		assert.Greater(t, r.BalanceAfter, s.Rows[i].BalanceAfter, "balance grows at period %d", r.Period)
	}
	assert.Greater(t, s.EndingBalance(), terms.Principal)
}

func TestAmortize_FixedPhaseLongerThanTerm(t *testing.T) {
	terms := LoanTerms{
		Principal:          50_000,
		TermPeriods:        120,
		FixedPeriods:       200,
		FixedRate:          0.04,
		VariableRate:       0.09,
		PeriodsPerYear:     12,
		RecalcOnRateChange: true,
	}
	s := Amortize(terms)
	fixed := Amortize(fixedLoan(50_000, 120, 0.04))

	require.Len(t, s.Rows, 121)
	assert.Equal(t, fixed.Rows, s.Rows, "whole term runs at the fixed rate")
	pay := s.ScheduledPayments()
	for _, p := range pay {
		assert.Equal(t, pay[0], p, "no recalculation")
	}
	assert.InDelta(t, 0, s.EndingBalance(), 1e-4)
}

func TestLumpSchedule(t *testing.T) {
	lumps := LumpSchedule([]domain.ExtraPayment{
		{Year: 0, Month: 0, Amount: 1000},
		{Year: 1, Month: 2, Amount: 500},
		{Year: 1, Month: 2, Amount: 250},
		{Year: 30, Month: 0, Amount: 99},
		{Year: 0, Month: -1, Amount: 99},
	}, 120)

	assert.Equal(t, map[int]float64{1: 1000, 15: 750}, lumps)
}

func TestPadRepeat(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 2, 2}, PadRepeat([]float64{1, 2}, 4))
	assert.Equal(t, []float64{1}, PadRepeat([]float64{1, 2}, 1))
	assert.Equal(t, []float64{0, 0}, PadRepeat(nil, 2))
	assert.Empty(t, PadRepeat([]float64{1}, 0))
}
