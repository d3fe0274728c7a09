package calculation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStart() *dateutil.Date {
	d := dateutil.NewDate(2026, time.January, 31)
	return &d
}

func TestCompound_FlatContributionsReachTotal(t *testing.T) {
	for _, sims := range []int{1, 50} {
		p := domain.DefaultCompoundParams()
		p.Initial = 0
		p.AnnualContribution = 12_000
		p.ContributionGrowth = 0
		p.Years = 1
		p.NumSimulations = sims
		p.ExpectedReturn = 0
		p.Volatility = 0
		p.Inflation = 0
		p.Seed = seedPtr(11)

		res, err := NewProjectionEngine().Compound(context.Background(), p)
		require.NoError(t, err, "n_sims=%d", sims)

		require.Len(t, res.Times, 13)
		assert.Equal(t, 12, res.Times[12])
		assert.InDelta(t, 12_000, res.Percentiles.P50[12], 1e-9, "n_sims=%d", sims)
		assert.InDelta(t, 12_000, res.Summary.ExpectedFinal, 1e-9)
		assert.InDelta(t, 12_000, res.Summary.MedianFinal, 1e-9)
		assert.InDelta(t, 12_000, res.Summary.P10Final, 1e-9)
		assert.InDelta(t, 12_000, res.Insights.TotalContrib, 1e-9)
		assert.InDelta(t, 12_000, res.Insights.RealMedianFinal, 1e-9)
		assert.Equal(t, 0.0, res.Insights.MedianMaxDrawdown)
		assert.Nil(t, res.Summary.ProbHitTarget)
		assert.Empty(t, res.Suggestions)
	}
}

func TestCompound_TargetProbability(t *testing.T) {
	p := domain.DefaultCompoundParams()
	p.Years = 5
	p.NumSimulations = 300
	p.Seed = seedPtr(3)
	target := 1e12
	p.Target = &target

	res, err := NewProjectionEngine().Compound(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, res.Summary.ProbHitTarget)
	assert.Equal(t, 0.0, *res.Summary.ProbHitTarget)
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0], "Increase annual contributions")

	b := res.Percentiles
	require.Len(t, b.P50Real, 61)
	for i := range b.P50 {
		assert.LessOrEqual(t, b.P10[i], b.P90[i])
	}
}

func TestCompound_SeedIsReproducible(t *testing.T) {
	p := domain.DefaultCompoundParams()
	p.Years = 3
	p.Seed = seedPtr(99)

	a, err := NewProjectionEngine().Compound(context.Background(), p)
	require.NoError(t, err)
	b, err := NewProjectionEngine().Compound(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompound_InvalidInput(t *testing.T) {
	p := domain.DefaultCompoundParams()
	p.Years = 0
	_, err := NewProjectionEngine().Compound(context.Background(), p)
	assert.True(t, errors.Is(err, ErrInvalidHorizon))

	p = domain.DefaultCompoundParams()
	p.Frequency = 0
	_, err = NewProjectionEngine().Compound(context.Background(), p)
	assert.True(t, errors.Is(err, ErrInvalidFrequency))
}

func TestDrawdown_ZeroVolatilityHasNoDrawdown(t *testing.T) {
	p := domain.DefaultDrawdownParams()
	p.Years = 2
	p.Volatility = 0
	p.NumSimulations = 20
	p.StartDate = fixedStart()
	p.Seed = seedPtr(1)

	res, err := NewProjectionEngine().Drawdown(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, res.Labels, 25)
	assert.Equal(t, "2026-01-31", res.Labels[0])
	assert.Equal(t, "2026-02-28", res.Labels[1])
	for _, v := range res.Percentiles.P10 {
		assert.Equal(t, 0.0, v)
	}
	assert.Equal(t, 0.0, res.Summary.MedianMaxDrawdown)
	assert.Equal(t, 0, res.Summary.MedianRecoveryMonths)
	assert.True(t, res.Summary.Recovered)
}

func TestDrawdown_BandsAreNonPositiveAndRounded(t *testing.T) {
	p := domain.DefaultDrawdownParams()
	p.Years = 5
	p.NumSimulations = 200
	p.Decimals = 2
	p.StartDate = fixedStart()
	p.Seed = seedPtr(8)

	res, err := NewProjectionEngine().Drawdown(context.Background(), p)
	require.NoError(t, err)

	for i := range res.Labels {
		assert.LessOrEqual(t, res.Percentiles.P90[i], 0.0)
		assert.LessOrEqual(t, res.Percentiles.P10[i], res.Percentiles.P90[i])
	}
	assert.LessOrEqual(t, res.Summary.P10MaxDrawdown, res.Summary.MedianMaxDrawdown)
	assert.LessOrEqual(t, res.Summary.MedianMaxDrawdown, res.Summary.P90MaxDrawdown)
	assert.GreaterOrEqual(t, res.Summary.MedianRecoveryMonths, 0)
}

func TestDrawdown_DefaultStartDateIsToday(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2030, time.May, 4, 15, 0, 0, 0, time.UTC) })
	defer SetNowFunc(time.Now)

	p := domain.DefaultDrawdownParams()
	p.Years = 1
	p.NumSimulations = 5
	p.Seed = seedPtr(2)
	res, err := NewProjectionEngine().Drawdown(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "2030-05-04", res.Labels[0])
}

func TestFire_NoDrawdownLastsFullRetirement(t *testing.T) {
	p := domain.DefaultFireParams()
	p.InitialBalance = 100_000
	p.MonthlyDrawdown = 0
	p.Volatility = 0
	p.YearsToRetire = 2
	p.YearsInRetirement = 3
	p.NumSimulations = 10
	p.StartDate = fixedStart()
	p.Seed = seedPtr(4)

	res, err := NewProjectionEngine().Fire(context.Background(), p)
	require.NoError(t, err)

	assert.Len(t, res.Labels, 61)
	assert.Equal(t, 24, res.Summary.RetirementStartIndex)
	assert.Equal(t, 36, res.Summary.MedianLastingMonths)
	assert.Equal(t, 1.0, res.Summary.ProbNonzeroEnd)
	assert.Greater(t, res.Summary.MedianTerminal, 100_000.0)
}

func TestFire_ExhaustedAccountStaysAtZero(t *testing.T) {
	p := domain.DefaultFireParams()
	p.InitialBalance = 10_000
	p.MonthlyDisposable = 0
	p.MonthlyDrawdown = 1_000
	p.Volatility = 0
	p.ExpectedReturnAccum = 0
	p.ExpectedReturnRet = 0
	p.ExpenseRatio = 0
	p.Inflation = 0
	p.YearsToRetire = 1
	p.YearsInRetirement = 2
	p.NumSimulations = 10
	p.Seed = seedPtr(6)

	res, err := NewProjectionEngine().Fire(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Summary.ProbNonzeroEnd)
	assert.Equal(t, 0.0, res.Summary.MedianTerminal)
	assert.Equal(t, 10, res.Summary.MedianLastingMonths)
	for _, v := range res.Percentiles.P50[22:] {
		assert.Equal(t, 0.0, v)
	}
}

func TestMortgage_NoExtrasSavesNothing(t *testing.T) {
	p := domain.DefaultMortgageParams()
	p.StartDate = fixedStart()

	res, err := NewProjectionEngine().Mortgage(p)
	require.NoError(t, err)

	s := res.Summary
	assert.Equal(t, 0.0, s.InterestSaved)
	assert.Equal(t, 0, s.MonthsSaved)
	assert.Equal(t, s.PayoffMonths, s.BaselinePayoffMonths)
	assert.Equal(t, s.TotalInterest, s.BaselineTotalInterest)
	assert.Equal(t, 60, s.FixedMonths)
	assert.Equal(t, 300, s.PayoffMonths)
	assert.Equal(t, "2051-01-31", s.PayoffDate)
	assert.False(t, s.IsBalloon)
	assert.Equal(t, res.Balance, res.BaselineBalance)
}

func TestMortgage_OverpaymentSeriesShareOneAxis(t *testing.T) {
	p := domain.DefaultMortgageParams()
	p.MonthlyOverpayment = 500
	p.ExtraPayments = []domain.ExtraPayment{{Year: 2, Month: 5, Amount: 20_000}}
	p.StartDate = fixedStart()

	res, err := NewProjectionEngine().Mortgage(p)
	require.NoError(t, err)

	s := res.Summary
	assert.Less(t, s.PayoffMonths, s.BaselinePayoffMonths)
	assert.Greater(t, s.InterestSaved, 0.0)
	assert.Equal(t, s.BaselinePayoffMonths-s.PayoffMonths, s.MonthsSaved)

	n := len(res.Labels)
	assert.Equal(t, s.BaselinePayoffMonths+1, n)
	for _, series := range res.Series() {
		assert.Len(t, series.Values, n, series.Name)
	}
	assert.Equal(t, 0.0, res.TotalPayment[0])
	// padded by repeating the final value
	assert.Equal(t, res.Balance[s.PayoffMonths], res.Balance[n-1])
	assert.Equal(t, res.TotalPayment[s.PayoffMonths], res.TotalPayment[n-1])
}

func TestMortgage_InvalidTerm(t *testing.T) {
	p := domain.DefaultMortgageParams()
	p.TermYears = -1
	_, err := NewProjectionEngine().Mortgage(p)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestSuggestContribution(t *testing.T) {
	pe := NewProjectionEngine()

	p := domain.DefaultSuggestParams()
	p.Target = 0
	res := pe.SuggestContribution(p)
	assert.Equal(t, 0.0, res.Year1ContributionNeeded)
	assert.Equal(t, -6000.0, res.IncreaseOverCurrent)

	p = domain.DefaultSuggestParams()
	p.Target = 1_000_000
	p.ExpenseRatio = 0
	p.ExpectedReturn = 0
	p.ContributionGrowth = 0
	p.HorizonYears = 10
	res = pe.SuggestContribution(p)
	// r == g: factor n*(1+r)^(n-1) = 10
	assert.InDelta(t, 100_000, res.Year1ContributionNeeded, 1e-6)
	assert.InDelta(t, 94_000, res.IncreaseOverCurrent, 1e-6)
	assert.Equal(t, "This uses expected-return math; Monte Carlo will vary.", res.Note)
}

func TestGrowingAnnuityFactor(t *testing.T) {
	// level annuity when g = 0: ((1+r)^n - 1) / r
	assert.InDelta(t, 3.31, GrowingAnnuityFactor(0.10, 0, 3), 1e-9)
	assert.InDelta(t, 3*1.05*1.05, GrowingAnnuityFactor(0.05, 0.05, 3), 1e-9)
}

type countingLogger struct {
	NopLogger
	debug int
}

func (c *countingLogger) Debugf(string, ...any) { c.debug++ }

func TestWithLoggerLeavesOriginalUntouched(t *testing.T) {
	base := NewProjectionEngine()
	l := &countingLogger{}
	eng := base.WithLogger(l)

	assert.IsType(t, NopLogger{}, base.Logger)
	assert.IsType(t, NopLogger{}, base.Simulator.Logger)
	assert.Same(t, l, eng.Simulator.Logger)

	p := domain.DefaultDrawdownParams()
	p.Years = 1
	p.NumSimulations = 5
	p.Seed = seedPtr(1)
	_, err := eng.Drawdown(context.Background(), p)
	require.NoError(t, err)
	assert.Greater(t, l.debug, 0)
}

func TestProjectDispatchesOnParamsType(t *testing.T) {
	pe := NewProjectionEngine()

	suggest := domain.DefaultSuggestParams()
	suggest.Target = 1000
	got, err := pe.Project(context.Background(), &suggest)
	require.NoError(t, err)
	assert.Equal(t, "suggest", got.Kind())

	mortgage := domain.DefaultMortgageParams()
	got, err = pe.Project(context.Background(), &mortgage)
	require.NoError(t, err)
	assert.IsType(t, &domain.MortgageResult{}, got)

	_, err = pe.Project(context.Background(), domain.DefaultSuggestParams())
	assert.Error(t, err)
}
