package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/internal/numeric"
	"github.com/rpgo/projector/pkg/dateutil"
	"github.com/rpgo/projector/pkg/decimal"
)

// Fire runs the two-phase retirement projection. Contributions flow during
// accumulation and withdrawals during retirement, both stepped up by
// inflation once a year; the account cannot go negative.
func (pe *ProjectionEngine) Fire(ctx context.Context, p domain.FireParams) (*domain.FireResult, error) {
	if p.Frequency < 1 || p.Frequency > 12 {
		return nil, fmt.Errorf("fire projection: %w: got %d", ErrInvalidFrequency, p.Frequency)
	}
	tAcc := p.YearsToRetire * p.Frequency
	tRet := p.YearsInRetirement * p.Frequency
	T := tAcc + tRet

	flows := BuildPhasedSchedule(p.MonthlyDisposable, p.MonthlyDrawdown, p.Inflation, tAcc, tRet, p.Frequency)
	ens, err := pe.Simulator.Run(ctx, SimulationParameters{
		NumSimulations: p.NumSimulations,
		Frequency:      p.Frequency,
		Sigma:          p.Volatility,
		Phases: []Phase{
			{Periods: tAcc, Mu: p.ExpectedReturnAccum - p.ExpenseRatio},
			{Periods: tRet, Mu: p.ExpectedReturnRet - p.ExpenseRatio},
		},
		Initial:     p.InitialBalance,
		Flows:       flows,
		FloorAtZero: true,
		Seed:        p.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("fire projection: %w", err)
	}
	pe.Logger.Debugf("fire: retirement starts at period %d of %d", tAcc, T)

	terminal := ens.Terminal()
	longevity := Longevity(ens.Paths, tAcc, tRet)

	d := clampDecimals(p.Decimals)
	return &domain.FireResult{
		Labels:      dateutil.MonthLabels(startDate(p.StartDate), T+1),
		Percentiles: roundBand(PercentileBands(ens.Paths), d),
		Summary: domain.FireSummary{
			MedianTerminal:       decimal.Round(numeric.Sanitize(numeric.Median(terminal)), d),
			ProbNonzeroEnd:       decimal.Round(FractionPositive(terminal), d),
			MedianLastingMonths:  MedianLongevity(longevity),
			RetirementStartIndex: tAcc,
		},
	}, nil
}
