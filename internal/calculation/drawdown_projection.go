package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/internal/numeric"
	"github.com/rpgo/projector/pkg/dateutil"
	"github.com/rpgo/projector/pkg/decimal"
)

// Drawdown simulates a unit price index and reports loss-from-peak bands,
// the distribution of per-path maximum drawdown and the recovery time of
// the median path.
func (pe *ProjectionEngine) Drawdown(ctx context.Context, p domain.DrawdownParams) (*domain.DrawdownResult, error) {
	if p.Frequency < 1 || p.Frequency > 12 {
		return nil, fmt.Errorf("drawdown projection: %w: got %d", ErrInvalidFrequency, p.Frequency)
	}
	T := p.Years * p.Frequency
	ens, err := pe.Simulator.Run(ctx, SimulationParameters{
		NumSimulations: p.NumSimulations,
		Frequency:      p.Frequency,
		Sigma:          p.Volatility,
		Phases:         []Phase{{Periods: T, Mu: p.ExpectedReturn - p.ExpenseRatio}},
		Initial:        1,
		Seed:           p.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("drawdown projection: %w", err)
	}

	drawdowns := DrawdownEnsemble(ens.Paths)
	bands := PercentileBands(drawdowns)
	maxDD := numeric.Percentiles(PathMaxDrawdowns(drawdowns), 10, 50, 90)

	medianPath := numeric.ColumnPercentiles(ens.Paths, 50)[0]
	rec := AnalyzeRecovery(medianPath)
	if !rec.Recovered {
		pe.Logger.Debugf("drawdown: median path still below its peak at the horizon (trough %d)", rec.TroughIndex)
	}

	d := clampDecimals(p.Decimals)
	return &domain.DrawdownResult{
		Labels:      dateutil.MonthLabels(startDate(p.StartDate), T+1),
		Percentiles: roundBand(bands, d),
		Summary: domain.DrawdownSummary{
			MedianMaxDrawdown:    decimal.Round(numeric.Sanitize(maxDD[1]), d),
			P10MaxDrawdown:       decimal.Round(numeric.Sanitize(maxDD[0]), d),
			P90MaxDrawdown:       decimal.Round(numeric.Sanitize(maxDD[2]), d),
			MedianRecoveryMonths: rec.Periods,
			Recovered:            rec.Recovered,
		},
	}, nil
}

func roundBand(b domain.Band, places int) domain.Band {
	return domain.Band{
		P10: decimal.RoundSlice(b.P10, places),
		P25: decimal.RoundSlice(b.P25, places),
		P50: decimal.RoundSlice(b.P50, places),
		P75: decimal.RoundSlice(b.P75, places),
		P90: decimal.RoundSlice(b.P90, places),
	}
}
