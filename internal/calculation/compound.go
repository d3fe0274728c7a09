package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/internal/numeric"
)

// Compound runs the compound-growth projection: contributions grow once a
// year, returns are lognormal net of the expense ratio, and results are
// reported as nominal bands plus a real median.
func (pe *ProjectionEngine) Compound(ctx context.Context, p domain.CompoundParams) (*domain.CompoundResult, error) {
	if p.Frequency < 1 || p.Frequency > 12 {
		return nil, fmt.Errorf("compound projection: %w: got %d", ErrInvalidFrequency, p.Frequency)
	}
	T := p.Years * p.Frequency
	schedule := BuildSchedule(p.AnnualContribution/float64(p.Frequency), p.ContributionGrowth, T, p.Frequency)

	ens, err := pe.Simulator.Run(ctx, SimulationParameters{
		NumSimulations: p.NumSimulations,
		Frequency:      p.Frequency,
		Sigma:          p.Volatility,
		Phases:         []Phase{{Periods: T, Mu: p.ExpectedReturn - p.ExpenseRatio}},
		Initial:        p.Initial,
		Flows:          schedule,
		Seed:           p.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("compound projection: %w", err)
	}
	pe.Logger.Debugf("compound: %d paths, %d periods, seed %d", ens.NumPaths(), T, ens.Seed)

	bands := PercentileBands(ens.Paths)
	realMedian := RealMedian(ens.Paths, p.Inflation, p.Frequency)
	stats := ComputeTerminalStats(ens.Terminal(), p.Target)

	times := make([]int, T+1)
	for t := range times {
		times[t] = t
	}

	return &domain.CompoundResult{
		Times:       times,
		Percentiles: domain.CompoundBands{Band: bands, P50Real: realMedian},
		Summary: domain.CompoundSummary{
			ExpectedFinal: stats.Mean,
			MedianFinal:   stats.Median,
			P10Final:      stats.P10,
			P90Final:      stats.P90,
			ProbHitTarget: stats.ProbHitTarget,
		},
		Insights: domain.CompoundInsights{
			MedianCAGR:        MedianCAGR(bands.P50, p.Frequency),
			MedianMaxDrawdown: MaxDrawdown(DrawdownSeries(bands.P50)),
			TotalContrib:      numeric.Sanitize(numeric.Sum(schedule)),
			RealMedianFinal:   realMedian[len(realMedian)-1],
		},
		Suggestions: Suggestions(p, stats.Median),
	}, nil
}
