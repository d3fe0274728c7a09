package output

import (
	"fmt"

	"github.com/rpgo/projector/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions shared by every
// simulated projection.
var DefaultAssumptions = []string{
	"Returns are lognormal (geometric Brownian motion), independent across periods",
	"Band paths are per-period percentiles, not single simulated trajectories",
}

// GenerateAssumptions creates the assumptions list from actual request values
func GenerateAssumptions(params any) []string {
	switch p := params.(type) {
	case *domain.CompoundParams:
		out := append([]string(nil), DefaultAssumptions...)
		return append(out,
			fmt.Sprintf("Expected return %.2f%% net of %.2f%% fees, volatility %.1f%%", pct(p.ExpectedReturn-p.ExpenseRatio), pct(p.ExpenseRatio), pct(p.Volatility)),
			fmt.Sprintf("Contributions grow %.1f%% per year; inflation %.1f%%", pct(p.ContributionGrowth), pct(p.Inflation)),
			seedLine(p.Seed, p.NumSimulations),
		)
	case *domain.DrawdownParams:
		out := append([]string(nil), DefaultAssumptions...)
		return append(out,
			fmt.Sprintf("Expected return %.2f%% net of %.2f%% fees, volatility %.1f%%", pct(p.ExpectedReturn-p.ExpenseRatio), pct(p.ExpenseRatio), pct(p.Volatility)),
			seedLine(p.Seed, p.NumSimulations),
		)
	case *domain.FireParams:
		out := append([]string(nil), DefaultAssumptions...)
		return append(out,
			fmt.Sprintf("Return %.2f%% before retirement and %.2f%% after, net of %.2f%% fees", pct(p.ExpectedReturnAccum-p.ExpenseRatio), pct(p.ExpectedReturnRet-p.ExpenseRatio), pct(p.ExpenseRatio)),
			fmt.Sprintf("Contributions and withdrawals rise with %.1f%% inflation once a year", pct(p.Inflation)),
			"A depleted account stays at zero",
			seedLine(p.Seed, p.NumSimulations),
		)
	case *domain.MortgageParams:
		recalc := "kept unchanged"
		if p.RecalcOnRateChange {
			recalc = "recalculated"
		}
		return []string{
			fmt.Sprintf("Fixed rate %.2f%% for %d years, then %.2f%%", pct(p.FixedRate), p.FixedYears, pct(p.VariableRate)),
			fmt.Sprintf("Payment %s when the rate changes", recalc),
		}
	case *domain.SuggestParams:
		return []string{
			fmt.Sprintf("Deterministic growth at %.2f%% net of fees; volatility is ignored", pct(p.ExpectedReturn-p.ExpenseRatio)),
		}
	}
	return nil
}

func pct(f float64) float64 { return f * 100 }

func seedLine(seed *int64, sims int) string {
	if seed == nil {
		return fmt.Sprintf("%d simulations, unseeded", sims)
	}
	return fmt.Sprintf("%d simulations, seed %d", sims, *seed)
}
