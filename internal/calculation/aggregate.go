package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/internal/numeric"
)

// BandLevels are the percentile levels reported for every band.
var BandLevels = []float64{10, 25, 50, 75, 90}

const (
	highExpenseRatio = 0.002
	highVolatility   = 0.22
	ratioEpsilon     = 1e-9
)

// PercentileBands extracts the 10/25/50/75/90 paths column by column.
// Band paths are per-period percentiles, not realizations of any single
// trajectory.
func PercentileBands(paths [][]float64) domain.Band {
	cols := numeric.ColumnPercentiles(paths, BandLevels...)
	return domain.Band{
		P10: numeric.SanitizeSlice(cols[0]),
		P25: numeric.SanitizeSlice(cols[1]),
		P50: numeric.SanitizeSlice(cols[2]),
		P75: numeric.SanitizeSlice(cols[3]),
		P90: numeric.SanitizeSlice(cols[4]),
	}
}

// DeflatePaths divides every value by (1+inflation)^(t/frequency).
func DeflatePaths(paths [][]float64, inflation float64, frequency int) [][]float64 {
	if len(paths) == 0 {
		return nil
	}
	width := len(paths[0])
	factors := make([]float64, width)
	dt := 1 / float64(frequency)
	for t := range factors {
		factors[t] = math.Pow(1+inflation, float64(t)*dt)
	}
	out := make([][]float64, len(paths))
	for i, row := range paths {
		deflated := make([]float64, width)
		for t, v := range row {
			deflated[t] = v / factors[t]
		}
		out[i] = deflated
	}
	return out
}

// RealMedian is the column-wise median of the inflation-adjusted ensemble.
func RealMedian(paths [][]float64, inflation float64, frequency int) []float64 {
	cols := numeric.ColumnPercentiles(DeflatePaths(paths, inflation, frequency), 50)
	return numeric.SanitizeSlice(cols[0])
}

// TerminalStats summarizes the final-period column.
type TerminalStats struct {
	Mean          float64
	Median        float64
	P10           float64
	P90           float64
	ProbHitTarget *float64
}

// ComputeTerminalStats reduces terminal wealth. ProbHitTarget is only set
// when a target is given.
func ComputeTerminalStats(terminal []float64, target *float64) TerminalStats {
	pcts := numeric.Percentiles(terminal, 10, 50, 90)
	stats := TerminalStats{
		Mean:   numeric.Sanitize(numeric.Mean(terminal)),
		P10:    numeric.Sanitize(pcts[0]),
		Median: numeric.Sanitize(pcts[1]),
		P90:    numeric.Sanitize(pcts[2]),
	}
	if target != nil {
		prob := FractionAtLeast(terminal, *target)
		stats.ProbHitTarget = &prob
	}
	return stats
}

// FractionAtLeast is the share of values >= threshold.
func FractionAtLeast(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for _, v := range values {
		if v >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(values))
}

// FractionPositive is the share of values strictly above zero.
func FractionPositive(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := 0
	for _, v := range values {
		if v > 0 {
			n++
		}
	}
	return float64(n) / float64(len(values))
}

// MedianCAGR computes the compound annual growth rate of a path from its
// first strictly positive value to its end. A path with no positive
// baseline, or a non-positive end, reports zero growth.
func MedianCAGR(path []float64, frequency int) float64 {
	if len(path) == 0 || path[len(path)-1] <= 0 {
		return 0
	}
	base := -1
	for i, v := range path {
		if v > 0 {
			base = i
			break
		}
	}
	if base < 0 {
		return 0
	}
	years := float64(len(path)-1-base) / float64(frequency)
	cagr := math.Pow(path[len(path)-1]/path[base], 1/math.Max(years, 1e-9)) - 1
	return numeric.Sanitize(cagr)
}

// Longevity returns, per path, how many periods after retireStart the path
// stayed above zero. Paths that never hit zero last retirePeriods.
func Longevity(paths [][]float64, retireStart, retirePeriods int) []int {
	out := make([]int, len(paths))
	for i, row := range paths {
		out[i] = retirePeriods
		for t := retireStart + 1; t < len(row); t++ {
			if row[t] <= 0 {
				if d := t - retireStart; d > 0 {
					out[i] = d
				} else {
					out[i] = 0
				}
				break
			}
		}
	}
	return out
}

// MedianLongevity is the truncated median of per-path longevity.
func MedianLongevity(longevity []int) int {
	vals := make([]float64, len(longevity))
	for i, l := range longevity {
		vals[i] = float64(l)
	}
	return int(numeric.Sanitize(numeric.Median(vals)))
}

// Suggestions returns the advisory strings for a compound projection.
func Suggestions(p domain.CompoundParams, medianFinal float64) []string {
	suggestions := []string{}
	if p.Target != nil && *p.Target != 0 {
		ratio := *p.Target / (medianFinal + ratioEpsilon)
		if ratio > 1.05 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Increase annual contributions by ~%.0f%% (or raise yearly growth above %.1f%%).",
				(ratio-1)*100, p.ContributionGrowth*100))
		} else if ratio < 0.9 {
			suggestions = append(suggestions, "You appear on track at median case; consider lowering risk or locking gains later.")
		}
	}
	if p.ExpenseRatio > highExpenseRatio {
		suggestions = append(suggestions, "Your expense ratio looks high; consider a lower-cost index fund (<0.10%).")
	}
	if p.Volatility > highVolatility {
		suggestions = append(suggestions, "Volatility is high; a diversified mix could smooth drawdowns.")
	}
	return suggestions
}
