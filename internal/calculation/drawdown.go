package calculation

import "github.com/rpgo/projector/internal/numeric"

// RunningPeak is the cumulative maximum of series.
func RunningPeak(series []float64) []float64 {
	return numeric.CumMax(series)
}

// DrawdownSeries returns (value - peak) / peak for every period. A
// non-positive peak is replaced by 1 as the denominator, so values are
// always <= 0 and exactly 0 at each new peak.
func DrawdownSeries(series []float64) []float64 {
	peak := RunningPeak(series)
	dd := make([]float64, len(series))
	for i, v := range series {
		dd[i] = numeric.SafeDiv(v-peak[i], peak[i])
	}
	return dd
}

// MaxDrawdown is the most negative drawdown after the initial period.
func MaxDrawdown(dd []float64) float64 {
	if len(dd) < 2 {
		return 0
	}
	worst := dd[1]
	for _, d := range dd[2:] {
		if d < worst {
			worst = d
		}
	}
	return numeric.Sanitize(worst)
}

// DrawdownEnsemble converts every path to its drawdown series.
func DrawdownEnsemble(paths [][]float64) [][]float64 {
	out := make([][]float64, len(paths))
	for i, p := range paths {
		out[i] = DrawdownSeries(p)
	}
	return out
}

// PathMaxDrawdowns returns the maximum drawdown of each path.
func PathMaxDrawdowns(drawdowns [][]float64) []float64 {
	out := make([]float64, len(drawdowns))
	for i, dd := range drawdowns {
		out[i] = MaxDrawdown(dd)
	}
	return out
}

// Recovery describes the deepest trough of a series and how long it took
// to regain the peak standing at the trough.
type Recovery struct {
	TroughIndex   int
	RecoveryIndex int
	Periods       int
	// Recovered is false when the peak was never regained; RecoveryIndex is
	// then the last index, so Periods matches an in-progress recovery.
	Recovered bool
}

// AnalyzeRecovery locates the trough (argmin of drawdown) and scans forward
// for the first value at or above the peak recorded at the trough.
func AnalyzeRecovery(series []float64) Recovery {
	if len(series) == 0 {
		return Recovery{Recovered: true}
	}
	peak := RunningPeak(series)
	trough := numeric.ArgMin(DrawdownSeries(series))
	target := peak[trough]

	rec := Recovery{TroughIndex: trough, RecoveryIndex: len(series) - 1}
	for j := trough; j < len(series); j++ {
		if series[j] >= target {
			rec.RecoveryIndex = j
			rec.Recovered = true
			break
		}
	}
	if rec.RecoveryIndex > trough {
		rec.Periods = rec.RecoveryIndex - trough
	}
	return rec
}
