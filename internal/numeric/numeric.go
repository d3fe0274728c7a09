// Package numeric holds the guarded helpers every projection output passes
// through. Degenerate inputs never fail: a non-positive denominator is
// replaced by 1 and non-finite results are replaced by 0.
package numeric

import (
	"math"
	"sort"
)

// SafeDenominator returns d when it is strictly positive, otherwise 1.
func SafeDenominator(d float64) float64 {
	if d > 0 && !math.IsInf(d, 1) {
		return d
	}
	return 1
}

// SafeDiv divides num by den, substituting 1 for a non-positive denominator.
func SafeDiv(num, den float64) float64 {
	return num / SafeDenominator(den)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Sanitize replaces NaN and ±Inf with 0.
func Sanitize(x float64) float64 {
	if IsFinite(x) {
		return x
	}
	return 0
}

// SanitizeSlice returns a copy of xs with every non-finite value replaced by 0.
func SanitizeSlice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Sanitize(x)
	}
	return out
}

// Sum adds all values.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return Sum(xs) / float64(len(xs))
}

// Percentile returns the p-th percentile (0..100) of xs using linear
// interpolation between order statistics. xs is not modified.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

// Percentiles evaluates several levels with a single sort.
func Percentiles(xs []float64, levels ...float64) []float64 {
	out := make([]float64, len(levels))
	if len(xs) == 0 {
		return out
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	for i, p := range levels {
		out[i] = percentileSorted(sorted, p)
	}
	return out
}

// Median is the 50th percentile.
func Median(xs []float64) float64 {
	return Percentile(xs, 50)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	a, b := sorted[lo], sorted[hi]
	if frac == 0 || a == b {
		return a
	}
	v := a + (b-a)*frac
	// keep the result inside the bracketing order statistics so that
	// percentile levels stay ordered after rounding
	if v < a {
		v = a
	} else if v > b {
		v = b
	}
	return v
}

// ColumnPercentiles reduces a row-major matrix column by column. The result
// has one series per level, each as long as the rows.
func ColumnPercentiles(rows [][]float64, levels ...float64) [][]float64 {
	out := make([][]float64, len(levels))
	if len(rows) == 0 {
		for i := range out {
			out[i] = []float64{}
		}
		return out
	}
	width := len(rows[0])
	for i := range out {
		out[i] = make([]float64, width)
	}
	col := make([]float64, len(rows))
	for t := 0; t < width; t++ {
		for r, row := range rows {
			col[r] = row[t]
		}
		sort.Float64s(col)
		for i, p := range levels {
			out[i][t] = percentileSorted(col, p)
		}
	}
	return out
}

// Column copies column t of a row-major matrix.
func Column(rows [][]float64, t int) []float64 {
	col := make([]float64, len(rows))
	for r, row := range rows {
		col[r] = row[t]
	}
	return col
}

// CumMax returns the running maximum of xs.
func CumMax(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if i == 0 || x > out[i-1] {
			out[i] = x
		} else {
			out[i] = out[i-1]
		}
	}
	return out
}

// ArgMin returns the index of the first smallest value, or -1 for an empty slice.
func ArgMin(xs []float64) int {
	idx := -1
	for i, x := range xs {
		if idx < 0 || x < xs[idx] {
			idx = i
		}
	}
	return idx
}
