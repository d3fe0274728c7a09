package numeric

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.5, SafeDiv(5, 2))
	assert.Equal(t, 5.0, SafeDiv(5, 0))
	assert.Equal(t, -3.0, SafeDiv(-3, -10))
	assert.Equal(t, 1.0, SafeDenominator(math.Inf(1)))
	assert.Equal(t, 1.0, SafeDenominator(math.NaN()))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, Sanitize(math.NaN()))
	assert.Equal(t, 0.0, Sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, Sanitize(math.Inf(-1)))
	assert.Equal(t, 1.5, Sanitize(1.5))

	in := []float64{1, math.NaN(), math.Inf(-1), -2}
	assert.Equal(t, []float64{1, 0, 0, -2}, SanitizeSlice(in))
	assert.True(t, math.IsNaN(in[1]), "input must not be modified")
}

func TestPercentileLinearInterpolation(t *testing.T) {
	xs := []float64{4, 1, 3, 2, 5}
	assert.Equal(t, 3.0, Median(xs))
	assert.InDelta(t, 1.4, Percentile(xs, 10), 1e-12)
	assert.InDelta(t, 2.0, Percentile(xs, 25), 1e-12)
	assert.InDelta(t, 4.6, Percentile(xs, 90), 1e-12)
	assert.Equal(t, 1.0, Percentile(xs, 0))
	assert.Equal(t, 5.0, Percentile(xs, 100))
	assert.Equal(t, []float64{4, 1, 3, 2, 5}, xs, "input must not be sorted in place")

	even := []float64{1, 2, 3, 4}
	assert.Equal(t, 2.5, Median(even))
}

func TestPercentileDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, 7.0, Percentile([]float64{7}, 90))
	assert.Equal(t, []float64{0, 0}, Percentiles(nil, 10, 90))
}

func TestColumnPercentilesOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 37)
	for i := range rows {
		rows[i] = make([]float64, 12)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64() * 1000
		}
	}
	bands := ColumnPercentiles(rows, 10, 25, 50, 75, 90)
	require.Len(t, bands, 5)
	for tcol := 0; tcol < 12; tcol++ {
		for lvl := 1; lvl < 5; lvl++ {
			assert.LessOrEqual(t, bands[lvl-1][tcol], bands[lvl][tcol])
		}
		assert.InDelta(t, Median(Column(rows, tcol)), bands[2][tcol], 1e-9)
	}
}

func TestColumnPercentilesEmpty(t *testing.T) {
	bands := ColumnPercentiles(nil, 10, 50)
	require.Len(t, bands, 2)
	assert.Empty(t, bands[0])
}

func TestCumMaxAndArgMin(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 3, 4, 4}, CumMax([]float64{1, 3, 2, 4, 0}))
	assert.Equal(t, 4, ArgMin([]float64{1, 3, 2, 4, 0}))
	assert.Equal(t, 1, ArgMin([]float64{5, -1, 2, -1}))
	assert.Equal(t, -1, ArgMin(nil))
}

func TestMeanAndSum(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
}
