package calculation

import (
	"math"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/internal/numeric"
)

const suggestionNote = "This uses expected-return math; Monte Carlo will vary."

// GrowingAnnuityFactor is the future value after n years of a contribution
// stream starting at 1 and growing at g, compounded at r.
func GrowingAnnuityFactor(r, g float64, n int) float64 {
	nf := float64(n)
	if math.Abs(r-g) < 1e-6 {
		return nf * math.Pow(1+r, nf-1)
	}
	return (math.Pow(1+r, nf) - math.Pow(1+g, nf)) / (r - g)
}

// SuggestContribution inverts the growing-annuity future value to find the
// first-year contribution that reaches the target at the expected return.
// Volatility does not enter the closed form.
func (pe *ProjectionEngine) SuggestContribution(p domain.SuggestParams) *domain.SuggestResult {
	r := p.ExpectedReturn - p.ExpenseRatio
	n := float64(p.HorizonYears)
	factor := GrowingAnnuityFactor(r, p.ContributionGrowth, p.HorizonYears)

	needed := (p.Target - p.Initial*math.Pow(1+r, n)) / math.Max(factor, 1e-9)
	needed = numeric.Sanitize(math.Max(needed, 0))

	return &domain.SuggestResult{
		Year1ContributionNeeded: needed,
		IncreaseOverCurrent:     needed - p.CurrentAnnualContribution,
		Note:                    suggestionNote,
	}
}
