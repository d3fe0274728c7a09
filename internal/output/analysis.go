package output

import (
	"fmt"

	"github.com/rpgo/projector/internal/domain"
)

// Recommendation is the one-line takeaway of a projection plus supporting
// lines.
type Recommendation struct {
	Headline string
	Details  []string
}

// AnalyzeProjection derives the takeaway shown by the console and HTML
// reports. Extracted from the formatters for testability.
func AnalyzeProjection(p domain.Projection) Recommendation {
	switch r := p.(type) {
	case *domain.CompoundResult:
		rec := Recommendation{Headline: fmt.Sprintf("Median ending balance %s (real %s)",
			FormatCurrency(r.Summary.MedianFinal), FormatCurrency(r.Insights.RealMedianFinal))}
		if r.Summary.ProbHitTarget != nil {
			rec.Details = append(rec.Details, fmt.Sprintf("%s of simulations reach the target", FormatPercentage(*r.Summary.ProbHitTarget)))
		}
		rec.Details = append(rec.Details, fmt.Sprintf("Total contributions %s", FormatCurrency(r.Insights.TotalContrib)))
		return rec

	case *domain.DrawdownResult:
		rec := Recommendation{Headline: fmt.Sprintf("Typical worst decline %s (bad case %s)",
			FormatPercentage(r.Summary.MedianMaxDrawdown), FormatPercentage(r.Summary.P10MaxDrawdown))}
		if r.Summary.Recovered {
			rec.Details = append(rec.Details, fmt.Sprintf("The median path regains its peak %d months after the trough", r.Summary.MedianRecoveryMonths))
		} else {
			rec.Details = append(rec.Details, fmt.Sprintf("The median path is still below its peak %d months after the trough", r.Summary.MedianRecoveryMonths))
		}
		return rec

	case *domain.FireResult:
		retirement := len(r.Labels) - 1 - r.Summary.RetirementStartIndex
		return Recommendation{
			Headline: fmt.Sprintf("%s of simulations still hold money at the end", FormatPercentage(r.Summary.ProbNonzeroEnd)),
			Details: []string{
				fmt.Sprintf("Median savings last %d of %d retirement months", r.Summary.MedianLastingMonths, retirement),
				fmt.Sprintf("Median ending balance %s", FormatCurrency(r.Summary.MedianTerminal)),
			},
		}

	case *domain.MortgageResult:
		s := r.Summary
		rec := Recommendation{Headline: fmt.Sprintf("Paid off in %d months (%s)", s.PayoffMonths, s.PayoffDate)}
		if s.MonthsSaved > 0 || s.InterestSaved > 0 {
			rec.Details = append(rec.Details, fmt.Sprintf("Extra payments save %s of interest and %d months",
				FormatCurrency(s.InterestSaved), s.MonthsSaved))
		}
		if s.IsBalloon {
			rec.Details = append(rec.Details, fmt.Sprintf("A balloon of %s remains at the end of the term", FormatCurrency(s.EndingBalance)))
		}
		return rec

	case *domain.SuggestResult:
		return Recommendation{
			Headline: fmt.Sprintf("Contribute %s in the first year", FormatCurrency(r.Year1ContributionNeeded)),
			Details:  []string{fmt.Sprintf("Change versus current contribution: %s", FormatCurrency(r.IncreaseOverCurrent))},
		}
	}
	return Recommendation{}
}
