package domain

import "strconv"

// Unit tells formatters how to render a Metric.
type Unit int

const (
	UnitAmount Unit = iota // currency
	UnitRatio              // fraction rendered as a percentage
	UnitCount              // periods, indices
	UnitText
)

// Series is one named column of a tabular projection.
type Series struct {
	Name   string
	Values []float64
}

// Metric is one named summary value.
type Metric struct {
	Name  string
	Value float64
	Text  string
	Unit  Unit
}

// Projection is the read-only view output formatters consume. Every
// calculator result implements it.
type Projection interface {
	Kind() string
	Index() []string
	Series() []Series
	Metrics() []Metric
	Notes() []string
}

// Band holds percentile paths extracted column-wise from an ensemble.
type Band struct {
	P10 []float64 `json:"p10" yaml:"p10"`
	P25 []float64 `json:"p25" yaml:"p25"`
	P50 []float64 `json:"p50" yaml:"p50"`
	P75 []float64 `json:"p75" yaml:"p75"`
	P90 []float64 `json:"p90" yaml:"p90"`
}

func (b Band) series(prefix string) []Series {
	return []Series{
		{Name: prefix + "p10", Values: b.P10},
		{Name: prefix + "p25", Values: b.P25},
		{Name: prefix + "p50", Values: b.P50},
		{Name: prefix + "p75", Values: b.P75},
		{Name: prefix + "p90", Values: b.P90},
	}
}

// CompoundBands adds the inflation-adjusted median to the nominal band.
type CompoundBands struct {
	Band    `yaml:",inline"`
	P50Real []float64 `json:"p50_real" yaml:"p50_real"`
}

type CompoundSummary struct {
	ExpectedFinal float64  `json:"expected_final" yaml:"expected_final"`
	MedianFinal   float64  `json:"median_final" yaml:"median_final"`
	P10Final      float64  `json:"p10_final" yaml:"p10_final"`
	P90Final      float64  `json:"p90_final" yaml:"p90_final"`
	ProbHitTarget *float64 `json:"prob_hit_target,omitempty" yaml:"prob_hit_target,omitempty"`
}

type CompoundInsights struct {
	MedianCAGR        float64 `json:"median_cagr" yaml:"median_cagr"`
	MedianMaxDrawdown float64 `json:"median_max_drawdown" yaml:"median_max_drawdown"`
	TotalContrib      float64 `json:"total_contrib" yaml:"total_contrib"`
	RealMedianFinal   float64 `json:"real_median_final" yaml:"real_median_final"`
}

// CompoundResult is the compound-growth projection output.
type CompoundResult struct {
	Times       []int            `json:"times" yaml:"times"`
	Percentiles CompoundBands    `json:"percentiles" yaml:"percentiles"`
	Summary     CompoundSummary  `json:"summary" yaml:"summary"`
	Insights    CompoundInsights `json:"insights" yaml:"insights"`
	Suggestions []string         `json:"suggestions" yaml:"suggestions"`
}

func (r *CompoundResult) Kind() string { return "compound" }

func (r *CompoundResult) Index() []string {
	idx := make([]string, len(r.Times))
	for i, t := range r.Times {
		idx[i] = strconv.Itoa(t)
	}
	return idx
}

func (r *CompoundResult) Series() []Series {
	s := r.Percentiles.series("")
	return append(s, Series{Name: "p50_real", Values: r.Percentiles.P50Real})
}

func (r *CompoundResult) Metrics() []Metric {
	m := []Metric{
		{Name: "expected_final", Value: r.Summary.ExpectedFinal},
		{Name: "median_final", Value: r.Summary.MedianFinal},
		{Name: "p10_final", Value: r.Summary.P10Final},
		{Name: "p90_final", Value: r.Summary.P90Final},
	}
	if r.Summary.ProbHitTarget != nil {
		m = append(m, Metric{Name: "prob_hit_target", Value: *r.Summary.ProbHitTarget, Unit: UnitRatio})
	}
	return append(m,
		Metric{Name: "median_cagr", Value: r.Insights.MedianCAGR, Unit: UnitRatio},
		Metric{Name: "median_max_drawdown", Value: r.Insights.MedianMaxDrawdown, Unit: UnitRatio},
		Metric{Name: "total_contrib", Value: r.Insights.TotalContrib},
		Metric{Name: "real_median_final", Value: r.Insights.RealMedianFinal},
	)
}

func (r *CompoundResult) Notes() []string { return r.Suggestions }

type DrawdownSummary struct {
	MedianMaxDrawdown    float64 `json:"median_max_drawdown" yaml:"median_max_drawdown"`
	P10MaxDrawdown       float64 `json:"p10_max_drawdown" yaml:"p10_max_drawdown"`
	P90MaxDrawdown       float64 `json:"p90_max_drawdown" yaml:"p90_max_drawdown"`
	MedianRecoveryMonths int     `json:"median_recovery_months" yaml:"median_recovery_months"`
	// Recovered is false when the median path never regains its pre-trough
	// peak within the horizon; MedianRecoveryMonths then runs to the horizon end.
	Recovered bool `json:"recovered" yaml:"recovered"`
}

// DrawdownResult is the drawdown projection output.
type DrawdownResult struct {
	Labels      []string        `json:"labels" yaml:"labels"`
	Percentiles Band            `json:"percentiles" yaml:"percentiles"`
	Summary     DrawdownSummary `json:"summary" yaml:"summary"`
}

func (r *DrawdownResult) Kind() string     { return "drawdown" }
func (r *DrawdownResult) Index() []string  { return r.Labels }
func (r *DrawdownResult) Series() []Series { return r.Percentiles.series("dd_") }
func (r *DrawdownResult) Notes() []string  { return nil }

func (r *DrawdownResult) Metrics() []Metric {
	recovered := "no"
	if r.Summary.Recovered {
		recovered = "yes"
	}
	return []Metric{
		{Name: "median_max_drawdown", Value: r.Summary.MedianMaxDrawdown, Unit: UnitRatio},
		{Name: "p10_max_drawdown", Value: r.Summary.P10MaxDrawdown, Unit: UnitRatio},
		{Name: "p90_max_drawdown", Value: r.Summary.P90MaxDrawdown, Unit: UnitRatio},
		{Name: "median_recovery_months", Value: float64(r.Summary.MedianRecoveryMonths), Unit: UnitCount},
		{Name: "recovered", Text: recovered, Unit: UnitText},
	}
}

type FireSummary struct {
	MedianTerminal       float64 `json:"median_terminal" yaml:"median_terminal"`
	ProbNonzeroEnd       float64 `json:"prob_nonzero_end" yaml:"prob_nonzero_end"`
	MedianLastingMonths  int     `json:"median_lasting_months" yaml:"median_lasting_months"`
	RetirementStartIndex int     `json:"retirement_start_index" yaml:"retirement_start_index"`
}

// FireResult is the retirement sustainability projection output.
type FireResult struct {
	Labels      []string    `json:"labels" yaml:"labels"`
	Percentiles Band        `json:"percentiles" yaml:"percentiles"`
	Summary     FireSummary `json:"summary" yaml:"summary"`
}

func (r *FireResult) Kind() string     { return "fire" }
func (r *FireResult) Index() []string  { return r.Labels }
func (r *FireResult) Series() []Series { return r.Percentiles.series("") }
func (r *FireResult) Notes() []string  { return nil }

func (r *FireResult) Metrics() []Metric {
	return []Metric{
		{Name: "median_terminal", Value: r.Summary.MedianTerminal},
		{Name: "prob_nonzero_end", Value: r.Summary.ProbNonzeroEnd, Unit: UnitRatio},
		{Name: "median_lasting_months", Value: float64(r.Summary.MedianLastingMonths), Unit: UnitCount},
		{Name: "retirement_start_index", Value: float64(r.Summary.RetirementStartIndex), Unit: UnitCount},
	}
}

type MortgageSummary struct {
	PayoffMonths          int     `json:"payoff_months" yaml:"payoff_months"`
	PayoffDate            string  `json:"payoff_date" yaml:"payoff_date"`
	BaselinePayoffMonths  int     `json:"baseline_payoff_months" yaml:"baseline_payoff_months"`
	BaselinePayoffDate    string  `json:"baseline_payoff_date" yaml:"baseline_payoff_date"`
	TotalInterest         float64 `json:"total_interest" yaml:"total_interest"`
	BaselineTotalInterest float64 `json:"baseline_total_interest" yaml:"baseline_total_interest"`
	InterestSaved         float64 `json:"interest_saved" yaml:"interest_saved"`
	MonthsSaved           int     `json:"months_saved" yaml:"months_saved"`
	EndingBalance         float64 `json:"ending_balance" yaml:"ending_balance"`
	IsBalloon             bool    `json:"is_balloon" yaml:"is_balloon"`
	FixedMonths           int     `json:"fixed_months" yaml:"fixed_months"`
}

// MortgageResult is the amortization projection output. Every series has
// one entry per label; payment columns carry 0 at period 0.
type MortgageResult struct {
	Labels          []string        `json:"labels" yaml:"labels"`
	Balance         []float64       `json:"balance" yaml:"balance"`
	BaselineBalance []float64       `json:"baseline_balance" yaml:"baseline_balance"`
	SchedulePayment []float64       `json:"schedule_payment" yaml:"schedule_payment"`
	TotalPayment    []float64       `json:"total_payment" yaml:"total_payment"`
	Interest        []float64       `json:"interest" yaml:"interest"`
	Principal       []float64       `json:"principal" yaml:"principal"`
	Summary         MortgageSummary `json:"summary" yaml:"summary"`
}

func (r *MortgageResult) Kind() string    { return "mortgage" }
func (r *MortgageResult) Index() []string { return r.Labels }
func (r *MortgageResult) Notes() []string { return nil }

func (r *MortgageResult) Series() []Series {
	return []Series{
		{Name: "balance", Values: r.Balance},
		{Name: "baseline_balance", Values: r.BaselineBalance},
		{Name: "schedule_payment", Values: r.SchedulePayment},
		{Name: "total_payment", Values: r.TotalPayment},
		{Name: "interest", Values: r.Interest},
		{Name: "principal", Values: r.Principal},
	}
}

func (r *MortgageResult) Metrics() []Metric {
	s := r.Summary
	balloon := "no"
	if s.IsBalloon {
		balloon = "yes"
	}
	return []Metric{
		{Name: "payoff_months", Value: float64(s.PayoffMonths), Unit: UnitCount},
		{Name: "payoff_date", Text: s.PayoffDate, Unit: UnitText},
		{Name: "baseline_payoff_months", Value: float64(s.BaselinePayoffMonths), Unit: UnitCount},
		{Name: "baseline_payoff_date", Text: s.BaselinePayoffDate, Unit: UnitText},
		{Name: "total_interest", Value: s.TotalInterest},
		{Name: "baseline_total_interest", Value: s.BaselineTotalInterest},
		{Name: "interest_saved", Value: s.InterestSaved},
		{Name: "months_saved", Value: float64(s.MonthsSaved), Unit: UnitCount},
		{Name: "ending_balance", Value: s.EndingBalance},
		{Name: "is_balloon", Text: balloon, Unit: UnitText},
		{Name: "fixed_months", Value: float64(s.FixedMonths), Unit: UnitCount},
	}
}

// SuggestResult is the closed-form contribution suggestion.
type SuggestResult struct {
	Year1ContributionNeeded float64 `json:"year1_contribution_needed" yaml:"year1_contribution_needed"`
	IncreaseOverCurrent     float64 `json:"increase_over_current" yaml:"increase_over_current"`
	Note                    string  `json:"note" yaml:"note"`
}

func (r *SuggestResult) Kind() string     { return "suggest" }
func (r *SuggestResult) Index() []string  { return nil }
func (r *SuggestResult) Series() []Series { return nil }
func (r *SuggestResult) Notes() []string  { return []string{r.Note} }

func (r *SuggestResult) Metrics() []Metric {
	return []Metric{
		{Name: "year1_contribution_needed", Value: r.Year1ContributionNeeded},
		{Name: "increase_over_current", Value: r.IncreaseOverCurrent},
	}
}
