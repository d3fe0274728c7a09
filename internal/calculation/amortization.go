package calculation

import (
	"math"

	"github.com/rpgo/projector/internal/domain"
)

const (
	zeroRateEpsilon = 1e-12
	balanceNoise    = 1e-6
)

// LoanTerms are the inputs of one amortization run. Rates are annual.
type LoanTerms struct {
	Principal      float64
	TermPeriods    int
	FixedPeriods   int
	FixedRate      float64
	VariableRate   float64
	PeriodsPerYear int
	// Overpayment is added to the scheduled payment every period.
	Overpayment float64
	// Lumps maps absolute 1-based periods to one-time extra payments.
	Lumps              map[int]float64
	RecalcOnRateChange bool
}

// WithoutExtras returns the same loan with overpayments and lumps removed,
// used as the comparison baseline.
func (lt LoanTerms) WithoutExtras() LoanTerms {
	lt.Overpayment = 0
	lt.Lumps = nil
	return lt
}

// AmortizationRow is the state after one period. Row 0 carries only the
// opening balance.
type AmortizationRow struct {
	Period           int
	BalanceAfter     float64
	ScheduledPayment float64
	TotalPayment     float64
	Interest         float64
	Principal        float64
}

// AmortizationSchedule is ordered by period and stops at payoff, so a
// loan repaid early has fewer rows than TermPeriods+1.
type AmortizationSchedule struct {
	Rows []AmortizationRow
}

// Payment is the level annuity payment for balance over n periods at
// periodic rate i. A zero rate degrades to equal installments and n <= 0
// asks for the whole balance.
func Payment(balance, i float64, n int) float64 {
	if n <= 0 {
		return balance
	}
	if math.Abs(i) < zeroRateEpsilon {
		return balance / float64(n)
	}
	return balance * i / (1 - math.Pow(1+i, -float64(n)))
}

// Amortize runs the loan state machine period by period.
func Amortize(terms LoanTerms) *AmortizationSchedule {
	perYear := terms.PeriodsPerYear
	if perYear <= 0 {
		perYear = 12
	}
	iFixed := terms.FixedRate / float64(perYear)
	iVar := terms.VariableRate / float64(perYear)

	balance := terms.Principal
	rows := make([]AmortizationRow, 1, terms.TermPeriods+1)
	rows[0] = AmortizationRow{BalanceAfter: balance}

	pmt := Payment(balance, iFixed, terms.TermPeriods)
	for m := 1; m <= terms.TermPeriods; m++ {
		rate := iVar
		if m <= terms.FixedPeriods {
			rate = iFixed
		}
		if terms.RecalcOnRateChange && m == terms.FixedPeriods+1 {
			pmt = Payment(balance, rate, terms.TermPeriods-(m-1))
		}

		interest := balance * rate
		total := pmt + terms.Overpayment + terms.Lumps[m]
		next := balance + interest - total
		// negative when the payment underfunds interest; kept as is
		principal := total - interest

		if next < 0 && next > -balanceNoise {
			next = 0
		}
		rows = append(rows, AmortizationRow{
			Period:           m,
			BalanceAfter:     next,
			ScheduledPayment: pmt,
			TotalPayment:     total,
			Interest:         interest,
			Principal:        principal,
		})

		balance = next
		if balance <= 0 {
			break
		}
	}
	return &AmortizationSchedule{Rows: rows}
}

// LumpSchedule maps extra payments onto absolute periods 1..termPeriods.
// Payments outside the term are dropped; payments on the same period add up.
func LumpSchedule(extras []domain.ExtraPayment, termPeriods int) map[int]float64 {
	lumps := make(map[int]float64)
	for _, e := range extras {
		idx := e.Period()
		if idx >= 1 && idx <= termPeriods {
			lumps[idx] += e.Amount
		}
	}
	return lumps
}

// Balances returns the opening balance followed by each period's closing balance.
func (s *AmortizationSchedule) Balances() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.BalanceAfter
	}
	return out
}

func (s *AmortizationSchedule) column(f func(AmortizationRow) float64) []float64 {
	if len(s.Rows) < 2 {
		return []float64{}
	}
	out := make([]float64, len(s.Rows)-1)
	for i, r := range s.Rows[1:] {
		out[i] = f(r)
	}
	return out
}

// ScheduledPayments excludes period 0.
func (s *AmortizationSchedule) ScheduledPayments() []float64 {
	return s.column(func(r AmortizationRow) float64 { return r.ScheduledPayment })
}

func (s *AmortizationSchedule) TotalPayments() []float64 {
	return s.column(func(r AmortizationRow) float64 { return r.TotalPayment })
}

func (s *AmortizationSchedule) InterestPortions() []float64 {
	return s.column(func(r AmortizationRow) float64 { return r.Interest })
}

func (s *AmortizationSchedule) PrincipalPortions() []float64 {
	return s.column(func(r AmortizationRow) float64 { return r.Principal })
}

// TotalInterest sums interest over the recorded periods.
func (s *AmortizationSchedule) TotalInterest() float64 {
	var total float64
	for _, r := range s.Rows[1:] {
		total += r.Interest
	}
	return total
}

// PayoffPeriod is the first period with a non-positive balance, or the last
// recorded period when the loan is not repaid.
func (s *AmortizationSchedule) PayoffPeriod() int {
	for i, r := range s.Rows {
		if r.BalanceAfter <= 0 {
			return i
		}
	}
	return len(s.Rows) - 1
}

// EndingBalance is the balance after the last recorded period; positive
// means a balloon remains at the end of the term.
func (s *AmortizationSchedule) EndingBalance() float64 {
	return s.Rows[len(s.Rows)-1].BalanceAfter
}

// PadRepeat extends values to length n by repeating the last element, or
// truncates to n. An empty input pads with zeros.
func PadRepeat(values []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if len(values) >= n {
		return append([]float64(nil), values[:n]...)
	}
	out := make([]float64, n)
	copy(out, values)
	if len(values) > 0 {
		last := values[len(values)-1]
		for i := len(values); i < n; i++ {
			out[i] = last
		}
	}
	return out
}
