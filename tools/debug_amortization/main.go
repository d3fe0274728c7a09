package main

import (
	"fmt"
	"io"
	"os"
	"time"

	calc "github.com/rpgo/projector/internal/calculation"
	"github.com/rpgo/projector/internal/config"
	"github.com/rpgo/projector/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Prints the raw amortization rows of a mortgage request side by side with
// the no-overpayment baseline, unpadded and unrounded.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_amortization <mortgage-request-file>")
		return
	}
	req, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	if req.Kind != config.KindMortgage {
		fmt.Printf("%s is a %s request\n", os.Args[1], req.Kind)
		return
	}
	p := req.Mortgage
	terms := calc.MortgageTerms(*p)
	actual := calc.Amortize(terms)
	baseline := calc.Amortize(terms.WithoutExtras())

	start := time.Now()
	if p.StartDate != nil {
		start = p.StartDate.Time
	}

	writeRows(os.Stdout, actual, baseline, start)

	cumA, cumB := decimal.Zero, decimal.Zero
	a, b := actual.InterestPortions(), baseline.InterestPortions()
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			cumA = cumA.Add(decimal.NewFromFloat(a[i]))
		}
		if i < len(b) {
			cumB = cumB.Add(decimal.NewFromFloat(b[i]))
		}
		if (i+1)%12 == 0 {
			fmt.Printf("Cumulative interest year %d: actual=%s baseline=%s saved=%s\n",
				(i+1)/12, cumA.StringFixed(0), cumB.StringFixed(0), cumB.Sub(cumA).StringFixed(0))
		}
	}
	fmt.Printf("\nPayoff: period %d (baseline %d), ending balance %s\n",
		actual.PayoffPeriod(), baseline.PayoffPeriod(), fixed(actual.EndingBalance()))
}

// writeRows prints one CSV line per period of the longer schedule. Actual
// columns are blank once the overpaid loan is cleared.
func writeRows(w io.Writer, actual, baseline *calc.AmortizationSchedule, start time.Time) {
	fmt.Fprintln(w, "Period,Date,Payment,Interest,Principal,Balance,BaselineBalance")
	rows := len(actual.Rows)
	if len(baseline.Rows) > rows {
		rows = len(baseline.Rows)
	}
	for m := 0; m < rows; m++ {
		payment, interest, principal, balance, base := "", "", "", "", ""
		if m < len(actual.Rows) {
			row := actual.Rows[m]
			payment, interest, principal, balance = fixed(row.TotalPayment), fixed(row.Interest), fixed(row.Principal), fixed(row.BalanceAfter)
		}
		if m < len(baseline.Rows) {
			base = fixed(baseline.Rows[m].BalanceAfter)
		}
		fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s,%s\n", m, dateutil.AddMonths(start, m).Format("2006-01-02"),
			payment, interest, principal, balance, base)
	}
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
