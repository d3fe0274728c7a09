package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/projector/internal/domain"
)

// ConsoleVerboseFormatter renders the summary plus a yearly table of every
// series.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

// yearStep samples monthly series once a year in the table.
const yearStep = 12

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "DETAILED %s PROJECTION\n", strings.ToUpper(p.Kind()))
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)

	assumptions := report.Assumptions
	if len(assumptions) == 0 && len(p.Series()) > 0 && p.Kind() != "mortgage" {
		assumptions = DefaultAssumptions
	}
	if len(assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	writeSummary(&buf, report)

	if series := p.Series(); len(series) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "YEARLY DETAIL")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		writeTable(&buf, p.Index(), series, p.Kind() == "drawdown")
	}
	return buf.Bytes(), nil
}

func writeTable(buf *bytes.Buffer, index []string, series []domain.Series, ratios bool) {
	fmt.Fprintf(buf, "%-12s", "index")
	for _, s := range series {
		fmt.Fprintf(buf, " %16s", s.Name)
	}
	fmt.Fprintln(buf)

	for _, i := range sampleRows(len(index)) {
		fmt.Fprintf(buf, "%-12s", index[i])
		for _, s := range series {
			cell := ""
			if i < len(s.Values) {
				if ratios {
					cell = FormatPercentage(s.Values[i])
				} else {
					cell = FormatCurrency(s.Values[i])
				}
			}
			fmt.Fprintf(buf, " %16s", cell)
		}
		fmt.Fprintln(buf)
	}
}

// sampleRows picks every yearStep-th index and always the last one.
func sampleRows(n int) []int {
	var rows []int
	for i := 0; i < n; i += yearStep {
		rows = append(rows, i)
	}
	if n > 0 && rows[len(rows)-1] != n-1 {
		rows = append(rows, n-1)
	}
	return rows
}
