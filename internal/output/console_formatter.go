package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection
	title := strings.ToUpper(p.Kind()) + " PROJECTION SUMMARY"
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	writeSummary(&buf, report)
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, report *Report) {
	p := report.Projection
	width := 0
	for _, m := range p.Metrics() {
		if len(m.Name) > width {
			width = len(m.Name)
		}
	}
	for _, m := range p.Metrics() {
		fmt.Fprintf(buf, "%-*s  %s\n", width, m.Name, FormatMetric(m))
	}

	rec := AnalyzeProjection(p)
	if rec.Headline != "" {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, rec.Headline)
		for _, d := range rec.Details {
			fmt.Fprintf(buf, "  %s\n", d)
		}
	}
	if notes := p.Notes(); len(notes) > 0 {
		fmt.Fprintln(buf)
		for _, n := range notes {
			fmt.Fprintf(buf, "• %s\n", n)
		}
	}
}
