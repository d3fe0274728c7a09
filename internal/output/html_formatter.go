package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/rpgo/projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"metric": FormatMetric,
	"upper":  strings.ToUpper,
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 720
	chartHeight = 280
)

var chartColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

type chartLine struct {
	Name   string
	Color  string
	Points string
}

type tableRow struct {
	Label string
	Cells []string
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection
	series := p.Series()

	data := struct {
		Kind           string
		Metrics        []domain.Metric
		Recommendation Recommendation
		Assumptions    []string
		Notes          []string
		Chart          []chartLine
		Width, Height  int
		Columns        []string
		Rows           []tableRow
	}{
		Kind:           p.Kind(),
		Metrics:        p.Metrics(),
		Recommendation: AnalyzeProjection(p),
		Assumptions:    report.Assumptions,
		Notes:          p.Notes(),
		Chart:          chartLines(series),
		Width:          chartWidth,
		Height:         chartHeight,
	}
	for _, s := range series {
		data.Columns = append(data.Columns, s.Name)
	}
	index := p.Index()
	for _, i := range sampleRows(len(index)) {
		row := tableRow{Label: index[i]}
		for _, s := range series {
			if i < len(s.Values) {
				row.Cells = append(row.Cells, floatToString(s.Values[i]))
			} else {
				row.Cells = append(row.Cells, "")
			}
		}
		data.Rows = append(data.Rows, row)
	}

	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartLines scales every series into one shared SVG viewport.
func chartLines(series []domain.Series) []chartLine {
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	if n < 2 {
		return nil
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	lines := make([]chartLine, 0, len(series))
	for k, s := range series {
		var pts strings.Builder
		for i, v := range s.Values {
			x := float64(i) / float64(n-1) * chartWidth
			y := chartHeight - (v-lo)/span*chartHeight
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.1f,%.1f", x, y)
		}
		lines = append(lines, chartLine{Name: s.Name, Color: chartColors[k%len(chartColors)], Points: pts.String()})
	}
	return lines
}
