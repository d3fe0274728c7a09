package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter writes one row per time index with every band or
// schedule column, followed by a blank line and the summary metrics.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	p := report.Projection

	series := p.Series()
	index := p.Index()
	if len(series) > 0 {
		header := []string{"index"}
		for _, s := range series {
			header = append(header, s.Name)
		}
		if err := w.Write(header); err != nil {
			return nil, err
		}
		for i, label := range index {
			row := []string{label}
			for _, s := range series {
				cell := ""
				if i < len(s.Values) {
					cell = floatToString(s.Values[i])
				}
				row = append(row, cell)
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		buf.WriteString("\n")
	}

	if err := writeMetrics(w, report); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
