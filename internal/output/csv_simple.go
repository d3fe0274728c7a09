package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer implements the summary CSV output (one metric,value row per metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv-summary" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := writeMetrics(w, report); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeMetrics(w *csv.Writer, report *Report) error {
	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	for _, m := range report.Projection.Metrics() {
		if err := w.Write([]string{m.Name, rawMetric(m)}); err != nil {
			return err
		}
	}
	return nil
}
