package output

import (
	"fmt"
	"io"
	"os"

	"github.com/rpgo/projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// Report is what formatters render: a projection plus the assumptions it
// was computed under.
type Report struct {
	Projection  domain.Projection
	Assumptions []string
}

// NewReport wraps a projection, deriving the assumption lines from params.
func NewReport(p domain.Projection, params any) *Report {
	return &Report{Projection: p, Assumptions: GenerateAssumptions(params)}
}

// GenerateReport renders the report in the named format to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveRequest writes the params of a computation as YAML so a run can be
// repeated with `-f`.
func SaveRequest(kind string, params any, filename string) error {
	b, err := yaml.Marshal(struct {
		Kind   string `yaml:"kind"`
		Params any    `yaml:"params"`
	}{kind, params})
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
