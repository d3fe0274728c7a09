package output

import (
	"strconv"

	"github.com/rpgo/projector/internal/domain"
	"github.com/rpgo/projector/pkg/decimal"
)

// FormatCurrency formats an amount as USD with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return decimal.NewMoney(amount).Format() }

// FormatPercentage formats a fraction as a percentage with 2 decimals.
func FormatPercentage(fraction float64) string { return decimal.Percent(fraction, 2) }

// FormatMetric renders a metric according to its unit.
func FormatMetric(m domain.Metric) string {
	switch m.Unit {
	case domain.UnitRatio:
		return FormatPercentage(m.Value)
	case domain.UnitCount:
		return intToString(int(m.Value))
	case domain.UnitText:
		return m.Text
	default:
		return FormatCurrency(m.Value)
	}
}

// rawMetric renders a metric without currency or percent decoration.
func rawMetric(m domain.Metric) string {
	switch m.Unit {
	case domain.UnitText:
		return m.Text
	case domain.UnitCount:
		return intToString(int(m.Value))
	default:
		return floatToString(m.Value)
	}
}

func intToString(i int) string { return strconv.Itoa(i) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
