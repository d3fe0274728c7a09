package dateutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2025))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   string
	}{
		{"zero months", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 0, "2025-03-15"},
		{"simple", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 1, "2025-04-15"},
		{"year rollover", time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), 3, "2026-02-10"},
		{"clamp to february", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 1, "2025-02-28"},
		{"clamp to leap february", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, "2024-02-29"},
		{"clamp to thirty days", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 1, "2025-09-30"},
		{"many years", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 360, "2055-01-01"},
		{"negative", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), -1, "2025-02-28"},
		{"negative across year", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), -13, "2023-12-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months).Format(ISODate))
		})
	}
}

func TestAddMonthsDoesNotDrift(t *testing.T) {
	// Each label is computed from the start date, so a short month in between
	// must not pull later labels back.
	labels := MonthLabels(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 4)
	assert.Equal(t, []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}, labels)
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 13)
	require.Len(t, labels, 13)
	assert.Equal(t, "2025-06-01", labels[0])
	assert.Equal(t, "2026-06-01", labels[12])
	assert.Empty(t, MonthLabels(time.Now(), -3))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())

	d, err = ParseDate("2024-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Start *Date `json:"start_date,omitempty"`
	}
	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2030-12-31"}`), &w))
	require.NotNil(t, w.Start)
	assert.Equal(t, NewDate(2030, time.December, 31), *w.Start)

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2030-12-31"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":20301231}`), &w))
}

func TestDateYAML(t *testing.T) {
	type wrapper struct {
		Start Date `yaml:"start_date"`
	}
	var w wrapper
	require.NoError(t, yaml.Unmarshal([]byte("start_date: 2026-01-15\n"), &w))
	assert.Equal(t, "2026-01-15", w.Start.String())

	out, err := yaml.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2026-01-15")
}
