package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "fire.yaml", "kind: fire\n"+
		"params:\n"+
		"  initial_balance: 25000\n"+
		"  years_to_retire: 15\n"+
		"  start_date: 2027-03-31\n"+
		"  seed: 7\n")

	req, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, KindFire, req.Kind)
	require.NotNil(t, req.Fire)
	assert.Nil(t, req.Compound)
	assert.Equal(t, 25_000.0, req.Fire.InitialBalance)
	assert.Equal(t, 15, req.Fire.YearsToRetire)
	assert.Equal(t, 30, req.Fire.YearsInRetirement, "omitted field keeps its default")
	assert.Equal(t, 2500.0, req.Fire.MonthlyDrawdown)
	require.NotNil(t, req.Fire.StartDate)
	assert.Equal(t, time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC), req.Fire.StartDate.Time)
	require.NotNil(t, req.Fire.Seed)
	assert.Equal(t, int64(7), *req.Fire.Seed)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "mortgage.json", `{
	"kind": "Mortgage",
	"params": {
		"principal": 200000,
		"extra_payments": [{"year": 1, "month": 3, "amount": 5000}],
		"recalc_on_rate_change": false
	}
}`)

	req, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, req.Mortgage)
	assert.Equal(t, 200_000.0, req.Mortgage.Principal)
	assert.False(t, req.Mortgage.RecalcOnRateChange)
	assert.Equal(t, 25, req.Mortgage.TermYears)
	assert.Equal(t, []domain.ExtraPayment{{Year: 1, Month: 3, Amount: 5000}}, req.Mortgage.ExtraPayments)
}

func TestLoadFromFile_MissingParamsUsesDefaults(t *testing.T) {
	path := writeFile(t, "dd.yaml", "kind: drawdown\n")
	req, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDrawdownParams(), *req.Drawdown)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Parse([]byte("kind: annuity\n"))
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = parser.Parse([]byte("kind: compound\nparams:\n  years: 0\n"))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "years")

	_, err = parser.Parse([]byte("kind: compound\nparams:\n  years: many\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrValidation))

	_, err = parser.Parse([]byte("{\"kind\": \"compound\",\n\t\"params\": [}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse request")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" SUGGEST ")
	require.NoError(t, err)
	assert.Equal(t, KindSuggest, k)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequestParamsMatchesKind(t *testing.T) {
	for _, k := range Kinds {
		req, err := NewRequest(k)
		require.NoError(t, err)
		assert.NotNil(t, req.Params(), string(k))
		assert.NoError(t, NewInputParser().ValidateRequest(req), "defaults must validate for %s", k)
	}
}

func TestWriteExample_RoundTrips(t *testing.T) {
	for _, k := range Kinds {
		t.Run(string(k), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteExample(&buf, k))
			assert.Contains(t, buf.String(), "# Example "+string(k))

			req, err := NewInputParser().Parse(buf.Bytes())
			require.NoError(t, err)
			want, err := ExampleRequest(k)
			require.NoError(t, err)
			assert.Equal(t, want, req)
		})
	}
}
