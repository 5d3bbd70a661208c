package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEMI(t *testing.T) {
	out, _, err := run(t, "emi", "-p", "800000", "-r", "8", "-t", "36")
	require.NoError(t, err)

	assert.Contains(t, out, "₹8,00,000")
	assert.Contains(t, out, "3 years")
	assert.Contains(t, out, "₹25,069")
	assert.Contains(t, out, "₹9,02,487")
	assert.Contains(t, out, "₹1,02,487")
}

func TestEMIYearsAndPrice(t *testing.T) {
	out, _, err := run(t, "emi", "--price", "1000000", "--down", "20", "-r", "8", "--years", "3", "--json")
	require.NoError(t, err)

	var got emiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 800000, got.Terms.Principal, 1e-6)
	assert.Equal(t, 36, got.Terms.TenureMonths)
	assert.InDelta(t, 25069.0923691449, got.EMI, 1e-6)
}

func TestEMIInvalidInputs(t *testing.T) {
	out, _, err := run(t, "emi", "-p", "-5", "--json")
	require.NoError(t, err)

	var got emiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Zero(t, got.EMI)
	assert.Zero(t, got.TotalInterest)

	_, _, err = run(t, "emi", "-p", "-5", "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, loan.ErrInvalidLoanInputs)
	assert.Contains(t, err.Error(), "principal")
}

func TestEMIExtremeTenure(t *testing.T) {
	var out string
	require.NotPanics(t, func() {
		var err error
		out, _, err = run(t, "emi", "-p", "100000", "-r", "8", "-t", "1000000")
		require.NoError(t, err)
	})
	assert.Contains(t, out, "₹667")
	assert.NotContains(t, out, "NaN")

	// The EMI only covers interest, so even a ₹1 prepayment makes the loan
	// amortize.
	out, _, err := run(t, "prepay", "--amount", "1", "-p", "100000", "-r", "8", "-t", "1000000", "--json")
	require.NoError(t, err)

	var got loan.PrepaymentResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1733, got.NewTenureMonths, 1)
	assert.Greater(t, got.InterestSaved, 0.0)
}

func TestEMITinyRate(t *testing.T) {
	out, _, err := run(t, "emi", "-p", "1000", "-r", "1e-14", "-t", "12", "--json")
	require.NoError(t, err)

	var got emiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1000.0/12, got.EMI, 1e-9)
}

func TestPrepayJSON(t *testing.T) {
	out, _, err := run(t, "prepay", "--amount", "100000", "--json")
	require.NoError(t, err)

	var got loan.PrepaymentResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 32, got.NewTenureMonths)
	assert.Equal(t, 4, got.MonthsReduced)
	assert.InDelta(t, 276.36947657959536, got.InterestSaved, 1e-6)
	assert.Zero(t, got.Penalty)
}

func TestPrepayFixedPenalty(t *testing.T) {
	out, _, err := run(t, "prepay", "--amount", "100000", "--rate-type", "fixed", "--penalty", "2", "--json")
	require.NoError(t, err)

	var got loan.PrepaymentResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 2000, got.Penalty, 1e-9)
	assert.InDelta(t, got.InterestSaved-2000, got.NetSavings, 1e-9)
}

func TestPrepayReduceEMI(t *testing.T) {
	out, _, err := run(t, "prepay", "--amount", "100000", "--mode", "emi", "--json")
	require.NoError(t, err)

	var got loan.ReduceEMIResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 21935.455823001786, got.NewEMI, 1e-6)
	assert.InDelta(t, 12810.915661152103, got.InterestSaved, 1e-6)
}

func TestPrepayErrors(t *testing.T) {
	_, _, err := run(t, "prepay")
	require.Error(t, err, "amount is required")

	_, _, err = run(t, "prepay", "--amount", "1000", "--mode", "both")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--mode")

	_, _, err = run(t, "prepay", "--amount", "1000", "--rate-type", "variable")
	require.Error(t, err)

	_, _, err = run(t, "prepay", "--amount", "1000", "--after", "36", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--after")
}

func TestStepUp(t *testing.T) {
	out, _, err := run(t, "stepup", "--emi", "30000", "--json")
	require.NoError(t, err)

	var got loan.StepUpResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 30, got.NewTenureMonths)
	assert.Equal(t, 6, got.MonthsReduced)
	assert.InDelta(t, 2487.3252892164746, got.InterestSaved, 1e-6)

	_, _, err = run(t, "stepup")
	require.Error(t, err, "one of --emi or --percent is required")

	_, _, err = run(t, "stepup", "--emi", "20000", "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, loan.ErrInvalidLoanInputs)
}

func TestShorten(t *testing.T) {
	out, _, err := run(t, "shorten", "--months", "24", "--json")
	require.NoError(t, err)

	var got loan.ShorterTenureResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 24, got.NewTenureMonths)
	assert.InDelta(t, 36181.83316494767, got.NewEMI, 1e-6)
	assert.InDelta(t, 34123.32933047239, got.InterestSaved, 1e-6)
}

func TestScheduleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	out, _, err := run(t, "schedule", "--prepay", "16000", "--every", "12", "--csv", path, "--summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Months saved")
	assert.NotContains(t, out, "Opening")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 36, "header plus 35 installments")
	assert.Equal(t, "1,800000.00,25069.09,5333.33,19735.76,0.00,780264.24", lines[1])
}

func TestScheduleCSVStdout(t *testing.T) {
	out, _, err := run(t, "schedule", "--prepay", "0", "--csv", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 37)
}

func TestAfford(t *testing.T) {
	out, _, err := run(t, "afford", "--income", "100000", "--existing", "10000", "--json")
	require.NoError(t, err)

	var got affordOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, loan.BandStretched, got.Result.Band)
	assert.InDelta(t, 0.35069, got.Result.FOIR, 1e-4)
	assert.InDelta(t, loan.MaxPrincipal(40000, 8, 36), got.MaxPrincipal, 1e-6)
}

func TestSQLiteJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "carloan.sqlite")

	_, stderr, err := run(t, "prepay", "--amount", "100000", "--journal", "sqlite", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stderr, "scenario journaled")

	_, _, err = run(t, "emi", "--journal", "sqlite", "--db", db)
	require.NoError(t, err)

	j, err := journal.NewSQLite(db)
	require.NoError(t, err)
	recs, err := j.ListScenariosByKind(journal.KindPrepay, 0)
	require.NoError(t, err)
	require.NoError(t, j.Close())
	require.Len(t, recs, 1)
	assert.Equal(t, 32, recs[0].NewTenureMonths)
	assert.InDelta(t, 100000, recs[0].Input, 1e-9)

	out, _, err := run(t, "journal", "list", "--kind", "prepay", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, recs[0].ID)

	out, _, err = run(t, "journal", "show", recs[0].ID, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, recs[0].ID)

	out, _, err = run(t, "journal", "today", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, recs[0].ID)

	_, _, err = run(t, "journal", "show", "nope", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCSVJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.csv")

	for i := 0; i < 2; i++ {
		_, _, err := run(t, "shorten", "--months", "24", "--journal", "csv", "--journal-csv", path)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3, "one header, two appended rows")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carloan.yaml")

	out, _, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, _, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "₹8,00,000")

	out, _, err = run(t, "emi", "-c", path, "-t", "60", "--json")
	require.NoError(t, err)
	var got emiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 60, got.Terms.TenureMonths)
	assert.InDelta(t, 800000, got.Terms.Principal, 1e-9)
}

func TestConfigLoadError(t *testing.T) {
	_, _, err := run(t, "emi", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestDayBounds(t *testing.T) {
	start, end, err := dayBounds(time.UTC, "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	_, _, err = dayBounds(time.UTC, "15/01/2026")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "carloan version "+version+"\n", out)
}
