package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/carloan/loan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, scenarioHeader, rows[0])
}

func TestCSVJournalRecordScenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	rec := prepayScenario(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, j.RecordScenario(rec))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, rec.ID, row[0])
	assert.Equal(t, "prepay", row[1])
	assert.Equal(t, "800000.000000", row[2])
	assert.Equal(t, "36", row[4])
	assert.Equal(t, "32", row[7])
	assert.Equal(t, "fixed rate, 2% penalty", row[11])
	assert.Equal(t, "2026-01-02T03:04:05Z", row[12])
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.csv")

	for i := 0; i < 2; i++ {
		j, err := NewCSV(path)
		require.NoError(t, err)
		require.NoError(t, j.RecordScenario(NewScenario(KindEMI, carLoan)))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, path)
	assert.Len(t, rows, 3, "one header, two scenarios")
}

func TestWriteScheduleCSV(t *testing.T) {
	t.Parallel()

	sch := loan.BuildSchedule(carLoan, loan.Yearly(16000))

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, sch))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 36)
	assert.Equal(t, scheduleHeader, rows[0])
	assert.Equal(t, []string{"1", "800000.00", "25069.09", "5333.33", "19735.76", "0.00", "780264.24"}, rows[1])
	assert.Equal(t, "16000.00", rows[12][5])
	assert.Equal(t, "0.00", rows[35][6])
}
