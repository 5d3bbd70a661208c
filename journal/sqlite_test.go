package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/carloan/loan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carLoan = loan.Terms{Principal: 800000, AnnualRatePercent: 8, TenureMonths: 36}

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func prepayScenario(createdAt time.Time) ScenarioRecord {
	rec := NewScenario(KindPrepay, carLoan)
	rec.CreatedAt = createdAt
	rec.Input = 100000
	rec.NewTenureMonths = 32
	rec.InterestSaved = 276.37
	rec.NetSavings = -1723.63
	rec.Note = "fixed rate, 2% penalty"
	return rec
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='scenarios'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "scenarios", name)
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := prepayScenario(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, j.RecordScenario(rec))

	got, err := j.GetScenario(rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, KindPrepay, got.Kind)
	assert.InDelta(t, rec.Principal, got.Principal, 1e-6)
	assert.InDelta(t, rec.AnnualRatePercent, got.AnnualRatePercent, 1e-9)
	assert.Equal(t, 36, got.TenureMonths)
	assert.InDelta(t, rec.EMI, got.EMI, 1e-6)
	assert.InDelta(t, rec.Input, got.Input, 1e-6)
	assert.Equal(t, 32, got.NewTenureMonths)
	assert.InDelta(t, rec.InterestSaved, got.InterestSaved, 1e-6)
	assert.InDelta(t, rec.NetSavings, got.NetSavings, 1e-6)
	assert.Equal(t, rec.Note, got.Note)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetScenario("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "nope" not found`)
}

func TestSQLiteDuplicateID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := prepayScenario(time.Now().UTC())
	require.NoError(t, j.RecordScenario(rec))
	assert.Error(t, j.RecordScenario(rec))
}

func TestSQLiteListScenariosBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	before := prepayScenario(day.Add(-time.Minute))
	morning := prepayScenario(day.Add(9 * time.Hour))
	evening := prepayScenario(day.Add(21 * time.Hour))
	after := prepayScenario(day.Add(24 * time.Hour))

	for _, rec := range []ScenarioRecord{evening, before, after, morning} {
		require.NoError(t, j.RecordScenario(rec))
	}

	got, err := j.ListScenariosBetween(day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, morning.ID, got[0].ID)
	assert.Equal(t, evening.ID, got[1].ID)
}

func TestSQLiteListScenariosByKind(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	var prepays []ScenarioRecord
	for i := 0; i < 3; i++ {
		rec := prepayScenario(time.Now().UTC())
		prepays = append(prepays, rec)
		require.NoError(t, j.RecordScenario(rec))
	}
	require.NoError(t, j.RecordScenario(NewScenario(KindEMI, carLoan)))

	got, err := j.ListScenariosByKind(KindPrepay, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, prepays[2].ID, got[0].ID, "newest first")

	got, err = j.ListScenariosByKind(KindPrepay, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = j.ListScenariosByKind(KindStepUp, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var j Journal = Nop{}
	assert.NoError(t, j.RecordScenario(NewScenario(KindEMI, carLoan)))
	assert.NoError(t, j.Close())
}
