package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectScenario = `
	SELECT id, kind, principal, annual_rate_percent, tenure_months, emi, input,
	       new_tenure_months, new_emi, interest_saved, net_savings, note, created_at
	FROM scenarios`

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (ScenarioRecord, error) {
	var (
		rec  ScenarioRecord
		kind string
	)
	err := row.Scan(
		&rec.ID,
		&kind,
		&rec.Principal,
		&rec.AnnualRatePercent,
		&rec.TenureMonths,
		&rec.EMI,
		&rec.Input,
		&rec.NewTenureMonths,
		&rec.NewEMI,
		&rec.InterestSaved,
		&rec.NetSavings,
		&rec.Note,
		&rec.CreatedAt,
	)
	rec.Kind = Kind(kind)
	return rec, err
}

// GetScenario returns a single scenario by ID.
func (j *SQLite) GetScenario(id string) (ScenarioRecord, error) {
	row := j.db.QueryRow(selectScenario+` WHERE id = ?`, id)

	rec, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScenarioRecord{}, fmt.Errorf("scenario %q not found", id)
		}
		return ScenarioRecord{}, err
	}
	return rec, nil
}

// ListScenariosBetween returns scenarios created within [start, end).
func (j *SQLite) ListScenariosBetween(start, end time.Time) ([]ScenarioRecord, error) {
	return j.list(selectScenario+`
	WHERE created_at >= ? AND created_at < ?
	ORDER BY created_at ASC, id ASC`, start.UTC(), end.UTC())
}

// ListScenariosByKind returns the most recent scenarios of one kind, newest
// first. A limit of zero or less returns them all.
func (j *SQLite) ListScenariosByKind(kind Kind, limit int) ([]ScenarioRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	return j.list(selectScenario+`
	WHERE kind = ?
	ORDER BY id DESC
	LIMIT ?`, string(kind), limit)
}

func (j *SQLite) list(query string, args ...any) ([]ScenarioRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScenarioRecord
	for rows.Next() {
		rec, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
