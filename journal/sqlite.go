package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordScenario(s ScenarioRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO scenarios
		(id, kind, principal, annual_rate_percent, tenure_months, emi, input,
		 new_tenure_months, new_emi, interest_saved, net_savings, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, string(s.Kind), s.Principal, s.AnnualRatePercent, s.TenureMonths, s.EMI, s.Input,
		s.NewTenureMonths, s.NewEMI, s.InterestSaved, s.NetSavings, s.Note, s.CreatedAt,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
