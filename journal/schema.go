package journal

const Schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	principal REAL NOT NULL,
	annual_rate_percent REAL NOT NULL,
	tenure_months INTEGER NOT NULL,
	emi REAL NOT NULL,
	input REAL NOT NULL,
	new_tenure_months INTEGER NOT NULL,
	new_emi REAL NOT NULL,
	interest_saved REAL NOT NULL,
	net_savings REAL NOT NULL,
	note TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_created_at ON scenarios(created_at);
CREATE INDEX IF NOT EXISTS idx_scenarios_kind ON scenarios(kind);
`
