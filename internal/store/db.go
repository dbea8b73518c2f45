package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and enables foreign keys.
// Creates the snapshot schema automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kpi_records (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	project TEXT NOT NULL,
	owner TEXT NOT NULL,
	goal TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	measurement TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	progress INTEGER NOT NULL,
	target_value REAL NOT NULL,
	actual_value REAL NOT NULL,
	last_updated TEXT NOT NULL,
	health_score REAL NOT NULL DEFAULT 0,
	risk_score REAL NOT NULL DEFAULT 0,
	risk_level TEXT NOT NULL DEFAULT '',
	completion_pct REAL NOT NULL DEFAULT 0,
	days_since_update INTEGER NOT NULL DEFAULT 0,
	update_status TEXT NOT NULL DEFAULT '',
	trend TEXT NOT NULL DEFAULT '',
	priority_score REAL NOT NULL DEFAULT 0,
	predicted_completion TEXT,
	risk_factors TEXT NOT NULL DEFAULT '',
	risk_trend TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_kpi_records_position ON kpi_records(position);
CREATE INDEX IF NOT EXISTS idx_kpi_records_project ON kpi_records(project);
`

// Migrate creates the snapshot tables when they do not exist yet.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
