package db

import (
	"database/sql"
)

// MigrateUp creates the schema for analysis session history.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS analysis_sessions (
    id          BIGSERIAL PRIMARY KEY,
    operation   VARCHAR(32) NOT NULL,
    mode        VARCHAR(16) NOT NULL DEFAULT '',
    input_chars INTEGER NOT NULL DEFAULT 0,
    result      TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ListRecent orders by created_at DESC on every call
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON analysis_sessions(created_at DESC)`,
		// Stats groups by operation
		`CREATE INDEX IF NOT EXISTS idx_sessions_operation ON analysis_sessions(operation)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
