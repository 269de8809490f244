package sqlite

import (
	"database/sql"
	"fmt"
)

// Migrator manages the snapshot database schema
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// Migrate creates or updates the schema. Idempotent.
func (m *Migrator) Migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			identity   TEXT NOT NULL,
			kind       TEXT NOT NULL,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (identity, kind)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_identity ON snapshots(identity)`,
	}

	for _, stmt := range statements {
		if _, err := m.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
