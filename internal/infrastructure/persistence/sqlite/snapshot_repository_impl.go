package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mizusawah/hatlink/internal/app"
	"github.com/mizusawah/hatlink/internal/domain/model"
)

// SnapshotRepositoryImpl implements repository.SnapshotRepository with
// SQLite, one row per (identity, kind) key.
type SnapshotRepositoryImpl struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite-based snapshot repository
func NewSnapshotRepository(db *sql.DB) *SnapshotRepositoryImpl {
	return &SnapshotRepositoryImpl{db: db}
}

// Save upserts the record's JSON payload
func (r *SnapshotRepositoryImpl) Save(ctx context.Context, identity model.Identity, kind model.StepKind, rec any) error {
	if identity.IsZero() {
		return model.ErrNotConnected
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid step kind: %s", kind)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", kind, err)
	}

	query := `
		INSERT INTO snapshots (identity, kind, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(identity, kind) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, identity.String(), kind.String(), string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("save %s record: %w", kind, err)
	}
	return nil
}

// Load reads a record; a missing row is absent, a malformed payload is
// treated as absent and warn-logged
func (r *SnapshotRepositoryImpl) Load(ctx context.Context, identity model.Identity, kind model.StepKind, out any) (bool, error) {
	var payload string
	query := `SELECT payload FROM snapshots WHERE identity = ? AND kind = ?`
	err := r.db.QueryRowContext(ctx, query, identity.String(), kind.String()).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load %s record: %w", kind, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		app.GetLogger().Warn("malformed %s record for %s, treating as absent: %v", kind, identity, err)
		return false, nil
	}
	return true, nil
}

// Delete removes one record; absence is not an error
func (r *SnapshotRepositoryImpl) Delete(ctx context.Context, identity model.Identity, kind model.StepKind) error {
	query := `DELETE FROM snapshots WHERE identity = ? AND kind = ?`
	if _, err := r.db.ExecContext(ctx, query, identity.String(), kind.String()); err != nil {
		return fmt.Errorf("delete %s record: %w", kind, err)
	}
	return nil
}

// DeleteAll removes every record for the identity
func (r *SnapshotRepositoryImpl) DeleteAll(ctx context.Context, identity model.Identity) error {
	query := `DELETE FROM snapshots WHERE identity = ?`
	if _, err := r.db.ExecContext(ctx, query, identity.String()); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}
