package repository

import (
	"context"

	"github.com/mizusawah/hatlink/internal/domain/model"
)

// SnapshotRepository persists step records keyed by <kind>-<identity>.
//
// Contract: a missing key is reported as absent, not an error. A malformed
// stored value is self-healing: it is treated as absent and warn-logged,
// never surfaced to the caller. Save must be durable before it returns so
// that navigation re-evaluation always sees persisted state.
type SnapshotRepository interface {
	// Save serializes rec as JSON and stores it under (identity, kind)
	Save(ctx context.Context, identity model.Identity, kind model.StepKind, rec any) error

	// Load unmarshals the stored value into out. Returns false when the key
	// is absent or the stored value cannot be decoded.
	Load(ctx context.Context, identity model.Identity, kind model.StepKind, out any) (bool, error)

	// Delete removes a single record; deleting an absent key is not an error
	Delete(ctx context.Context, identity model.Identity, kind model.StepKind) error

	// DeleteAll removes every record for the identity
	DeleteAll(ctx context.Context, identity model.Identity) error
}
