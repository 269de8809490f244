package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mizusawah/hatlink/internal/app"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/infra/fs"
)

// SnapshotRepositoryImpl implements repository.SnapshotRepository with one
// JSON file per <kind>-<identity> key. Writes are atomic (temp + rename) so
// a record is durable before Save returns.
type SnapshotRepositoryImpl struct {
	fs  afero.Fs
	dir string
}

// NewSnapshotRepositoryImpl creates a file-based snapshot repository
// rooted at dir
func NewSnapshotRepositoryImpl(filesystem afero.Fs, dir string) *SnapshotRepositoryImpl {
	return &SnapshotRepositoryImpl{fs: filesystem, dir: dir}
}

func (r *SnapshotRepositoryImpl) path(identity model.Identity, kind model.StepKind) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s-%s.json", kind, identity))
}

// Save writes the record as JSON under its key
func (r *SnapshotRepositoryImpl) Save(ctx context.Context, identity model.Identity, kind model.StepKind, rec any) error {
	if identity.IsZero() {
		return model.ErrNotConnected
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid step kind: %s", kind)
	}
	if err := fs.WriteJSONAtomic(r.fs, r.path(identity, kind), rec); err != nil {
		return fmt.Errorf("save %s record: %w", kind, err)
	}
	return nil
}

// Load reads a record; a missing file is absent, a malformed one is
// treated as absent and warn-logged
func (r *SnapshotRepositoryImpl) Load(ctx context.Context, identity model.Identity, kind model.StepKind, out any) (bool, error) {
	b, err := afero.ReadFile(r.fs, r.path(identity, kind))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s record: %w", kind, err)
	}

	if err := json.Unmarshal(b, out); err != nil {
		app.GetLogger().Warn("malformed %s record for %s, treating as absent: %v", kind, identity, err)
		return false, nil
	}
	return true, nil
}

// Delete removes one record; absence is not an error
func (r *SnapshotRepositoryImpl) Delete(ctx context.Context, identity model.Identity, kind model.StepKind) error {
	err := r.fs.Remove(r.path(identity, kind))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s record: %w", kind, err)
	}
	return nil
}

// DeleteAll removes every record kind for the identity
func (r *SnapshotRepositoryImpl) DeleteAll(ctx context.Context, identity model.Identity) error {
	for _, kind := range model.StepKinds() {
		if err := r.Delete(ctx, identity, kind); err != nil {
			return err
		}
	}
	return nil
}
