// Package storage keeps durable copies of published metadata documents.
// The pinning service owns the canonical copy; the archive exists so an
// operator can audit what a wallet published and when.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/mizusawah/hatlink/internal/application/port/output"
)

// LocalArchiveGateway stores archives on the local filesystem.
// Directory structure: <baseDir>/archives/<identity>/<cid>/
//   - content: the document as uploaded
//   - metadata.json: archive bookkeeping
type LocalArchiveGateway struct {
	fs      afero.Fs
	baseDir string
}

// NewLocalArchiveGateway creates a filesystem-backed archive under baseDir
func NewLocalArchiveGateway(fs afero.Fs, baseDir string) (*LocalArchiveGateway, error) {
	if err := fs.MkdirAll(filepath.Join(baseDir, "archives"), 0755); err != nil {
		return nil, fmt.Errorf("create archives directory: %w", err)
	}
	return &LocalArchiveGateway{fs: fs, baseDir: baseDir}, nil
}

// ArchiveDocument writes the document and its metadata under the identity
func (g *LocalArchiveGateway) ArchiveDocument(ctx context.Context, req output.ArchiveRequest) (*output.ArchiveMetadata, error) {
	dir := filepath.Join(g.baseDir, "archives", req.Identity, req.CID)
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}

	contentPath := filepath.Join(dir, "content")
	if err := afero.WriteFile(g.fs, contentPath, req.Content, 0644); err != nil {
		return nil, fmt.Errorf("write archive content: %w", err)
	}

	metadata := output.ArchiveMetadata{
		Identity:    req.Identity,
		CID:         req.CID,
		StoragePath: contentPath,
		Size:        int64(len(req.Content)),
		ArchivedAt:  time.Now(),
	}
	metadataJSON, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal archive metadata: %w", err)
	}
	if err := afero.WriteFile(g.fs, filepath.Join(dir, "metadata.json"), metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("write archive metadata: %w", err)
	}

	return &metadata, nil
}

// ListArchives returns all archive entries recorded for the identity
func (g *LocalArchiveGateway) ListArchives(ctx context.Context, identity string) ([]*output.ArchiveMetadata, error) {
	identityDir := filepath.Join(g.baseDir, "archives", identity)

	exists, err := afero.DirExists(g.fs, identityDir)
	if err != nil {
		return nil, fmt.Errorf("stat archives directory: %w", err)
	}
	if !exists {
		return []*output.ArchiveMetadata{}, nil
	}

	entries, err := afero.ReadDir(g.fs, identityDir)
	if err != nil {
		return nil, fmt.Errorf("read archives directory: %w", err)
	}

	var list []*output.ArchiveMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metadataJSON, err := afero.ReadFile(g.fs, filepath.Join(identityDir, entry.Name(), "metadata.json"))
		if err != nil {
			// skip entries with missing metadata
			continue
		}
		var metadata output.ArchiveMetadata
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			continue
		}
		list = append(list, &metadata)
	}
	return list, nil
}
