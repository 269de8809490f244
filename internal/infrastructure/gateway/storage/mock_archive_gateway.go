package storage

import (
	"context"
	"sync"
	"time"

	"github.com/mizusawah/hatlink/internal/application/port/output"
)

// MockArchiveGateway keeps archives in memory. Used by tests and by the
// mock archive backend for trying the wizard without durable storage.
type MockArchiveGateway struct {
	mu       sync.RWMutex
	archives map[string][]*output.ArchiveMetadata
	contents map[string][]byte
}

// NewMockArchiveGateway creates an empty in-memory archive
func NewMockArchiveGateway() *MockArchiveGateway {
	return &MockArchiveGateway{
		archives: make(map[string][]*output.ArchiveMetadata),
		contents: make(map[string][]byte),
	}
}

// ArchiveDocument stores the document in memory
func (g *MockArchiveGateway) ArchiveDocument(ctx context.Context, req output.ArchiveRequest) (*output.ArchiveMetadata, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	metadata := &output.ArchiveMetadata{
		Identity:    req.Identity,
		CID:         req.CID,
		StoragePath: "mock://archives/" + req.Identity + "/" + req.CID,
		Size:        int64(len(req.Content)),
		ArchivedAt:  time.Now(),
	}
	g.archives[req.Identity] = append(g.archives[req.Identity], metadata)
	g.contents[metadata.StoragePath] = append([]byte(nil), req.Content...)
	return metadata, nil
}

// ListArchives returns the entries stored for the identity
func (g *MockArchiveGateway) ListArchives(ctx context.Context, identity string) ([]*output.ArchiveMetadata, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*output.ArchiveMetadata(nil), g.archives[identity]...), nil
}
