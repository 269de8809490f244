package output

import (
	"context"
	"time"
)

// ArchiveRequest asks for a copy of an uploaded metadata document to be
// kept outside the mutable pinning service, keyed by the identity that
// produced it and the content address it was published under.
type ArchiveRequest struct {
	Identity string
	CID      string
	Content  []byte
	Metadata map[string]string
}

// ArchiveMetadata describes a stored archive entry
type ArchiveMetadata struct {
	Identity    string
	CID         string
	StoragePath string
	Size        int64
	ArchivedAt  time.Time
}

// DocumentArchiveGateway stores copies of published metadata documents.
// Supports local filesystem and cloud storage backends; archiving is
// best-effort bookkeeping and its failure must not fail the step that
// triggered it.
type DocumentArchiveGateway interface {
	ArchiveDocument(ctx context.Context, req ArchiveRequest) (*ArchiveMetadata, error)

	ListArchives(ctx context.Context, identity string) ([]*ArchiveMetadata, error)
}
