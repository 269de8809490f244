package output

import "context"

// MetadataPinner publishes a JSON metadata document and returns its new
// content address.
type MetadataPinner interface {
	Upload(ctx context.Context, name string, doc any) (cid string, err error)
}
