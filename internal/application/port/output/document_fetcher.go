package output

import "context"

// DocumentFetcher resolves a metadata document URI (ipfs, ipns, ar, http,
// https) and returns the decoded JSON object. Implementations rewrite
// content-addressed schemes to an ordered list of public gateway URLs and
// return the first successful fetch.
type DocumentFetcher interface {
	FetchJSON(ctx context.Context, uri string) (map[string]any, error)

	// ResolveURL returns the first fetchable transport URL for the URI,
	// or "" when the scheme is unknown
	ResolveURL(uri string) string
}
