package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mizusawah/hatlink/internal/app"
)

// metadataSchema describes the hat metadata document shape: a versioned
// envelope with a data object carrying the display fields.
const metadataSchema = `{
	"type": "object",
	"required": ["data"],
	"properties": {
		"type": {"type": "string"},
		"data": {
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"description": {"type": "string"},
				"guilds": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`

const fetchTimeout = 15 * time.Second

// Fetcher resolves metadata document URIs over http, trying each rewritten
// gateway candidate in order and validating the decoded document against
// the metadata schema.
type Fetcher struct {
	client   *http.Client
	gateways []string
	schema   *jsonschema.Schema
}

// NewFetcher creates a document fetcher using the given gateway list
func NewFetcher(gateways []string) (*Fetcher, error) {
	schema, err := jsonschema.CompileString("hat-metadata.json", metadataSchema)
	if err != nil {
		return nil, fmt.Errorf("compile metadata schema: %w", err)
	}
	return &Fetcher{
		client:   &http.Client{Timeout: fetchTimeout},
		gateways: gateways,
		schema:   schema,
	}, nil
}

// ResolveURL returns the first fetchable candidate for the URI
func (f *Fetcher) ResolveURL(uri string) string {
	candidates := URIToHTTP(uri, f.gateways)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// FetchJSON resolves the URI and returns the first candidate that yields a
// valid metadata document.
func (f *Fetcher) FetchJSON(ctx context.Context, uri string) (map[string]any, error) {
	candidates := URIToHTTP(uri, f.gateways)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("unsupported metadata URI: %s", uri)
	}

	var lastErr error
	for _, url := range candidates {
		doc, err := f.fetchOne(ctx, url)
		if err != nil {
			lastErr = err
			app.GetLogger().Debug("fetch %s failed: %v", url, err)
			continue
		}
		return doc, nil
	}
	return nil, fmt.Errorf("fetch %s: %w", uri, lastErr)
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("empty response")
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := f.schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("invalid metadata document: %w", err)
	}

	doc, ok := decoded.(map[string]any)
	if !ok {
		return nil, errors.New("metadata document is not an object")
	}
	return doc, nil
}
