// Package metadata talks to the metadata pinning service that stores hat
// detail documents on IPFS and returns their content identifiers.
package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const uploadTimeout = 30 * time.Second

// PinnerClient uploads JSON documents to the pinning service.
type PinnerClient struct {
	client  *http.Client
	baseURL string
}

// NewPinnerClient creates a pinner client for the given service base URL
func NewPinnerClient(baseURL string) *PinnerClient {
	return &PinnerClient{
		client:  &http.Client{Timeout: uploadTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload pins the document under the given file name and returns the CID.
func (c *PinnerClient) Upload(ctx context.Context, name string, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	endpoint := fmt.Sprintf("%s/uploadMetadata?name=%s", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload metadata: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result struct {
		CID string `json:"cid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if result.CID == "" {
		return "", fmt.Errorf("upload metadata: empty cid in response")
	}
	return result.CID, nil
}
