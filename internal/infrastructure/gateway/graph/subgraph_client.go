// Package graph implements the hat ownership graph gateway on top of the
// protocol subgraph's GraphQL endpoint.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model/hatid"
)

const queryTimeout = 20 * time.Second

// SubgraphClient queries the protocol subgraph for hat entities.
type SubgraphClient struct {
	client   *http.Client
	endpoint string
}

// NewSubgraphClient creates a graph gateway for the given GraphQL endpoint
func NewSubgraphClient(endpoint string) *SubgraphClient {
	return &SubgraphClient{
		client:   &http.Client{Timeout: queryTimeout},
		endpoint: endpoint,
	}
}

type graphRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphError struct {
	Message string `json:"message"`
}

type hatEntity struct {
	ID       string `json:"id"`
	Details  string `json:"details"`
	ImageURI string `json:"imageUri"`
	Tree     *struct {
		ID string `json:"id"`
	} `json:"tree"`
	Wearers []struct {
		ID string `json:"id"`
	} `json:"wearers"`
}

// GetHat fetches one hat by ID, resolving only the requested fields.
func (c *SubgraphClient) GetHat(ctx context.Context, hatID *big.Int, props output.HatProps) (*output.GraphHat, error) {
	query := buildHatQuery(props)
	payload, err := json.Marshal(graphRequest{
		Query:     query,
		Variables: map[string]any{"id": hatid.ToHex(hatID)},
	})
	if err != nil {
		return nil, fmt.Errorf("encode graph query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query graph: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query graph: status %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Hat *hatEntity `json:"hat"`
		} `json:"data"`
		Errors []graphError `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode graph response: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("query graph: %s", result.Errors[0].Message)
	}
	if result.Data.Hat == nil {
		return nil, fmt.Errorf("hat %s not found", hatid.ToPretty(hatID))
	}

	hat := &output.GraphHat{
		ID:       result.Data.Hat.ID,
		Details:  result.Data.Hat.Details,
		ImageURI: result.Data.Hat.ImageURI,
	}
	if result.Data.Hat.Tree != nil {
		hat.TreeID = result.Data.Hat.Tree.ID
	}
	for _, w := range result.Data.Hat.Wearers {
		hat.Wearers = append(hat.Wearers, w.ID)
	}
	return hat, nil
}

func buildHatQuery(props output.HatProps) string {
	var fields strings.Builder
	fields.WriteString("id")
	if props.Details {
		fields.WriteString(" details")
	}
	if props.ImageURI {
		fields.WriteString(" imageUri")
	}
	if props.Tree {
		fields.WriteString(" tree { id }")
	}
	if props.Wearers {
		fields.WriteString(" wearers { id }")
	}
	return fmt.Sprintf("query Hat($id: ID!) { hat(id: $id) { %s } }", fields.String())
}
