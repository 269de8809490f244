// Package guild implements the guild-management gateway against the guild
// service REST API. Requests that mutate state carry a wallet-signed
// authentication envelope over the request payload.
package guild

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/mizusawah/hatlink/internal/application/port/output"
)

const requestTimeout = 30 * time.Second

// Client talks to the guild service.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a guild gateway for the given API base URL
func NewClient(baseURL string) *Client {
	return &Client{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// authParams is the metadata the service verifies the signature against
type authParams struct {
	Addr      string `json:"addr"`
	Method    int    `json:"method"`
	Nonce     string `json:"nonce"`
	Hash      string `json:"hash"`
	Timestamp string `json:"ts"`
}

// signedRequest is the wire envelope for authenticated calls
type signedRequest struct {
	Payload json.RawMessage `json:"payload"`
	Params  authParams      `json:"params"`
	Sig     string          `json:"sig"`
}

type guildPayload struct {
	Name             string        `json:"name"`
	URLName          string        `json:"urlName,omitempty"`
	Description      string        `json:"description,omitempty"`
	ShowMembers      bool          `json:"showMembers"`
	HideFromExplorer bool          `json:"hideFromExplorer"`
	Roles            []rolePayload `json:"roles"`
}

type rolePayload struct {
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Logic        string               `json:"logic"`
	Requirements []requirementPayload `json:"requirements"`
}

type requirementPayload struct {
	Type    string          `json:"type"`
	Chain   string          `json:"chain"`
	Address string          `json:"address"`
	Data    requirementData `json:"data"`
}

type requirementData struct {
	IDs []string `json:"ids"`
}

type guildResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URLName     string `json:"urlName"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Roles       []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"roles"`
}

// CreateGuild creates a guild with its token-gated roles.
func (c *Client) CreateGuild(ctx context.Context, spec output.GuildSpec, signer output.SignerGateway) (*output.CreatedGuild, error) {
	payload := guildPayload{
		Name:             spec.Name,
		URLName:          spec.URLName,
		Description:      spec.Description,
		ShowMembers:      spec.ShowMembers,
		HideFromExplorer: spec.HideFromExplorer,
	}
	for _, role := range spec.Roles {
		payload.Roles = append(payload.Roles, rolePayload{
			Name:        role.Name,
			Description: role.Description,
			Logic:       "AND",
			Requirements: []requirementPayload{{
				Type:    role.Requirement.Type,
				Chain:   role.Requirement.Chain,
				Address: role.Requirement.Address,
				Data:    requirementData{IDs: role.Requirement.IDs},
			}},
		})
	}

	var created guildResponse
	if err := c.postSigned(ctx, "/guilds", payload, signer, &created); err != nil {
		return nil, fmt.Errorf("create guild: %w", err)
	}

	result := &output.CreatedGuild{
		ID:          created.ID,
		Name:        created.Name,
		URLName:     created.URLName,
		Description: created.Description,
		ImageURL:    created.ImageURL,
	}
	for _, r := range created.Roles {
		result.Roles = append(result.Roles, output.CreatedRole{ID: r.ID, Name: r.Name})
	}
	return result, nil
}

// CreateRoleReward binds a guild role to a platform server role.
func (c *Client) CreateRoleReward(ctx context.Context, guildURLName string, guildRoleID int64,
	binding output.PlatformBinding, platformRoleID string, signer output.SignerGateway) error {
	payload := map[string]any{
		"platformName":    binding.PlatformName,
		"platformGuildId": binding.ServerID,
		"platformRoleId":  platformRoleID,
	}
	path := fmt.Sprintf("/guilds/%s/roles/%d/role-platforms", guildURLName, guildRoleID)
	if err := c.postSigned(ctx, path, payload, signer, nil); err != nil {
		return fmt.Errorf("create role reward: %w", err)
	}
	return nil
}

// postSigned wraps the payload in a signed envelope and posts it. The
// signature covers the payload hash, a fresh nonce and a timestamp so the
// service can reject replays.
func (c *Client) postSigned(ctx context.Context, path string, payload any, signer output.SignerGateway, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	params := authParams{
		Addr:      signer.Address().String(),
		Method:    1,
		Nonce:     uuid.NewString(),
		Hash:      crypto.Keccak256Hash(raw).Hex(),
		Timestamp: fmt.Sprintf("%d", time.Now().UnixMilli()),
	}
	sig, err := signer.SignMessage(ctx, signableMessage(params))
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	body, err := json.Marshal(signedRequest{
		Payload: raw,
		Params:  params,
		Sig:     hexutil.Encode(sig),
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func signableMessage(p authParams) string {
	return fmt.Sprintf("Please sign this message\n\nAddr: %s\nMethod: %d\nNonce: %s\nHash: %s\nTimestamp: %s",
		p.Addr, p.Method, p.Nonce, p.Hash, p.Timestamp)
}
