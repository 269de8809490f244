// Package mock provides in-memory gateway implementations for tests and
// for dry-run wiring where no external services are reachable.
package mock

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/hatid"
)

// GraphGateway serves hats from an in-memory map keyed by hex hat ID.
type GraphGateway struct {
	mu    sync.Mutex
	Hats  map[string]*output.GraphHat
	Calls int
}

// NewGraphGateway creates an empty mock graph
func NewGraphGateway() *GraphGateway {
	return &GraphGateway{Hats: make(map[string]*output.GraphHat)}
}

// AddHat registers a hat under its hex ID
func (g *GraphGateway) AddHat(hat *output.GraphHat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Hats[hat.ID] = hat
}

func (g *GraphGateway) GetHat(_ context.Context, hatID *big.Int, _ output.HatProps) (*output.GraphHat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls++
	hat, ok := g.Hats[hatid.ToHex(hatID)]
	if !ok {
		return nil, fmt.Errorf("hat %s not found", hatid.ToPretty(hatID))
	}
	return hat, nil
}

// DocumentFetcher serves documents from an in-memory map keyed by URI.
type DocumentFetcher struct {
	mu    sync.Mutex
	Docs  map[string]map[string]any
	Calls int
}

// NewDocumentFetcher creates an empty mock fetcher
func NewDocumentFetcher() *DocumentFetcher {
	return &DocumentFetcher{Docs: make(map[string]map[string]any)}
}

// AddDocument registers a document under its URI
func (f *DocumentFetcher) AddDocument(uri string, doc map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Docs[uri] = doc
}

func (f *DocumentFetcher) FetchJSON(_ context.Context, uri string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	doc, ok := f.Docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s not found", uri)
	}
	return doc, nil
}

func (f *DocumentFetcher) ResolveURL(uri string) string {
	return "https://ipfs.io/ipfs/" + uri
}

// GuildGateway records guild and reward creations.
type GuildGateway struct {
	mu sync.Mutex

	NextGuild   *output.CreatedGuild
	Err         error
	CreateCalls int
	RewardCalls int

	LastSpec    output.GuildSpec
	LastBinding output.PlatformBinding
	LastRoleID  string
}

func (g *GuildGateway) CreateGuild(_ context.Context, spec output.GuildSpec, _ output.SignerGateway) (*output.CreatedGuild, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.CreateCalls++
	g.LastSpec = spec
	if g.Err != nil {
		return nil, g.Err
	}
	if g.NextGuild != nil {
		return g.NextGuild, nil
	}
	created := &output.CreatedGuild{
		ID:          1,
		Name:        spec.Name,
		URLName:     spec.URLName,
		Description: spec.Description,
	}
	for i, role := range spec.Roles {
		created.Roles = append(created.Roles, output.CreatedRole{ID: int64(i + 1), Name: role.Name})
	}
	return created, nil
}

func (g *GuildGateway) CreateRoleReward(_ context.Context, _ string, _ int64,
	binding output.PlatformBinding, platformRoleID string, _ output.SignerGateway) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.RewardCalls++
	g.LastBinding = binding
	g.LastRoleID = platformRoleID
	return g.Err
}

// ChainGateway records detail changes instead of submitting transactions.
type ChainGateway struct {
	mu sync.Mutex

	Err         error
	Calls       int
	LastHatID   *big.Int
	LastDetails string
}

func (c *ChainGateway) ChangeHatDetails(_ context.Context, hatID *big.Int, newDetails string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	c.LastHatID = new(big.Int).Set(hatID)
	c.LastDetails = newDetails
	return c.Err
}

// MetadataPinner returns a fixed CID and records what was uploaded.
type MetadataPinner struct {
	mu sync.Mutex

	CID     string
	Err     error
	Calls   int
	LastDoc any
}

func (p *MetadataPinner) Upload(_ context.Context, _ string, doc any) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls++
	p.LastDoc = doc
	if p.Err != nil {
		return "", p.Err
	}
	if p.CID == "" {
		return "QmMockCid", nil
	}
	return p.CID, nil
}

// Signer is a wallet stub bound to a fixed identity.
type Signer struct {
	Identity model.Identity
	Err      error
}

// NewSigner creates a signer stub for the given address
func NewSigner(address string) (*Signer, error) {
	identity, err := model.NewIdentity(address)
	if err != nil {
		return nil, err
	}
	return &Signer{Identity: identity}, nil
}

func (s *Signer) Address() model.Identity {
	return s.Identity
}

func (s *Signer) SignMessage(_ context.Context, message string) ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return []byte("signed:" + message), nil
}

// Notifier captures surfaced messages.
type Notifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *Notifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, message)
}

func (n *Notifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, message)
}
