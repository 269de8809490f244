package output

import (
	"context"
	"math/big"
)

// HatProps selects which hat fields the graph query should resolve
type HatProps struct {
	Tree     bool
	Details  bool
	ImageURI bool
	Wearers  bool
}

// GraphHat is the raw hierarchical ownership data returned by the graph
// service for one hat. IDs are hex-encoded as stored by the service;
// Details and ImageURI are metadata document URIs (typically ipfs://).
type GraphHat struct {
	ID       string
	Details  string
	ImageURI string
	TreeID   string
	Wearers  []string
}

// HatGraphGateway queries the ownership graph service for hat entities
type HatGraphGateway interface {
	GetHat(ctx context.Context, hatID *big.Int, props HatProps) (*GraphHat, error)
}
