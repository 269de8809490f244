package output

import (
	"context"
	"math/big"
)

// ChainGateway submits the single on-chain mutation the wizard needs:
// pointing a hat's details at a new metadata document. The call is opaque
// to the controller; implementations wait for inclusion and report failure
// if the transaction did not succeed.
type ChainGateway interface {
	ChangeHatDetails(ctx context.Context, hatID *big.Int, newDetails string) error
}
