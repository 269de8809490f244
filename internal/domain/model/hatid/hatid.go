package hatid

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Hat IDs are uint256 values laid out as a 32-bit tree domain in the top
// bits followed by fourteen 16-bit branch levels. The top hat of a tree is
// the ID whose branch levels are all zero.
const (
	treeDomainBits  = 32
	levelBits       = 16
	totalBits       = 256
	firstLevelShift = totalBits - treeDomainBits
)

// FromDecimal parses a decimal hat ID string
func FromDecimal(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("hat ID cannot be empty")
	}
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() < 0 || id.BitLen() > totalBits {
		return nil, fmt.Errorf("invalid hat ID: %s", s)
	}
	return id, nil
}

// FromHex parses a 0x-prefixed hex hat ID as returned by the subgraph
func FromHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, errors.New("hat ID cannot be empty")
	}
	id, ok := new(big.Int).SetString(s, 16)
	if !ok || id.BitLen() > totalBits {
		return nil, fmt.Errorf("invalid hex hat ID: %s", s)
	}
	return id, nil
}

// ToHex renders a hat ID in the 0x-prefixed 64-digit form the subgraph
// uses as entity key
func ToHex(id *big.Int) string {
	return fmt.Sprintf("0x%064x", id)
}

// TreeDomain extracts the 32-bit tree domain from a hat ID
func TreeDomain(id *big.Int) uint32 {
	domain := new(big.Int).Rsh(id, firstLevelShift)
	return uint32(domain.Uint64())
}

// TreeDomainFromHex parses a tree ID as returned by the subgraph
// (a 4-byte hex string) into its decimal domain value
func TreeDomainFromHex(s string) (uint32, error) {
	id, err := FromHex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid tree ID: %w", err)
	}
	if id.BitLen() > treeDomainBits {
		return 0, fmt.Errorf("tree ID out of range: %s", s)
	}
	return uint32(id.Uint64()), nil
}

// TopHat returns the top hat ID for a tree domain
func TopHat(domain uint32) *big.Int {
	return new(big.Int).Lsh(big.NewInt(int64(domain)), firstLevelShift)
}

// ToPretty renders a hat ID in its dotted display form ("1.2.3"):
// the tree domain followed by each non-zero 16-bit branch level.
func ToPretty(id *big.Int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", TreeDomain(id))

	mask := big.NewInt((1 << levelBits) - 1)
	for shift := firstLevelShift - levelBits; shift >= 0; shift -= levelBits {
		level := new(big.Int).Rsh(id, uint(shift))
		level.And(level, mask)
		if level.Sign() == 0 {
			break
		}
		fmt.Fprintf(&sb, ".%d", level.Uint64())
	}
	return sb.String()
}

// IsTopHat reports whether the ID has no branch levels set
func IsTopHat(id *big.Int) bool {
	return TopHat(TreeDomain(id)).Cmp(id) == 0
}
