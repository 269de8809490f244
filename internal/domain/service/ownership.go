package service

import (
	"fmt"
	"strings"

	"github.com/mizusawah/hatlink/internal/domain/model"
)

// OwnershipGate verifies that an identity wears the configured gating
// entity's hat before the search step may record a result. The gating
// entity is a configuration choice: the tree's top hat or the selected hat
// itself.
type OwnershipGate struct {
	target model.OwnershipTarget
}

// NewOwnershipGate creates a gate for the given target entity
func NewOwnershipGate(target model.OwnershipTarget) (*OwnershipGate, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("invalid ownership target: %s", target)
	}
	return &OwnershipGate{target: target}, nil
}

// Target returns the configured gating entity
func (g *OwnershipGate) Target() model.OwnershipTarget {
	return g.target
}

// Verify checks the identity against the wearer list of the gating entity.
// Addresses are compared case-insensitively.
func (g *OwnershipGate) Verify(identity model.Identity, hatWearers, topHatWearers []string) error {
	wearers := topHatWearers
	if g.target == model.OwnershipTargetSelf {
		wearers = hatWearers
	}

	for _, w := range wearers {
		if strings.EqualFold(w, identity.String()) {
			return nil
		}
	}

	if g.target == model.OwnershipTargetSelf {
		return fmt.Errorf("%w: you are not a wearer of this hat", model.ErrNotWearer)
	}
	return fmt.Errorf("%w: you are not a wearer of this tree's top hat", model.ErrNotWearer)
}
