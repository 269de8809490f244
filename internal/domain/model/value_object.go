package model

import (
	"errors"
	"strings"
)

// Identity represents the wallet address that owns a wizard session.
// All persisted state is partitioned by Identity; comparisons are
// case-insensitive so the value is normalized to lowercase on creation.
type Identity struct {
	value string
}

// NewIdentity creates an Identity from a wallet address string
func NewIdentity(address string) (Identity, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Identity{}, errors.New("identity cannot be empty")
	}
	return Identity{value: strings.ToLower(address)}, nil
}

// String returns the normalized address
func (i Identity) String() string {
	return i.value
}

// IsZero reports whether the identity is unset
func (i Identity) IsZero() bool {
	return i.value == ""
}

// Equals checks if two Identities refer to the same address
func (i Identity) Equals(other Identity) bool {
	return i.value == other.value
}

// StepKind identifies a wizard step and doubles as the persistence key kind
type StepKind string

const (
	StepKindHat    StepKind = "hat"
	StepKindGuild  StepKind = "guild"
	StepKindBot    StepKind = "bot"
	StepKindReward StepKind = "reward"
)

// String returns the string representation
func (k StepKind) String() string {
	return string(k)
}

// IsValid validates the step kind
func (k StepKind) IsValid() bool {
	switch k {
	case StepKindHat, StepKindGuild, StepKindBot, StepKindReward:
		return true
	default:
		return false
	}
}

// StepKinds lists all step kinds in wizard order
func StepKinds() []StepKind {
	return []StepKind{StepKindHat, StepKindGuild, StepKindBot, StepKindReward}
}

// OwnershipTarget selects which entity's wearer list gates the hat search
// step: the tree's top hat (default) or the selected hat itself.
type OwnershipTarget string

const (
	OwnershipTargetTopHat OwnershipTarget = "tophat"
	OwnershipTargetSelf   OwnershipTarget = "self"
)

// IsValid validates the ownership target
func (t OwnershipTarget) IsValid() bool {
	return t == OwnershipTargetTopHat || t == OwnershipTargetSelf
}
