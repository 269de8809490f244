package model

import "errors"

// Domain errors surfaced by step actions. Each step action checks its
// preconditions before making any external call and fails fast with one of
// these; upstream failures are wrapped with %w instead.
var (
	// ErrNotConnected indicates no wallet identity is available
	ErrNotConnected = errors.New("wallet not connected")

	// ErrMissingPrerequisite indicates a required upstream record is absent
	ErrMissingPrerequisite = errors.New("missing prerequisite")

	// ErrInvalidInput indicates a required user-supplied field is empty or malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyLinked indicates the guild reference is already present in
	// the top hat metadata document
	ErrAlreadyLinked = errors.New("guild already exists in top hat details")

	// ErrUserRejected indicates the user declined a signature request
	ErrUserRejected = errors.New("signature request rejected by user")

	// ErrNotWearer indicates the caller's identity is not in the gating
	// entity's wearer list
	ErrNotWearer = errors.New("caller is not a wearer of the required hat")

	// ErrStepInFlight indicates the step action is already running
	ErrStepInFlight = errors.New("step action already in flight")
)
