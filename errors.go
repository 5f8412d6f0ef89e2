// Package arbor provides a generic N-ary tree container with identity-based
// node access, ownership-safe structural mutation, and a lossless
// line-oriented text serialization format.
package arbor

import "errors"

// Mutation errors
var (
	// ErrAlreadyInitialized indicates an attempt to set a root when one exists.
	ErrAlreadyInitialized = errors.New("root has already been set")

	// ErrNoSuchNode indicates that an identity is not present in the tree.
	ErrNoSuchNode = errors.New("no such node")

	// ErrIllegalOperation indicates a structurally forbidden mutation,
	// such as removing the root.
	ErrIllegalOperation = errors.New("illegal operation")
)

// Deserialization errors
var (
	// ErrMalformedInput indicates a line that matches neither accepted shape.
	ErrMalformedInput = errors.New("malformed input line")

	// ErrDecodeFailure indicates that a value line's payload could not be
	// decoded into the value type.
	ErrDecodeFailure = errors.New("value decode failed")

	// ErrStructuralMismatch indicates that end-marker and value counts
	// disagree, or an end marker appears before any value it could close.
	ErrStructuralMismatch = errors.New("structural mismatch")
)

// Value contract errors
var (
	// ErrIncompatibleValue indicates that the value type failed the one-time
	// encode/decode/equality round-trip check at tree construction.
	ErrIncompatibleValue = errors.New("incompatible value type")
)
