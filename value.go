package arbor

import "fmt"

// Value is the capability contract a tree's value type must satisfy.
//
// EncodeText must produce a deterministic, single-line text form (no
// newlines), and DecodeText must invert it: decoding an encoding yields a
// value Equal to the original. The Go zero value of T serves as the
// default instance for the construction-time round-trip check, so T must
// be a value type whose methods accept it.
type Value[T any] interface {
	// EncodeText renders the value as a single line of text.
	EncodeText() string

	// DecodeText parses an encoded line back into a value. The receiver is
	// only a method anchor; decoding does not depend on its state.
	DecodeText(s string) (T, error)

	// Equal reports whether two values are interchangeable.
	Equal(other T) bool
}

// checkValue verifies that T round-trips a default instance through its
// text encoding. It gates tree construction: a failure here is a wrong
// value type, not bad runtime data.
func checkValue[T Value[T]]() error {
	var zero T

	decoded, err := zero.DecodeText(zero.EncodeText())
	if err != nil {
		return fmt.Errorf("%w: decoding an encoded default instance: %v", ErrIncompatibleValue, err)
	}
	if !decoded.Equal(zero) {
		return fmt.Errorf("%w: default instance does not survive an encode/decode round trip", ErrIncompatibleValue)
	}
	return nil
}
