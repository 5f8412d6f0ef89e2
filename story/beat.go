// Package story supplies the branching-narrative value type for arbor
// trees and the file persistence glue around the container's serialize
// and deserialize entry points.
package story

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Afessler1998/arbor"
)

// Beat is one moment of a branching story: the action that leads here and
// the outcome the reader sees on arrival.
type Beat struct {
	Action  string
	Outcome string
}

var _ arbor.Value[Beat] = Beat{}

// EncodeText renders the beat as `action: "..." outcome: "..."`. Fields
// are quoted with Go escaping, so embedded quotes and newlines survive the
// single-line wire form.
func (b Beat) EncodeText() string {
	return fmt.Sprintf("action: %s outcome: %s", strconv.Quote(b.Action), strconv.Quote(b.Outcome))
}

// DecodeText parses an encoded beat, rejecting anything that deviates from
// the wire form instead of guessing at field boundaries.
func (Beat) DecodeText(s string) (Beat, error) {
	rest, ok := strings.CutPrefix(s, "action: ")
	if !ok {
		return Beat{}, fmt.Errorf("missing action field in %q", s)
	}
	action, rest, err := cutQuoted(rest)
	if err != nil {
		return Beat{}, fmt.Errorf("action field: %w", err)
	}

	rest, ok = strings.CutPrefix(rest, " outcome: ")
	if !ok {
		return Beat{}, fmt.Errorf("missing outcome field in %q", s)
	}
	outcome, rest, err := cutQuoted(rest)
	if err != nil {
		return Beat{}, fmt.Errorf("outcome field: %w", err)
	}

	if rest != "" {
		return Beat{}, fmt.Errorf("trailing data after outcome: %q", rest)
	}
	return Beat{Action: action, Outcome: outcome}, nil
}

// Equal reports field-wise equality.
func (b Beat) Equal(other Beat) bool {
	return b == other
}

// cutQuoted consumes one Go-quoted string from the front of s.
func cutQuoted(s string) (value, rest string, err error) {
	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return "", "", fmt.Errorf("expected a quoted string at %q", s)
	}
	value, err = strconv.Unquote(quoted)
	if err != nil {
		return "", "", err
	}
	return value, s[len(quoted):], nil
}
