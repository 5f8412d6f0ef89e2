package arbor

import (
	"fmt"
	"strings"
)

// endMarkerLine is the literal serialized form of an end-of-children token.
const endMarkerLine = "[X]"

// Serialize renders the tree as line-oriented text: one token per line,
// value lines as "[<n>]: <encoded value>" and end markers as "[X]". The
// sequence numbers count value lines from zero; they are positional
// bookkeeping, not node identities, and are not preserved across a
// round trip. An empty tree serializes to the empty string.
func (t *Tree[T]) Serialize() string {
	var b strings.Builder
	seq := 0
	for _, tok := range t.linearize() {
		if tok.end {
			b.WriteString(endMarkerLine)
			b.WriteByte('\n')
			continue
		}
		fmt.Fprintf(&b, "[%d]: %s\n", seq, tok.value.EncodeText())
		seq++
	}
	return b.String()
}

// Deserialize rebuilds a tree from serialized text. Decoding is strict:
// any malformed line, undecodable payload, or token-count imbalance aborts
// the whole operation and yields no tree, never a truncated one. An empty
// input yields an empty tree. Node identities are freshly assigned; the
// serialized sequence numbers are ignored.
func Deserialize[T Value[T]](text string) (*Tree[T], error) {
	var (
		flat   []token[T]
		values int
		ends   int
	)

	lines := strings.Split(text, "\n")
	// A trailing newline yields one final empty element, not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		lineNo := i + 1

		if line == endMarkerLine {
			ends++
			if ends > values {
				return nil, fmt.Errorf("%w: line %d: end marker closes nothing", ErrStructuralMismatch, lineNo)
			}
			flat = append(flat, token[T]{end: true})
			continue
		}

		payload, ok := splitValueLine(line)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, lineNo, line)
		}

		var zero T
		v, err := zero.DecodeText(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDecodeFailure, lineNo, err)
		}
		flat = append(flat, token[T]{value: v})
		values++
	}

	if values != ends {
		return nil, fmt.Errorf("%w: %d value lines but %d end markers", ErrStructuralMismatch, values, ends)
	}

	return delinearize(flat)
}

// splitValueLine extracts the payload from a "[<n>]: <payload>" line.
// The sequence number must be one or more decimal digits; everything after
// "]: " is the payload, which may be empty.
func splitValueLine(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' {
		return "", false
	}
	i := 1
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 1 || !strings.HasPrefix(line[i:], "]: ") {
		return "", false
	}
	return line[i+3:], true
}
