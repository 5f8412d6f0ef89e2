package arbor

import (
	"fmt"
	"strings"
)

// token is one element of a tree's flat sequence: either a node value or
// an end-of-children marker. The flat form is the intermediate between
// tree shape and the text format; it carries structure purely through
// token order.
type token[T Value[T]] struct {
	value T
	end   bool
}

// linearize flattens the tree into a pre-order sequence with explicit end
// markers. Every value token opens a scope and every end marker closes the
// most recently opened scope that is still open, so a tree of n nodes
// always yields exactly 2n tokens.
//
// The walk uses an explicit stack: popping a node emits its value, then
// pushes a nil sentinel (the pending end marker) followed by the node's
// children in reverse, so the children drain left-to-right before the
// sentinel surfaces.
func (t *Tree[T]) linearize() []token[T] {
	var flat []token[T]
	var stack []*Node[T]

	if t.root != nil {
		stack = append(stack, t.root)
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == nil {
			flat = append(flat, token[T]{end: true})
			continue
		}

		flat = append(flat, token[T]{value: n.value})
		stack = append(stack, nil)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return flat
}

// delinearize rebuilds a tree from a flat sequence, inverting linearize.
// A stack of parent identities tracks the currently open scope: a value
// token becomes the root (first) or the last child of the top parent, and
// then opens its own scope; an end marker closes the top scope. An end
// marker with nothing open is ignored rather than failed, since it cannot
// corrupt the tree built so far; the text codec bounds how many can occur.
func delinearize[T Value[T]](flat []token[T]) (*Tree[T], error) {
	t, err := New[T]()
	if err != nil {
		return nil, err
	}

	var parents []NodeID
	for _, tok := range flat {
		if tok.end {
			if len(parents) > 0 {
				parents = parents[:len(parents)-1]
			}
			continue
		}

		if t.root == nil {
			id, err := t.SetRoot(tok.value)
			if err != nil {
				return nil, err
			}
			parents = append(parents, id)
			continue
		}

		if len(parents) == 0 {
			// A second top-level value: the sequence closed the root's
			// scope and kept going, which no linearization produces.
			return nil, fmt.Errorf("%w: value token after the root scope closed", ErrStructuralMismatch)
		}

		id, err := t.Append(parents[len(parents)-1], tok.value)
		if err != nil {
			return nil, err
		}
		parents = append(parents, id)
	}
	return t, nil
}

// String renders the flat sequence for debugging, e.g. "[ a, b, X, X ]"
// where X marks an end-of-children token.
func (t *Tree[T]) String() string {
	flat := t.linearize()
	if len(flat) == 0 {
		return "[ ]"
	}

	var b strings.Builder
	b.WriteString("[ ")
	for i, tok := range flat {
		if i > 0 {
			b.WriteString(", ")
		}
		if tok.end {
			b.WriteByte('X')
		} else {
			b.WriteString(tok.value.EncodeText())
		}
	}
	b.WriteString(" ]")
	return b.String()
}
