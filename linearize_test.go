package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWide builds the tree used in the package documentation: root 1 with
// children 2, 3, 4; 2 has children 5 and 6; 3 has child 7; 4 is a leaf.
func buildWide(t *testing.T) *Tree[text] {
	t.Helper()

	tree, err := NewWithRoot[text]("1")
	require.NoError(t, err)
	root := tree.RootID()

	n2, _ := tree.Append(root, "2")
	n3, _ := tree.Append(root, "3")
	_, err = tree.Append(root, "4")
	require.NoError(t, err)
	_, _ = tree.Append(n2, "5")
	_, _ = tree.Append(n2, "6")
	_, err = tree.Append(n3, "7")
	require.NoError(t, err)

	return tree
}

func TestLinearizeWorkedExample(t *testing.T) {
	tree := buildWide(t)

	want := []struct {
		value text
		end   bool
	}{
		{"1", false}, {"2", false}, {"5", false}, {end: true},
		{"6", false}, {end: true}, {end: true},
		{"3", false}, {"7", false}, {end: true}, {end: true},
		{"4", false}, {end: true}, {end: true},
	}

	flat := tree.linearize()
	require.Len(t, flat, len(want))
	for i, w := range want {
		assert.Equal(t, w.end, flat[i].end, "token %d", i)
		if !w.end {
			assert.Equal(t, w.value, flat[i].value, "token %d", i)
		}
	}
}

func TestTokenBalance(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Tree[text]
		nodes int
	}{
		{"empty", func(t *testing.T) *Tree[text] {
			tree, err := New[text]()
			require.NoError(t, err)
			return tree
		}, 0},
		{"single", func(t *testing.T) *Tree[text] {
			tree, err := NewWithRoot[text]("only")
			require.NoError(t, err)
			return tree
		}, 1},
		{"wide", buildWide, 7},
		{"chain", func(t *testing.T) *Tree[text] {
			tree, _ := NewWithRoot[text]("a")
			parent := tree.RootID()
			for _, v := range []text{"b", "c", "d"} {
				id, err := tree.Append(parent, v)
				require.NoError(t, err)
				parent = id
			}
			return tree
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := tt.build(t).linearize()

			values, ends, open := 0, 0, 0
			for _, tok := range flat {
				if tok.end {
					ends++
					open--
				} else {
					values++
					open++
				}
				// LIFO nesting: never more closers than openers.
				assert.GreaterOrEqual(t, open, 0)
			}
			assert.Equal(t, tt.nodes, values)
			assert.Equal(t, tt.nodes, ends)
			assert.Equal(t, 0, open)
			assert.Len(t, flat, 2*tt.nodes)
		})
	}
}

func TestDelinearizeInvertsLinearize(t *testing.T) {
	tree := buildWide(t)

	rebuilt, err := delinearize(tree.linearize())
	require.NoError(t, err)

	assert.Equal(t, tree.Len(), rebuilt.Len())
	assert.Equal(t, tree.String(), rebuilt.String())
}

func TestDelinearizeIgnoresStrayEndMarker(t *testing.T) {
	// A leading end marker has no open scope to close; it is ignored
	// rather than failed, since it cannot corrupt the partial tree.
	flat := []token[text]{
		{end: true},
		{value: "R"},
		{end: true},
	}

	tree, err := delinearize(flat)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, text("R"), tree.MustValue(tree.RootID()))
}

func TestDelinearizeRejectsSecondTopLevelValue(t *testing.T) {
	flat := []token[text]{
		{value: "R"},
		{end: true},
		{value: "S"},
		{end: true},
	}

	_, err := delinearize(flat)
	require.ErrorIs(t, err, ErrStructuralMismatch)
}

func TestStringRendering(t *testing.T) {
	empty, err := New[text]()
	require.NoError(t, err)
	assert.Equal(t, "[ ]", empty.String())

	tree, _ := NewWithRoot[text]("a")
	_, err = tree.Append(tree.RootID(), "b")
	require.NoError(t, err)
	assert.Equal(t, "[ a, b, X, X ]", tree.String())
}
