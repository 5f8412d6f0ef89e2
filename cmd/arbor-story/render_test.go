package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afessler1998/arbor"
	"github.com/Afessler1998/arbor/story"
)

func TestRenderTreeEmpty(t *testing.T) {
	tree, err := arbor.New[story.Beat]()
	require.NoError(t, err)

	assert.Equal(t, "(empty story)\n", renderTree(tree))
}

func TestRenderTreeGlyphs(t *testing.T) {
	tree, err := arbor.NewWithRoot(story.Beat{Outcome: "Start."})
	require.NoError(t, err)
	root := tree.RootID()

	x, _ := tree.Append(root, story.Beat{Action: "x", Outcome: "X."})
	_, _ = tree.Append(root, story.Beat{Action: "y", Outcome: "Y."})
	_, _ = tree.Append(root, story.Beat{Action: "z", Outcome: "Z."})
	_, err = tree.Append(x, story.Beat{Action: "deeper", Outcome: "D."})
	require.NoError(t, err)

	out := renderTree(tree)

	// x and y are followed by siblings; z and x's only child close their
	// sibling runs.
	assert.Equal(t, 2, strings.Count(out, "├─"))
	assert.Equal(t, 2, strings.Count(out, "└─"))

	// One line per beat, root unindented.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "[1]")
}
