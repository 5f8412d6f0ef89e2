package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Afessler1998/arbor"
	"github.com/Afessler1998/arbor/story"
)

var (
	outcomeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginTop(1)

	endStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	idStyle     = lipgloss.NewStyle().Faint(true)
	actionStyle = lipgloss.NewStyle().Bold(true)
	branchStyle = lipgloss.NewStyle().Faint(true)
)

// renderTree prints one beat per line with depth-matched branch glyphs.
func renderTree(tree *arbor.Tree[story.Beat]) string {
	root := tree.RootID()
	if root == arbor.NoNode {
		return "(empty story)\n"
	}

	var b strings.Builder
	renderSubtree(&b, tree, root, 0, true)
	return b.String()
}

func renderSubtree(b *strings.Builder, tree *arbor.Tree[story.Beat], id arbor.NodeID, depth int, last bool) {
	beat := tree.MustValue(id)

	if depth > 0 {
		glyph := "├─ "
		if last {
			glyph = "└─ "
		}
		indent := strings.Repeat("  ", depth-1)
		b.WriteString(branchStyle.Render(indent + glyph))
	}

	label := idStyle.Render(fmt.Sprintf("[%d]", id))
	if beat.Action != "" {
		label += " " + actionStyle.Render(beat.Action) + " →"
	}
	b.WriteString(label + " " + beat.Outcome + "\n")

	children, err := tree.Children(id)
	if err != nil {
		return
	}
	for i, c := range children {
		renderSubtree(b, tree, c, depth+1, i == len(children)-1)
	}
}
