package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/tree"

	"github.com/smarted/studykit/internal/notes"
	"github.com/smarted/studykit/internal/ui/theme"
)

// printMindMap draws n as a tree rooted at its topic.
func printMindMap(w io.Writer, n notes.Node) {
	t := tree.Root(n.Topic).
		RootStyle(theme.Heading).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(theme.Border).PaddingRight(1)).
		ItemStyle(theme.Body)
	addBranches(t, n.Children)
	fmt.Fprintln(w, t.String())
}

// addBranches attaches children to t. Subtrees share the root's renderer so
// the styling carries down every level.
func addBranches(t *tree.Tree, children []notes.Node) {
	for _, c := range children {
		if len(c.Children) == 0 {
			t.Child(c.Topic)
			continue
		}
		sub := tree.Root(c.Topic)
		addBranches(sub, c.Children)
		t.Child(sub)
	}
}
