package cli

import (
	"fmt"
	"strings"

	"hobbies-cli/internal/session"

	"github.com/spf13/cobra"
)

// treeView is the tree payload; its text form is an indented outline.
type treeView struct {
	Tree     session.Level `json:"tree"`
	Selected []string      `json:"selected"`
	PageSize int           `json:"pageSize"`
}

func (v treeView) Text() string {
	var b strings.Builder
	writeLevel(&b, v.Tree)
	if len(v.Selected) > 0 {
		fmt.Fprintf(&b, "\nselected: %s\n", strings.Join(v.Selected, ", "))
	}
	return b.String()
}

func writeLevel(b *strings.Builder, lvl session.Level) {
	for _, n := range lvl.Nodes {
		indent := strings.Repeat("  ", n.Depth-1)
		mark := "[ ]"
		if n.Selected {
			mark = "[x]"
		}
		line := indent + mark + " " + n.Name
		if n.Counts.HasBadge() {
			line += fmt.Sprintf(" (%d/%d)", n.Counts.Selected, n.Counts.Total)
		}
		if n.Depth == 1 {
			line += " " + string(n.Color)
		}
		b.WriteString(line + "\n")
		if n.Children != nil {
			writeLevel(b, *n.Children)
		}
	}
	if lvl.Hidden > 0 {
		depth := 0
		if len(lvl.Nodes) > 0 {
			depth = lvl.Nodes[0].Depth - 1
		}
		fmt.Fprintf(b, "%s... %d more (%s)\n", strings.Repeat("  ", depth), lvl.Hidden, lvl.Key)
	}
}

func newTreeCmd(app *App) *cobra.Command {
	var (
		depth  int
		all    bool
		expand []string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the taxonomy sorted by score, with colors and selection badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return writeErr(cmd, fmt.Errorf("invalid --depth: %d", depth))
			}
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()

			// Each --expand reveals one more page of the list at that path.
			for _, key := range expand {
				sess.Expand(key)
			}
			return writeOut(cmd, app, treeView{
				Tree:     sess.Tree(session.TreeOptions{All: all, MaxDepth: depth}),
				Selected: sess.OrderedSelection(),
				PageSize: sess.PageSize(),
			})
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "Only show this many levels (0 = all)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every sibling instead of paging")
	cmd.Flags().StringArrayVar(&expand, "expand", nil, "Reveal another page of the list at this path (repeatable; e.g. root, Music)")

	return cmd
}
