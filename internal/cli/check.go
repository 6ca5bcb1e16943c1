package cli

import (
	"fmt"
	"strings"

	"hobbies-cli/internal/taxonomy"

	"github.com/spf13/cobra"
)

type checkView struct {
	Source string `json:"source"`
	taxonomy.Stats
}

func (v checkView) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "source:     %s\n", v.Source)
	fmt.Fprintf(&b, "categories: %d\n", v.Categories)
	fmt.Fprintf(&b, "nodes:      %d (%d leaves)\n", v.Nodes, v.Leaves)
	fmt.Fprintf(&b, "max depth:  %d\n", v.MaxDepth)
	if len(v.Duplicates) == 0 {
		b.WriteString("duplicates: none\n")
	} else {
		fmt.Fprintf(&b, "duplicates: %s\n", strings.Join(v.Duplicates, ", "))
	}
	return b.String()
}

func newCheckCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Inspect the taxonomy (size, depth, duplicate names)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Taxonomy
			if path == "" {
				path = app.config().TaxonomyPath
			}
			// Duplicates are reported in the payload; don't also warn about them.
			forest, err := taxonomy.Load(path, nil)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("load taxonomy: %w", err))
			}
			source := path
			if source == "" {
				source = "built-in"
			}
			out := checkView{Source: source, Stats: taxonomy.Inspect(forest)}
			if err := writeOut(cmd, app, out); err != nil {
				return err
			}
			if strict && len(out.Duplicates) > 0 {
				return writeErr(cmd, fmt.Errorf("duplicate hobby names: %s", strings.Join(out.Duplicates, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when names are duplicated")

	return cmd
}
