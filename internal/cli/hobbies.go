package cli

import (
	"fmt"
	"strings"

	"hobbies-cli/internal/palette"
	"hobbies-cli/internal/session"

	"github.com/spf13/cobra"
)

// suggestLimit caps "did you mean" hints for empty searches.
const suggestLimit = 5

func newFlattenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten",
		Short: "List every hobby name in tree order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()
			return writeOut(cmd, app, sess.Flatten())
		},
	}
}

type searchView struct {
	Query       string               `json:"query"`
	Results     []session.ResultView `json:"results"`
	Suggestions []string             `json:"suggestions"`
}

func (v searchView) Text() string {
	if len(v.Results) == 0 {
		if len(v.Suggestions) == 0 {
			return "no matches"
		}
		return "no matches; did you mean: " + strings.Join(v.Suggestions, ", ")
	}
	var b strings.Builder
	for _, r := range v.Results {
		mark := "[ ]"
		if r.Selected {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, r.Name)
	}
	return b.String()
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find hobbies at any depth whose name contains the query (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()

			sess.SetQuery(args[0])
			out := searchView{
				Query:       sess.Query(),
				Results:     sess.ResultViews(),
				Suggestions: []string{},
			}
			if !sess.HasDropdown() {
				out.Suggestions = sess.Suggest(args[0], suggestLimit)
			}
			return writeOut(cmd, app, out)
		},
	}
}

type toggledView struct {
	Toggled  []toggleResult `json:"toggled"`
	Selected []string       `json:"selected"`
}

type toggleResult struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

func (v toggledView) Text() string {
	var b strings.Builder
	for _, t := range v.Toggled {
		state := "deselected"
		if t.Selected {
			state = "selected"
		}
		fmt.Fprintf(&b, "%s %s\n", state, t.Name)
	}
	return b.String()
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name>...",
		Short: "Select or deselect hobbies by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()

			// Validate everything first so a typo does not leave a half-applied toggle.
			for _, name := range args {
				if !sess.Contains(name) {
					return writeErr(cmd, errNotFound("hobby", name))
				}
			}
			out := toggledView{Toggled: make([]toggleResult, 0, len(args))}
			for _, name := range args {
				sess.Toggle(name)
				out.Toggled = append(out.Toggled, toggleResult{Name: name, Selected: sess.IsSelected(name)})
			}
			out.Selected = sess.OrderedSelection()
			return writeOut(cmd, app, out)
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Deselect every hobby",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()

			sess.Clear()
			return writeOut(cmd, app, sess.OrderedSelection())
		},
	}
}

func newSelectedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "selected",
		Short: "List selected hobbies in tree order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()
			return writeOut(cmd, app, sess.OrderedSelection())
		},
	}
}

type colorsView []palette.Entry

func (v colorsView) Text() string {
	var b strings.Builder
	for _, e := range v {
		suffix := ""
		if !e.Base {
			suffix = " (variant)"
		}
		fmt.Fprintf(&b, "%s %s%s\n", e.Color, e.Category, suffix)
	}
	return b.String()
}

func newColorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the color assigned to each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeKV, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeKV()
			return writeOut(cmd, app, colorsView(sess.Colors()))
		},
	}
}
