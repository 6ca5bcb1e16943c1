package main

import (
	"os"
	"strings"

	"hobbies-cli/internal/cli"
)

// searchShortcut reports whether s is a "/query" token and returns the query.
func searchShortcut(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") || len(s) == 1 {
		return "", false
	}
	return s[1:], true
}

// rewriteSearchShortcutArgs turns `hobbies /guit` into `hobbies search guit`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so this looks for the
// first positional token rather than argv[1].
func rewriteSearchShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--taxonomy":  true,
		"--backend":   true,
		"--format":    true,
		"--log-level": true,
	}

	rewrite := func(i int, q string) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "search", q)
		out = append(out, argv[i+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) {
				if q, ok := searchShortcut(argv[i+1]); ok {
					return rewrite(i+1, q)
				}
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Unknown flags are skipped without consuming a value.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if q, ok := searchShortcut(a); ok {
			return rewrite(i, q)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteSearchShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
