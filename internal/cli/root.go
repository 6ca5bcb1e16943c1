package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hobbies-cli/internal/format"
	"hobbies-cli/internal/logging"
	"hobbies-cli/internal/palette"
	"hobbies-cli/internal/selection"
	"hobbies-cli/internal/session"
	"hobbies-cli/internal/store"
	"hobbies-cli/internal/taxonomy"
	"hobbies-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Taxonomy   string
	Backend    string
	Format     string
	PrettyJSON bool
	LogLevel   string

	cfg    *store.GlobalConfig
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "hobbies",
		Short:        "Pick hobbies from a scored taxonomy (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive picker
  hobbies

  # Scriptable commands
  hobbies tree --format text
  hobbies search guit
  hobbies toggle Piano Guitar
  hobbies selected
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		logger, err := logging.New(cmd.ErrOrStderr(), logOptions(app, "warn"))
		if err != nil {
			return writeErr(cmd, err)
		}
		app.logger = logger
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("HOBBIES_DIR", ""), "Path to state dir (default: ~/.hobbies/state)")
	cmd.PersistentFlags().StringVar(&app.Taxonomy, "taxonomy", envOr("HOBBIES_TAXONOMY", ""), "Taxonomy file (YAML or JSON); default: built-in taxonomy")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("HOBBIES_BACKEND", ""), "Storage backend (sqlite|json); default from config, else sqlite")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("HOBBIES_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newFlattenCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newSelectedCmd(app))
	cmd.AddCommand(newColorsCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	dir, err := stateDir(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	// The alternate screen owns the terminal; log to a file instead.
	logger, closer, err := logging.NewFile(dir, logOptions(app, "info"))
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closer.Close()
	app.logger = logger

	sess, closeKV, err := openSession(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeKV()

	theme := ""
	if app.cfg != nil && app.cfg.TUI != nil {
		theme = app.cfg.TUI.Theme
	}
	return tui.Run(sess, tui.Options{Theme: theme, Logger: logger})
}

// openSession loads the taxonomy and the persisted selection. Storage
// problems are logged and the session runs in memory; only an unreadable
// taxonomy is an error.
func openSession(ctx context.Context, app *App) (*session.Session, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := app.config()
	logger := app.log()

	path := app.Taxonomy
	if path == "" {
		path = cfg.TaxonomyPath
	}
	forest, err := taxonomy.Load(path, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("load taxonomy: %w", err)
	}

	closeKV := func() {}
	var backend selection.Backend
	if kv, err := openKV(ctx, app); err != nil {
		logger.Warn("storage unavailable; selection will not be saved", "err", err)
	} else {
		backend = kv
		closeKV = func() {
			if err := kv.Close(); err != nil {
				logger.Warn("close storage", "err", err)
			}
		}
	}

	colors := palette.New(nil)
	if cfg.ColorSeed != 0 {
		colors = palette.NewSeeded(cfg.ColorSeed)
	}

	sess := session.New(session.Options{
		Forest:    forest,
		Colors:    colors,
		Selection: selection.Load(ctx, backend, logger),
		PageSize:  cfg.EffectivePageSize(),
		Logger:    logger,
	})
	return sess, closeKV, nil
}

func openKV(ctx context.Context, app *App) (store.KV, error) {
	dir, err := stateDir(app)
	if err != nil {
		return nil, err
	}
	backend := app.Backend
	if backend == "" {
		backend = app.config().Backend
	}
	return store.Store{Dir: dir}.Open(ctx, backend)
}

func stateDir(app *App) (string, error) {
	if strings.TrimSpace(app.Dir) != "" {
		return app.Dir, nil
	}
	return store.DefaultDir()
}

func logOptions(app *App, fallback string) logging.Options {
	opts := logging.Options{Level: fallback}
	if cfg := app.config(); cfg.Log != nil {
		if cfg.Log.Level != "" {
			opts.Level = cfg.Log.Level
		}
		opts.Format = cfg.Log.Format
	}
	if app.LogLevel != "" {
		opts.Level = app.LogLevel
	}
	return opts
}

func (app *App) config() *store.GlobalConfig {
	if app.cfg == nil {
		return &store.GlobalConfig{}
	}
	return app.cfg
}

func (app *App) log() *slog.Logger {
	if app.logger == nil {
		return logging.Discard()
	}
	return app.logger
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut wraps data in the {"data": ...} envelope. Text output skips the
// envelope so it stays readable.
func writeOut(cmd *cobra.Command, app *App, data any) error {
	if strings.EqualFold(strings.TrimSpace(app.Format), "text") {
		return format.WriteText(cmd.OutOrStdout(), data)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": data}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
