package tui

import (
	"log/slog"

	"hobbies-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Theme is light|dark|auto; empty falls back to HOBBIES_TUI_THEME.
	Theme  string
	Logger *slog.Logger
}

func Run(sess *session.Session, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newModel(sess, opts)
	m.logger.Info("tui start", "selected", len(sess.OrderedSelection()))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		m.logger.Error("tui exited with error", "err", err)
		return err
	}
	m.logger.Info("tui exit")
	return nil
}
