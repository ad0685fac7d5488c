package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/ui"
	"github.com/aretw0/notes/pkg/core"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view (the default)",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

// runTUI opens the interactive view. Logs go to notes.log in the profile
// directory when verbose, and are dropped otherwise, since stderr is the screen.
func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger, closeLog, err := a.tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	a.logger = logger

	events := make(chan core.Event, 64)
	store, storage, err := a.open(ctx,
		notes.WithObserver(ui.Notify(events)),
		notes.WithWatchErrorHandler(func(err error) {
			logger.Error("watch failed", "error", err)
		}),
	)
	if err != nil {
		return err
	}
	defer store.Close()

	var changes <-chan core.Event
	if w, ok := storage.(core.Watchable); ok {
		if changes, err = w.Watch(ctx); err != nil {
			logger.Warn("external changes will not be picked up", "error", err)
		}
	}

	model := ui.New(ctx, store, ui.Options{
		Events:      events,
		SlotChanges: changes,
		Theme:       ui.ThemeByName(a.cfg.Theme),
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("view failed: %w", err)
	}
	return nil
}

func (a *app) tuiLogger() (*slog.Logger, func(), error) {
	if !a.cfg.Verbose || a.cfg.Memory {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(a.cfg.Dir, 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(a.cfg.Dir, "notes.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
