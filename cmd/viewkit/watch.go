package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/viewkit/internal/config"
	"github.com/alexisbeaulieu97/viewkit/internal/debounce"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
	"github.com/alexisbeaulieu97/viewkit/internal/tui"
	"github.com/alexisbeaulieu97/viewkit/internal/viewport"
)

const sessionLogLimit = 500

func newWatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the responsive terminal view",
		Long: `Watch opens a full-screen view that tracks the terminal width, reports the
active breakpoint and lays the account view out for it. The config file, when
given, is reloaded on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.watch")
			err := runWatch(ctx, app, logger)
			if err != nil {
				logger.Error(ctx, "watch command failed", "error", err)
			}
			return err
		},
	}

	return cmd
}

func runWatch(ctx context.Context, app *AppContext, logger ports.Logger) error {
	cfg := app.Config
	width, err := viewport.TerminalWidth(int(os.Stdout.Fd()), cfg.CellWidth)
	if err != nil {
		return fmt.Errorf("watch requires a terminal: %w", err)
	}

	// The program owns the terminal until it exits; buffer log output until then.
	buffer := logging.NewSessionBuffer(sessionLogLimit)
	defer buffer.Flush(logger)
	sessionLogger := buffer.Logger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model, err := tui.NewModel(tui.Options{
		Config:    cfg,
		Columns:   width / cfg.CellWidth,
		Publisher: app.Publisher,
		Logger:    sessionLogger,
		Context:   ctx,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if app.ConfigPath != "" {
		watcher := config.NewWatcher(app.ConfigPath, debounce.DefaultWait, sessionLogger).WithLookup(app.Lookup)
		go func() {
			err := watcher.Run(ctx, func(cfg *config.Config, err error) {
				program.Send(tui.ConfigReloadedMsg{Config: cfg, Err: err})
			})
			if err != nil && ctx.Err() == nil {
				sessionLogger.Warn(ctx, "config watcher stopped", "error", err)
			}
		}()
	}

	sessionLogger.Info(ctx, "watch started", "width", width, "breakpoint", model.Current().String())
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}
