package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chartkit/internal/logger"
	"chartkit/internal/tui"
)

type viewOptions struct {
	kind string
}

// newViewCmd creates the interactive viewer command.
func (a *App) newViewCmd() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open the interactive terminal chart viewer",
		Long: `Open the terminal chart viewer, optionally preloading a data file.

Logs go to the file named by CHARTKIT_LOG (discarded when unset) since the
viewer owns the terminal. CHARTKIT_ENV=production switches to JSON logs.

Examples:
  chartkit view
  chartkit view sales.csv --kind donut`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runView(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Initial chart kind (line, area, bar, pie, donut, gauge, scatter, heatmap)")

	return cmd
}

func (a *App) runView(cmd *cobra.Command, args []string, opts *viewOptions) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	var kind tui.Kind
	if opts.kind != "" {
		if kind, err = tui.ParseKind(opts.kind); err != nil {
			return err
		}
	}
	if err := logger.FromEnv(); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(cfg, args[0], kind)
	} else {
		m = tui.New(cfg)
	}
	logger.Info("viewer starting", zap.Strings("args", args), zap.String("smoothing", cfg.Smoothing))
	if _, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	).Run(); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		return err
	}
	return nil
}
