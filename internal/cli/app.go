// Package cli provides the chartkit command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chartkit/internal/config"
	"chartkit/internal/geom"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	smoothing  string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "chartkit",
		Short: "Chart geometry engine and terminal chart viewer",
		Long: `chartkit turns labelled numeric series into chart geometry: canvas
points, smoothed paths, pie and donut sectors, regression lines and heatmap
colors. The view command opens an interactive terminal viewer; the other
commands print geometry for a data file (.csv, .json, .yaml, .txt).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to YAML configuration file")
	app.root.PersistentFlags().StringVar(&app.smoothing, "smoothing", "", "Override path smoothing (linear, quadratic)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newViewCmd(),
		app.newRenderCmd(),
		app.newStatsCmd(),
		app.newPathCmd(),
		app.newSectorsCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// config loads the configuration file when one was given and applies flag
// overrides on top.
func (a *App) config() (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return cfg, err
		}
	}
	if a.smoothing != "" {
		mode, err := geom.ParseSmoothing(a.smoothing)
		if err != nil {
			return cfg, err
		}
		cfg.Smoothing = mode.String()
	}
	return cfg, nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "chartkit version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
		},
	}
}
