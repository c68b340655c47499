package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartkit/internal/dataset"
	"chartkit/internal/tui"
)

type renderOptions struct {
	kind   string
	width  int
	height int
	legend bool
}

// newRenderCmd creates the render command, which prints one finished chart.
func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print a chart of a data file as braille text",
		Long: `Render a data file once, without animation, and print it.

When --kind is omitted the kind follows the data: grids render as heatmaps,
x/y samples as scatter plots and everything else as a line chart.

Examples:
  chartkit render sales.csv --kind bar --width 60 --height 15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Chart kind (line, area, bar, pie, donut, gauge, scatter, heatmap)")
	cmd.Flags().IntVar(&opts.width, "width", 60, "Chart width in terminal cells")
	cmd.Flags().IntVar(&opts.height, "height", 16, "Chart height in terminal cells")
	cmd.Flags().BoolVar(&opts.legend, "legend", true, "Print the legend below the chart")

	return cmd
}

func (a *App) runRender(path string, opts *renderOptions) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	d, err := dataset.Load(path)
	if err != nil {
		return err
	}
	kind := tui.KindFor(d, "")
	if opts.kind != "" {
		if kind, err = tui.ParseKind(opts.kind); err != nil {
			return err
		}
	}
	out, err := tui.Render(kind, d, cfg, opts.width, opts.height, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	if opts.legend {
		for _, l := range tui.Legend(kind, d, cfg) {
			fmt.Fprintln(a.stdout, l)
		}
	}
	return nil
}
