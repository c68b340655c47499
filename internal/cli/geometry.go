package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

type pathOptions struct {
	mode   string
	close  bool
	width  float64
	height float64
}

// newPathCmd creates the path command, which prints the path descriptor of a
// series in M/L/Q/A/Z form.
func (a *App) newPathCmd() *cobra.Command {
	opts := &pathOptions{}

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the canvas path of a data file's series",
		Long: `Map a series onto a canvas and print its path.

--close draws the path down to the zero line (or the bottom of the plot
area) and back, as used for area charts.

Examples:
  chartkit path sales.csv --mode linear --width 400 --height 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPath(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Smoothing mode (linear, quadratic); defaults to the configured mode")
	cmd.Flags().BoolVar(&opts.close, "close", false, "Close the path along the baseline")
	cmd.Flags().Float64Var(&opts.width, "width", 400, "Canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 200, "Canvas height")

	return cmd
}

func (a *App) runPath(path string, opts *pathOptions) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	mode := cfg.Mode()
	if opts.mode != "" {
		if mode, err = geom.ParseSmoothing(opts.mode); err != nil {
			return err
		}
	}
	d, err := dataset.Load(path)
	if err != nil {
		return err
	}
	s := d.SeriesOrDerived()
	c := cfg.Canvas(opts.width, opts.height)
	pts, err := geom.MapToCanvas(s, c)
	if err != nil {
		return err
	}
	baseline, err := geom.ZeroLine(s, c)
	if err != nil {
		return err
	}
	p, err := geom.BuildPath(pts, geom.PathOptions{Mode: mode, Close: opts.close, Baseline: baseline})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, p.String())
	return nil
}

type sectorsOptions struct {
	inner float64
	outer float64
	paths bool
}

// newSectorsCmd creates the sectors command.
func (a *App) newSectorsCmd() *cobra.Command {
	opts := &sectorsOptions{}

	cmd := &cobra.Command{
		Use:   "sectors FILE",
		Short: "Print the pie or donut sectors of a data file's series",
		Long: `Split the full circle between the series values and print one sector
per line: label, value, share and the start and end angles in radians. The
first sector starts at twelve o'clock and angles grow clockwise.

Examples:
  chartkit sectors sales.csv --inner 40 --outer 100 --paths`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSectors(args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.inner, "inner", 0, "Inner radius; above zero draws a donut")
	cmd.Flags().Float64Var(&opts.outer, "outer", 100, "Outer radius")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "Also print each sector's path, centered at (outer, outer)")

	return cmd
}

func (a *App) runSectors(path string, opts *sectorsOptions) error {
	d, err := dataset.Load(path)
	if err != nil {
		return err
	}
	sectors, err := geom.BuildSectors(d.SeriesOrDerived(), opts.inner, opts.outer)
	if err != nil {
		return err
	}
	center := geom.Point{X: opts.outer, Y: opts.outer}
	for _, s := range sectors {
		fmt.Fprintf(a.stdout, "%s\t%g\t%.2f%%\t%.4f\t%.4f\n", s.Label, s.Value, s.Percentage, s.StartAngle, s.EndAngle)
		if opts.paths {
			fmt.Fprintf(a.stdout, "  %s\n", s.Path(center))
		}
	}
	return nil
}
