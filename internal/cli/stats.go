package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

// newStatsCmd creates the stats command.
func (a *App) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print summary statistics and the linear trend of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(args[0])
		},
	}
}

func (a *App) runStats(path string) error {
	d, err := dataset.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "title: %s\n", d.Title)
	sum, err := geom.Summarize(d.SeriesOrDerived().Values())
	if err != nil {
		return err
	}
	a.printSummary("series", sum)
	if len(d.Grid) > 0 {
		if g, err := geom.SummarizeGrid(d.Grid); err == nil {
			a.printSummary("grid", g)
		}
	}

	fit, err := geom.FitLinear(d.SamplesOrDerived())
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "trend:")
	fmt.Fprintf(a.stdout, "  slope:       %g\n", fit.Slope)
	fmt.Fprintf(a.stdout, "  intercept:   %g\n", fit.Intercept)
	fmt.Fprintf(a.stdout, "  correlation: %.4f\n", fit.Correlation)
	fmt.Fprintf(a.stdout, "  r2:          %.4f\n", fit.RSquared)
	return nil
}

func (a *App) printSummary(name string, s geom.Summary) {
	fmt.Fprintf(a.stdout, "%s:\n", name)
	fmt.Fprintf(a.stdout, "  count: %d\n", s.Count)
	fmt.Fprintf(a.stdout, "  min:   %g\n", s.Min)
	fmt.Fprintf(a.stdout, "  max:   %g\n", s.Max)
	fmt.Fprintf(a.stdout, "  sum:   %g\n", s.Sum)
	fmt.Fprintf(a.stdout, "  mean:  %g\n", s.Mean)
}
