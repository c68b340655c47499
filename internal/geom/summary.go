package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Summary holds aggregate statistics of a collection of values.
type Summary struct {
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
	Count int
}

// Summarize aggregates values. NaN and infinite entries are skipped; a
// collection with no finite value is rejected rather than reported as
// infinities.
func Summarize(values []float64) (Summary, error) {
	vs := make([]float64, 0, len(values))
	for _, v := range values {
		if Finite(v) {
			vs = append(vs, v)
		}
	}
	if len(vs) == 0 {
		return Summary{}, fmt.Errorf("summarize: %w: no finite values", ErrInvalidInput)
	}
	sum := floats.Sum(vs)
	return Summary{
		Min:   floats.Min(vs),
		Max:   floats.Max(vs),
		Sum:   sum,
		Mean:  sum / float64(len(vs)),
		Count: len(vs),
	}, nil
}

// SummarizeGrid flattens the rows, which may differ in length, and
// aggregates the result.
func SummarizeGrid(grid [][]float64) (Summary, error) {
	n := 0
	for _, row := range grid {
		n += len(row)
	}
	flat := make([]float64, 0, n)
	for _, row := range grid {
		flat = append(flat, row...)
	}
	return Summarize(flat)
}

// Bounds returns the value range covered by the summary.
func (s Summary) Bounds() Bounds { return Bounds{Min: s.Min, Max: s.Max} }
