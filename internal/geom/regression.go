package geom

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Regression is a least-squares line y = Slope*x + Intercept with the
// Pearson correlation of the fitted samples.
type Regression struct {
	Slope       float64
	Intercept   float64
	Correlation float64
	RSquared    float64
	N           int
}

func (r Regression) At(x float64) float64 { return r.Slope*x + r.Intercept }

// FitLinear fits an ordinary least-squares line through samples.
//
// Correlation is undefined when either coordinate never varies; in that case
// the fit is the horizontal line through the mean of y and Correlation and
// RSquared are 0. A single sample fits the same way. Samples with a NaN or
// infinite coordinate are left out of the fit.
func FitLinear(samples []Sample) (Regression, error) {
	xb, yb, ok := SampleBounds(samples)
	if !ok {
		return Regression{}, fmt.Errorf("fit: %w: no finite samples", ErrInvalidInput)
	}
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.finite() {
			xs, ys = append(xs, s.X), append(ys, s.Y)
		}
	}
	n := len(xs)
	if n < 2 || xb.Flat() || yb.Flat() {
		return Regression{Intercept: stat.Mean(ys, nil), N: n}, nil
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Regression{
		Slope:       beta,
		Intercept:   alpha,
		Correlation: stat.Correlation(xs, ys, nil),
		RSquared:    stat.RSquared(xs, ys, nil, alpha, beta),
		N:           n,
	}, nil
}

// FitSeries fits a line through the series using the datum index as x.
func FitSeries(series Series) (Regression, error) {
	samples := make([]Sample, len(series))
	for i, d := range series {
		samples[i] = Sample{X: float64(i), Y: d.Value, Label: d.Label}
	}
	return FitLinear(samples)
}

// TrendLine returns the fitted line's end points over the x range xb.
func TrendLine(r Regression, xb Bounds) [2]Sample {
	return [2]Sample{
		{X: xb.Min, Y: r.At(xb.Min)},
		{X: xb.Max, Y: r.At(xb.Max)},
	}
}
