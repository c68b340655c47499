package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MapToCanvas maps series values into canvas space: index runs left to right
// across the plot area and value runs bottom to top (canvas y grows down).
//
// A flat series sits at mid-height and a single datum sits on the left edge.
// NaN and infinite values are missing: they keep their x slot but produce no
// point, so the result may be shorter than the series.
func MapToCanvas(series Series, c Canvas) ([]Point, error) {
	b, ok := series.Bounds()
	if !ok {
		return nil, fmt.Errorf("map: %w: no finite values", ErrInvalidInput)
	}
	b = b.Pad(c.Inset)
	xs := spread(len(series), c.Left(), c.Right())
	pts := make([]Point, 0, len(series))
	for i, d := range series {
		if !Finite(d.Value) {
			continue
		}
		pts = append(pts, Point{
			X:     xs[i],
			Y:     c.Top() + (1-b.Fraction(d.Value))*(c.Bottom()-c.Top()),
			Label: d.Label,
			Value: d.Value,
		})
	}
	return pts, nil
}

// MapSamples maps data-space pairs into canvas space on both axes. Axes with
// a single distinct value collapse to the middle of the plot area. Samples
// with a non-finite coordinate are skipped.
func MapSamples(samples []Sample, c Canvas) ([]Point, error) {
	xb, yb, ok := SampleBounds(samples)
	if !ok {
		return nil, fmt.Errorf("map: %w: no finite samples", ErrInvalidInput)
	}
	xb, yb = xb.Pad(c.Inset), yb.Pad(c.Inset)
	pts := make([]Point, 0, len(samples))
	for _, s := range samples {
		if s.finite() {
			pts = append(pts, ProjectSample(s, xb, yb, c))
		}
	}
	return pts, nil
}

// ProjectSample maps one sample against explicit bounds.
func ProjectSample(s Sample, xb, yb Bounds, c Canvas) Point {
	return Point{
		X:     c.Left() + xb.Fraction(s.X)*(c.Right()-c.Left()),
		Y:     c.Top() + (1-yb.Fraction(s.Y))*(c.Bottom()-c.Top()),
		Label: s.Label,
		Value: s.Y,
	}
}

// SampleBounds returns the x and y ranges of the samples whose coordinates
// are both finite. ok is false when there is none.
func SampleBounds(samples []Sample) (xb, yb Bounds, ok bool) {
	for _, s := range samples {
		if !s.finite() {
			continue
		}
		if !ok {
			xb, yb, ok = Bounds{Min: s.X, Max: s.X}, Bounds{Min: s.Y, Max: s.Y}, true
			continue
		}
		xb = xb.Include(s.X)
		yb = yb.Include(s.Y)
	}
	return xb, yb, ok
}

// ZeroLine returns the canvas y of value zero for the series, clamped into
// the plot area. Area fills close down to it.
func ZeroLine(series Series, c Canvas) (float64, error) {
	b, ok := series.Bounds()
	if !ok {
		return 0, fmt.Errorf("zero line: %w: no finite values", ErrInvalidInput)
	}
	b = b.Pad(c.Inset)
	y := c.Top() + (1-b.Fraction(0))*(c.Bottom()-c.Top())
	return math.Min(math.Max(y, c.Top()), c.Bottom()), nil
}

// BuildBars lays out one bar per datum. The value axis always includes zero
// so bars grow from a common zero line; negative values hang below it. gap is
// the fraction of each slot left empty between bars. A NaN or infinite value
// keeps its slot as a zero-height bar on the zero line.
func BuildBars(series Series, c Canvas, gap float64) ([]Rect, error) {
	b, ok := series.Bounds()
	if !ok {
		return nil, fmt.Errorf("bars: %w: no finite values", ErrInvalidInput)
	}
	b = b.Include(0).Pad(c.Inset)
	gap = math.Min(math.Max(gap, 0), 0.9)

	slot := (c.Right() - c.Left()) / float64(len(series))
	width := slot * (1 - gap)
	h := c.Bottom() - c.Top()
	zero := c.Top() + (1-b.Fraction(0))*h

	rs := make([]Rect, len(series))
	for i, d := range series {
		y := zero
		if Finite(d.Value) {
			y = c.Top() + (1-b.Fraction(d.Value))*h
		}
		top, bottom := math.Min(y, zero), math.Max(y, zero)
		rs[i] = Rect{
			X:      c.Left() + float64(i)*slot + (slot-width)/2,
			Y:      top,
			Width:  width,
			Height: bottom - top,
			Label:  d.Label,
			Value:  d.Value,
		}
	}
	return rs, nil
}

// spread returns n evenly spaced positions over [lo, hi]. A single position
// is placed at lo.
func spread(n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	switch n {
	case 0:
	case 1:
		xs[0] = lo
	default:
		floats.Span(xs, lo, hi)
	}
	return xs
}
