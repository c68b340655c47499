// Package geom turns numeric series into chart geometry: canvas points,
// paths, sectors, bars, heatmap tiles and fitted trend lines.
package geom

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned when an operation cannot produce geometry at
// all, e.g. an empty series. Every other degenerate input resolves to a
// fallback value instead.
var ErrInvalidInput = errors.New("invalid input")

// Datum is one labelled value of a series.
type Datum struct {
	Label string
	Value float64
}

// Series is an ordered sequence of labelled values.
type Series []Datum

// Values returns a fresh copy of the series values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, d := range s {
		out[i] = d.Value
	}
	return out
}

// Labels returns the series labels in order.
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, d := range s {
		out[i] = d.Label
	}
	return out
}

// Bounds returns the range of the finite values of the series. NaN and
// infinite values are treated as missing; ok is false when no finite value
// is left.
func (s Series) Bounds() (b Bounds, ok bool) {
	for _, d := range s {
		if !Finite(d.Value) {
			continue
		}
		if !ok {
			b, ok = Bounds{Min: d.Value, Max: d.Value}, true
			continue
		}
		b = b.Include(d.Value)
	}
	return b, ok
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Point is a position in canvas space. Label and Value carry the datum the
// point was mapped from, when there is one.
type Point struct {
	X     float64
	Y     float64
	Label string
	Value float64
}

// Sample is a data-space (x, y) pair used by scatter charts and regression.
type Sample struct {
	X     float64
	Y     float64
	Label string
}

func (s Sample) finite() bool { return Finite(s.X) && Finite(s.Y) }

// Bounds is a closed value range.
type Bounds struct {
	Min float64
	Max float64
}

// Span is the width of the range.
func (b Bounds) Span() float64 { return b.Max - b.Min }

// Flat reports whether the bounds enclose a single value.
func (b Bounds) Flat() bool { return b.Max == b.Min }

// Include returns the bounds widened to cover v.
func (b Bounds) Include(v float64) Bounds {
	if v < b.Min {
		b.Min = v
	}
	if v > b.Max {
		b.Max = v
	}
	return b
}

// Pad widens the bounds by frac of their span on both ends.
func (b Bounds) Pad(frac float64) Bounds {
	if frac <= 0 {
		return b
	}
	d := b.Span() * frac
	return Bounds{Min: b.Min - d, Max: b.Max + d}
}

// normalized returns bounds that are safe to divide by: a flat range is
// opened by half a unit on both sides so its single value sits in the middle.
func (b Bounds) normalized() Bounds {
	if b.Flat() {
		return Bounds{Min: b.Min - 0.5, Max: b.Max + 0.5}
	}
	return b
}

// Fraction places v on the [0,1] scale of the bounds. Flat bounds map every
// value to 0.5.
func (b Bounds) Fraction(v float64) float64 {
	n := b.normalized()
	return (v - n.Min) / n.Span()
}

// Canvas is the drawing area geometry is produced for.
type Canvas struct {
	Width   float64
	Height  float64
	Padding float64
	// Inset widens the value range by this fraction so extremes do not touch
	// the plot edge.
	Inset float64
}

func (c Canvas) Left() float64   { return c.Padding }
func (c Canvas) Right() float64  { return c.Width - c.Padding }
func (c Canvas) Top() float64    { return c.Padding }
func (c Canvas) Bottom() float64 { return c.Height - c.Padding }

// Baseline is the canvas y of the bottom of the plot area.
func (c Canvas) Baseline() float64 { return c.Bottom() }

func (c Canvas) Center() Point {
	return Point{X: c.Width / 2, Y: c.Height / 2}
}

// Radius is the largest radius that fits the plot area.
func (c Canvas) Radius() float64 {
	r := math.Min(c.Right()-c.Left(), c.Bottom()-c.Top()) / 2
	return math.Max(r, 0)
}

// Rect is an axis aligned rectangle in canvas space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Label  string
	Value  float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}
