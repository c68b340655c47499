package geom

import (
	"fmt"
	"math"
)

// Origin is the angle of the first sector: twelve o'clock on a canvas whose
// y axis grows downwards.
const Origin = -math.Pi / 2

const fullTurn = 2 * math.Pi

// Sector is one wedge of a pie, donut or gauge. Angles are in radians and
// grow clockwise on screen.
type Sector struct {
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
	Value       float64
	Percentage  float64
	Label       string
}

func (s Sector) Span() float64 { return s.EndAngle - s.StartAngle }

func (s Sector) MidAngle() float64 { return (s.StartAngle + s.EndAngle) / 2 }

// Centroid is the point halfway through the ring at the middle angle, where
// a label would go.
func (s Sector) Centroid(center Point) Point {
	return polar(center, (s.InnerRadius+s.OuterRadius)/2, s.MidAngle())
}

// Contains reports whether the polar coordinate (angle, r) falls inside the
// sector. angle may be given in any turn.
func (s Sector) Contains(angle, r float64) bool {
	if r < s.InnerRadius || r > s.OuterRadius || s.Span() <= 0 {
		return false
	}
	if s.Span() >= fullTurn {
		return true
	}
	d := math.Mod(angle-s.StartAngle, fullTurn)
	if d < 0 {
		d += fullTurn
	}
	return d <= s.Span()
}

// Path outlines the sector around center. A pie wedge (no inner radius)
// runs from the center out along the outer arc; a donut wedge runs the outer
// arc forward and the inner arc backward.
func (s Sector) Path(center Point) Path {
	var segs []Segment
	outer := arcSegments(center, s.OuterRadius, s.StartAngle, s.EndAngle)
	if s.InnerRadius <= 0 {
		segs = append(segs, Segment{Verb: MoveTo, To: center})
		segs = append(segs, Segment{Verb: LineTo, To: polar(center, s.OuterRadius, s.StartAngle)})
		segs = append(segs, outer...)
	} else {
		segs = append(segs, Segment{Verb: MoveTo, To: polar(center, s.OuterRadius, s.StartAngle)})
		segs = append(segs, outer...)
		segs = append(segs, Segment{Verb: LineTo, To: polar(center, s.InnerRadius, s.EndAngle)})
		segs = append(segs, arcSegments(center, s.InnerRadius, s.EndAngle, s.StartAngle)...)
	}
	segs = append(segs, Segment{Verb: ClosePath, To: segs[0].To})
	return Path{Segments: segs}
}

// arcSegments splits sweeps of a full turn in two so each arc has distinct
// end points.
func arcSegments(center Point, r, from, to float64) []Segment {
	if from == to {
		return nil
	}
	if math.Abs(to-from) < fullTurn-1e-9 {
		return []Segment{arcTo(center, r, from, to)}
	}
	mid := (from + to) / 2
	return []Segment{arcTo(center, r, from, mid), arcTo(center, r, mid, to)}
}

func arcTo(center Point, r, from, to float64) Segment {
	return Segment{
		Verb:   ArcTo,
		To:     polar(center, r, to),
		Center: center,
		Radius: r,
		Start:  from,
		End:    to,
	}
}

func polar(center Point, r, angle float64) Point {
	return Point{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)}
}

// BuildSectors splits a full turn between the series values, in input order,
// starting at Origin. Negative, NaN and infinite values count as zero. When
// the total is zero every sector is empty and reports 0%.
func BuildSectors(series Series, innerRadius, outerRadius float64) ([]Sector, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("sectors: %w: empty series", ErrInvalidInput)
	}
	inner, outer := radii(innerRadius, outerRadius)

	var total float64
	for _, d := range series {
		total += positive(d.Value)
	}

	out := make([]Sector, len(series))
	var cum float64
	cursor := Origin
	for i, d := range series {
		v := positive(d.Value)
		s := Sector{
			StartAngle:  cursor,
			EndAngle:    cursor,
			InnerRadius: inner,
			OuterRadius: outer,
			Value:       d.Value,
			Label:       d.Label,
		}
		if total > 0 {
			cum += v
			// summing in the same order as total lands the last sector
			// exactly on a full turn
			s.EndAngle = Origin + cum/total*fullTurn
			s.Percentage = v / total * 100
		}
		cursor = s.EndAngle
		out[i] = s
	}
	return out, nil
}

// BuildGauge returns the filled and remaining parts of a half-circle gauge
// that sweeps from nine o'clock over the top to three o'clock. value is
// clamped to [min, max]; a flat range shows the gauge half full.
func BuildGauge(value, min, max, innerRadius, outerRadius float64) ([2]Sector, error) {
	if math.IsNaN(value) || !Finite(min) || !Finite(max) {
		return [2]Sector{}, fmt.Errorf("gauge: %w: non-finite value or bound", ErrInvalidInput)
	}
	if min > max {
		min, max = max, min
	}
	inner, outer := radii(innerRadius, outerRadius)
	f := clamp01(Bounds{Min: min, Max: max}.Fraction(value))
	split := math.Pi + f*math.Pi
	v := math.Min(math.Max(value, min), max)
	return [2]Sector{
		{StartAngle: math.Pi, EndAngle: split, InnerRadius: inner, OuterRadius: outer, Value: v, Percentage: f * 100},
		{StartAngle: split, EndAngle: fullTurn, InnerRadius: inner, OuterRadius: outer, Value: max - v, Percentage: (1 - f) * 100},
	}, nil
}

func radii(inner, outer float64) (float64, float64) {
	inner, outer = positive(inner), positive(outer)
	if inner > outer {
		inner, outer = outer, inner
	}
	return inner, outer
}

// positive treats negative and non-finite values as zero.
func positive(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
