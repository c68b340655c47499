package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Smoothing selects how consecutive points are joined.
type Smoothing int

const (
	Linear Smoothing = iota
	Quadratic
)

func (s Smoothing) String() string {
	switch s {
	case Quadratic:
		return "quadratic"
	default:
		return "linear"
	}
}

// ParseSmoothing accepts "linear", "straight", "quadratic", "smooth" or
// "curve" (case-insensitive).
func ParseSmoothing(s string) (Smoothing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "straight":
		return Linear, nil
	case "quadratic", "smooth", "curve":
		return Quadratic, nil
	}
	return Linear, fmt.Errorf("unknown smoothing %q", s)
}

type Verb byte

const (
	MoveTo    Verb = 'M'
	LineTo    Verb = 'L'
	QuadTo    Verb = 'Q'
	ArcTo     Verb = 'A'
	ClosePath Verb = 'Z'
)

// Segment is one drawing instruction. Ctrl is only meaningful for QuadTo;
// Center, Radius, Start and End only for ArcTo, which sweeps from angle Start
// to angle End around Center and ends at To.
type Segment struct {
	Verb   Verb
	To     Point
	Ctrl   Point
	Center Point
	Radius float64
	Start  float64
	End    float64
}

// Path is a serialisable description of a 2D outline.
type Path struct {
	Segments []Segment
}

type PathOptions struct {
	Mode Smoothing
	// Close drops the path to Baseline and back to the first x, forming a
	// region for area fills.
	Close    bool
	Baseline float64
}

// BuildPath joins points into a path. Quadratic smoothing uses each interior
// point as the control of a curve ending halfway to the next point, which
// never overshoots the data. Two points always give a straight segment.
func BuildPath(points []Point, opts PathOptions) (Path, error) {
	if len(points) == 0 {
		return Path{}, fmt.Errorf("path: %w: no points", ErrInvalidInput)
	}
	segs := make([]Segment, 0, len(points)+3)
	segs = append(segs, Segment{Verb: MoveTo, To: points[0]})

	switch {
	case len(points) == 1:
	case opts.Mode == Quadratic && len(points) >= 3:
		last := len(points) - 1
		for i := 1; i < last; i++ {
			segs = append(segs, Segment{
				Verb: QuadTo,
				Ctrl: points[i],
				To:   midpoint(points[i], points[i+1]),
			})
		}
		segs = append(segs, Segment{Verb: LineTo, To: points[last]})
	default:
		for _, p := range points[1:] {
			segs = append(segs, Segment{Verb: LineTo, To: p})
		}
	}

	if opts.Close {
		first, last := points[0], points[len(points)-1]
		segs = append(segs,
			Segment{Verb: LineTo, To: Point{X: last.X, Y: opts.Baseline}},
			Segment{Verb: LineTo, To: Point{X: first.X, Y: opts.Baseline}},
			Segment{Verb: ClosePath, To: first},
		)
	}
	return Path{Segments: segs}, nil
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Anchors returns the end point of every segment except ClosePath.
func (p Path) Anchors() []Point {
	out := make([]Point, 0, len(p.Segments))
	for _, s := range p.Segments {
		if s.Verb != ClosePath {
			out = append(out, s.To)
		}
	}
	return out
}

// Controls returns the control points of quadratic segments.
func (p Path) Controls() []Point {
	var out []Point
	for _, s := range p.Segments {
		if s.Verb == QuadTo {
			out = append(out, s.Ctrl)
		}
	}
	return out
}

func (p Path) HasCurves() bool {
	for _, s := range p.Segments {
		if s.Verb == QuadTo || s.Verb == ArcTo {
			return true
		}
	}
	return false
}

func (p Path) Closed() bool {
	n := len(p.Segments)
	return n > 0 && p.Segments[n-1].Verb == ClosePath
}

// String renders the path in M/L/Q/A/Z notation with coordinates rounded to
// two decimals.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Verb))
		switch s.Verb {
		case MoveTo, LineTo:
			writeCoords(&b, s.To.X, s.To.Y)
		case QuadTo:
			writeCoords(&b, s.Ctrl.X, s.Ctrl.Y, s.To.X, s.To.Y)
		case ArcTo:
			large, sweep := 0.0, 0.0
			if math.Abs(s.End-s.Start) > math.Pi {
				large = 1
			}
			if s.End > s.Start {
				sweep = 1
			}
			writeCoords(&b, s.Radius, s.Radius, 0, large, sweep, s.To.X, s.To.Y)
		}
	}
	return b.String()
}

func writeCoords(b *strings.Builder, vs ...float64) {
	for _, v := range vs {
		b.WriteByte(' ')
		b.WriteString(formatCoord(v))
	}
}

func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Flatten approximates curves and arcs with straight runs, steps samples per
// curved segment. The result is a polyline (or polygon when the path is
// closed) suitable for rasterisation.
func (p Path) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	var (
		out []Point
		cur Point
	)
	for _, s := range p.Segments {
		switch s.Verb {
		case MoveTo, LineTo:
			out = append(out, s.To)
		case QuadTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				out = append(out, Point{
					X: u*u*cur.X + 2*u*t*s.Ctrl.X + t*t*s.To.X,
					Y: u*u*cur.Y + 2*u*t*s.Ctrl.Y + t*t*s.To.Y,
				})
			}
		case ArcTo:
			for i := 1; i <= steps; i++ {
				a := s.Start + (s.End-s.Start)*float64(i)/float64(steps)
				out = append(out, polar(s.Center, s.Radius, a))
			}
		case ClosePath:
			continue
		}
		cur = s.To
	}
	return out
}
