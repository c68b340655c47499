package geom

import "fmt"

// Lerp interpolates between a and b; t is clamped to [0,1].
func Lerp(a, b, t float64) float64 {
	t = clamp01(t)
	return a*(1-t) + b*t
}

// LerpPoints interpolates two point lists of equal length. Labels and values
// come from the target list.
func LerpPoints(from, to []Point, t float64) ([]Point, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("lerp: %w: %d points against %d", ErrInvalidInput, len(from), len(to))
	}
	out := make([]Point, len(to))
	for i := range to {
		out[i] = to[i]
		out[i].X = Lerp(from[i].X, to[i].X, t)
		out[i].Y = Lerp(from[i].Y, to[i].Y, t)
	}
	return out, nil
}

// LerpSectors interpolates angles and radii of two sector lists of equal
// length. Consecutive sectors stay contiguous at every t when both inputs
// are contiguous.
func LerpSectors(from, to []Sector, t float64) ([]Sector, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("lerp: %w: %d sectors against %d", ErrInvalidInput, len(from), len(to))
	}
	out := make([]Sector, len(to))
	for i := range to {
		out[i] = to[i]
		out[i].StartAngle = Lerp(from[i].StartAngle, to[i].StartAngle, t)
		out[i].EndAngle = Lerp(from[i].EndAngle, to[i].EndAngle, t)
		out[i].InnerRadius = Lerp(from[i].InnerRadius, to[i].InnerRadius, t)
		out[i].OuterRadius = Lerp(from[i].OuterRadius, to[i].OuterRadius, t)
		out[i].Percentage = Lerp(from[i].Percentage, to[i].Percentage, t)
	}
	return out, nil
}

// CollapsePoints flattens points onto baseline, the starting frame of a
// grow-from-axis reveal.
func CollapsePoints(points []Point, baseline float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p
		out[i].Y = baseline
	}
	return out
}

// CollapseSectors folds every sector onto the first start angle, the
// starting frame of a sweep reveal.
func CollapseSectors(sectors []Sector) []Sector {
	out := make([]Sector, len(sectors))
	for i, s := range sectors {
		out[i] = s
		out[i].StartAngle = sectors[0].StartAngle
		out[i].EndAngle = sectors[0].StartAngle
		out[i].Percentage = 0
	}
	return out
}
