package geom

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lightness bounds of the intensity ramp. Low intensity is pale, high
// intensity is deep.
const (
	lightest = 0.92
	darkest  = 0.28
	minAlpha = 0.15
)

// Color is a ramp color. Lightness and Alpha are the channels intensity is
// encoded in; the embedded RGB is the opaque HSL rendition.
type Color struct {
	colorful.Color
	Lightness float64
	Alpha     float64
	Intensity float64
}

// RGBA renders the color as a CSS rgba() string.
func (c Color) RGBA() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", r, g, b, c.Alpha)
}

// ColorScale maps values in [Min, Max] onto a single-hue ramp.
type ColorScale struct {
	Min        float64
	Max        float64
	Hue        float64 // degrees
	Saturation float64
}

func NewColorScale(min, max, hue float64) ColorScale {
	return ColorScale{Min: min, Max: max, Hue: hue, Saturation: 0.7}
}

// Intensity normalises v into [0,1], clamping values outside the range. A
// flat scale reports 0.5 for every value.
func (s ColorScale) Intensity(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if s.Max == s.Min {
		return 0.5
	}
	return clamp01((v - s.Min) / (s.Max - s.Min))
}

// At returns the color for v. Lightness strictly decreases and alpha
// strictly increases with intensity.
func (s ColorScale) At(v float64) Color {
	t := s.Intensity(v)
	l := lightest - t*(lightest-darkest)
	hue := math.Mod(s.Hue, 360)
	if hue < 0 {
		hue += 360
	}
	return Color{
		Color:     colorful.Hsl(hue, clamp01(s.Saturation), l),
		Lightness: l,
		Alpha:     minAlpha + t*(1-minAlpha),
		Intensity: t,
	}
}

// ColorFor is a one-off lookup on a ramp of the given hue.
func ColorFor(value, min, max, hue float64) Color {
	return NewColorScale(min, max, hue).At(value)
}

// Cell is one heatmap tile.
type Cell struct {
	Row   int
	Col   int
	Rect  Rect
	Color Color
}

// BuildHeatmap lays the grid out over the plot area, one tile per value,
// colored against the range of the whole grid. Ragged rows keep the column
// width of the widest row.
func BuildHeatmap(grid [][]float64, c Canvas, hue float64) ([]Cell, error) {
	sum, err := SummarizeGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	cols := 0
	for _, row := range grid {
		cols = max(cols, len(row))
	}
	scale := NewColorScale(sum.Min, sum.Max, hue)
	cw := (c.Right() - c.Left()) / float64(cols)
	ch := (c.Bottom() - c.Top()) / float64(len(grid))

	cells := make([]Cell, 0, sum.Count)
	for i, row := range grid {
		for j, v := range row {
			cells = append(cells, Cell{
				Row: i,
				Col: j,
				Rect: Rect{
					X:      c.Left() + float64(j)*cw,
					Y:      c.Top() + float64(i)*ch,
					Width:  cw,
					Height: ch,
					Value:  v,
				},
				Color: scale.At(v),
			})
		}
	}
	return cells, nil
}
