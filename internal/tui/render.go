package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chartkit/internal/config"
	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

// Kind names a chart type.
type Kind string

const (
	KindLine    Kind = "line"
	KindArea    Kind = "area"
	KindBar     Kind = "bar"
	KindPie     Kind = "pie"
	KindDonut   Kind = "donut"
	KindGauge   Kind = "gauge"
	KindScatter Kind = "scatter"
	KindHeatmap Kind = "heatmap"
)

// Kinds lists every chart kind in viewer cycling order.
var Kinds = []Kind{KindLine, KindArea, KindBar, KindPie, KindDonut, KindGauge, KindScatter, KindHeatmap}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Kinds {
		if v == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

func (k Kind) next() Kind {
	for i, v := range Kinds {
		if v == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// KindFor picks a chart kind suited to the shape of d, keeping current when
// it can already draw the data.
func KindFor(d dataset.Dataset, current Kind) Kind {
	switch {
	case len(d.Grid) > 0 && len(d.Series) == 0 && len(d.Samples) == 0:
		return KindHeatmap
	case len(d.Samples) > 0 && len(d.Series) == 0:
		return KindScatter
	case current == "" || current == KindHeatmap || current == KindScatter:
		return KindLine
	}
	return current
}

// Render draws the dataset as a w x h cell chart. progress in [0,1] selects
// an animation frame; 1 is the final chart.
func Render(kind Kind, d dataset.Dataset, cfg config.Config, w, h int, progress float64) (string, error) {
	if w < 2 || h < 1 {
		return "", errors.New("render: canvas too small")
	}
	if d.Empty() {
		return "", fmt.Errorf("render: %w: empty dataset", geom.ErrInvalidInput)
	}
	if kind == KindHeatmap {
		return renderHeatmap(d, cfg, w, h)
	}
	br := newBrailleBuf(w, h)
	// dots are addressed 0..n-1
	c := cfg.Canvas(float64(br.dotsW()-1), float64(br.dotsH()-1))

	var err error
	switch kind {
	case KindLine, KindArea:
		err = drawSeriesLine(br, d.SeriesOrDerived(), c, cfg, progress, kind == KindArea)
	case KindBar:
		err = drawBars(br, d.SeriesOrDerived(), c, cfg, progress)
	case KindPie, KindDonut:
		ratio := 0.0
		if kind == KindDonut {
			ratio = cfg.DonutRatio
		}
		err = drawSectors(br, d.SeriesOrDerived(), c, ratio, progress)
	case KindGauge:
		err = drawGauge(br, d.SeriesOrDerived(), c, cfg, progress)
	case KindScatter:
		err = drawScatter(br, d.SamplesOrDerived(), c, progress)
	default:
		return "", fmt.Errorf("render: unknown chart kind %q", kind)
	}
	if err != nil {
		return "", err
	}
	return strings.Join(br.toLines(palette), "\n"), nil
}

func drawSeriesLine(br *brailleBuf, s geom.Series, c geom.Canvas, cfg config.Config, progress float64, area bool) error {
	pts, err := geom.MapToCanvas(s, c)
	if err != nil {
		return err
	}
	zero, err := geom.ZeroLine(s, c)
	if err != nil {
		return err
	}
	if progress < 1 {
		if pts, err = geom.LerpPoints(geom.CollapsePoints(pts, zero), pts, progress); err != nil {
			return err
		}
	}
	path, err := geom.BuildPath(pts, geom.PathOptions{Mode: cfg.Mode(), Close: area, Baseline: zero})
	if err != nil {
		return err
	}
	outline := path.Flatten(8)
	if area {
		br.fillPolygon(outline, 0)
	}
	br.stroke(outline, 0)
	return nil
}

func drawBars(br *brailleBuf, s geom.Series, c geom.Canvas, cfg config.Config, progress float64) error {
	bars, err := geom.BuildBars(s, c, cfg.Gap)
	if err != nil {
		return err
	}
	for i, r := range bars {
		grown := r.Height * geom.Lerp(0, 1, progress)
		if r.Value >= 0 {
			r.Y += r.Height - grown
		}
		r.Height = grown
		br.fillRect(r, i)
	}
	return nil
}

func drawSectors(br *brailleBuf, s geom.Series, c geom.Canvas, ratio, progress float64) error {
	outer := c.Radius()
	sectors, err := geom.BuildSectors(s, outer*ratio, outer)
	if err != nil {
		return err
	}
	if progress < 1 {
		if sectors, err = geom.LerpSectors(geom.CollapseSectors(sectors), sectors, progress); err != nil {
			return err
		}
	}
	fillSectors(br, sectors, c.Center(), nil)
	return nil
}

// fillSectors paints every dot that falls inside a sector. colors overrides
// the per-sector palette index when set.
func fillSectors(br *brailleBuf, sectors []geom.Sector, center geom.Point, colors []int) {
	for y := 0; y < br.dotsH(); y++ {
		for x := 0; x < br.dotsW(); x++ {
			dx, dy := float64(x)-center.X, float64(y)-center.Y
			r, a := math.Hypot(dx, dy), math.Atan2(dy, dx)
			for i, sec := range sectors {
				if !sec.Contains(a, r) {
					continue
				}
				color := i
				if colors != nil {
					color = colors[i]
				}
				br.setPixel(x, y, color)
				break
			}
		}
	}
}

// gaugeRange derives the gauge scale from the series: the last finite datum
// on a scale from min(0, smallest) to the largest finite value.
func gaugeRange(s geom.Series) (last geom.Datum, lo, hi float64, err error) {
	sum, err := geom.Summarize(s.Values())
	if err != nil {
		return geom.Datum{}, 0, 0, err
	}
	for i := len(s) - 1; i >= 0; i-- {
		if geom.Finite(s[i].Value) {
			last = s[i]
			break
		}
	}
	return last, math.Min(0, sum.Min), sum.Max, nil
}

func drawGauge(br *brailleBuf, s geom.Series, c geom.Canvas, cfg config.Config, progress float64) error {
	last, lo, hi, err := gaugeRange(s)
	if err != nil {
		return err
	}
	value := last.Value
	// half circle resting on the bottom edge
	outer := math.Min((c.Right()-c.Left())/2, c.Bottom()-c.Top())
	center := geom.Point{X: c.Width / 2, Y: c.Bottom()}
	g, err := geom.BuildGauge(geom.Lerp(lo, value, progress), lo, hi, outer*cfg.DonutRatio, outer)
	if err != nil {
		return err
	}
	fillSectors(br, g[:1], center, []int{0})
	br.stroke(g[1].Path(center).Flatten(24), 1)
	return nil
}

func drawScatter(br *brailleBuf, samples []geom.Sample, c geom.Canvas, progress float64) error {
	pts, err := geom.MapSamples(samples, c)
	if err != nil {
		return err
	}
	for i, p := range pts {
		if !drawable(p) {
			continue
		}
		d := dot(p)
		for _, o := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			br.setPixel(d[0]+o[0], d[1]+o[1], i%len(palette))
		}
	}
	fit, err := geom.FitLinear(samples)
	if err != nil || fit.N < 2 || progress < 1 {
		return err
	}
	xb, yb, _ := geom.SampleBounds(samples)
	xb, yb = xb.Pad(c.Inset), yb.Pad(c.Inset)
	line := geom.TrendLine(fit, xb)
	br.stroke([]geom.Point{
		geom.ProjectSample(line[0], xb, yb, c),
		geom.ProjectSample(line[1], xb, yb, c),
	}, len(palette)-1)
	return nil
}

// renderHeatmap colors whole terminal cells; braille dots are too small to
// carry a ramp.
func renderHeatmap(d dataset.Dataset, cfg config.Config, w, h int) (string, error) {
	grid := d.GridOrDerived()
	cells, err := geom.BuildHeatmap(grid, geom.Canvas{Width: float64(w), Height: float64(h)}, cfg.Hue)
	if err != nil {
		return "", err
	}
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			glyph := " "
			for _, cell := range cells {
				if cell.Rect.Contains(cx, cy) {
					glyph = lipgloss.NewStyle().Background(lipgloss.Color(cell.Color.Hex())).Render("░")
					break
				}
			}
			sb.WriteString(glyph)
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n"), nil
}

// Legend describes the chart's categories, one line each.
func Legend(kind Kind, d dataset.Dataset, cfg config.Config) []string {
	s := d.SeriesOrDerived()
	switch kind {
	case KindPie, KindDonut:
		sectors, err := geom.BuildSectors(s, 0, 1)
		if err != nil {
			return nil
		}
		out := make([]string, len(sectors))
		for i, sec := range sectors {
			out[i] = swatch(i).Render("■") + fmt.Sprintf(" %s %.1f%%", sec.Label, sec.Percentage)
		}
		return out
	case KindGauge:
		last, lo, hi, err := gaugeRange(s)
		if err != nil {
			return nil
		}
		g, err := geom.BuildGauge(last.Value, lo, hi, 0, 1)
		if err != nil {
			return nil
		}
		return []string{fmt.Sprintf("%s %g of [%g, %g] (%.1f%%)", last.Label, last.Value, lo, hi, g[0].Percentage)}
	case KindHeatmap:
		sum, err := geom.SummarizeGrid(d.GridOrDerived())
		if err != nil {
			return nil
		}
		lo, hi := geom.ColorFor(sum.Min, sum.Min, sum.Max, cfg.Hue), geom.ColorFor(sum.Max, sum.Min, sum.Max, cfg.Hue)
		return []string{
			lipgloss.NewStyle().Foreground(lipgloss.Color(lo.Hex())).Render("■") + fmt.Sprintf(" %g", sum.Min),
			lipgloss.NewStyle().Foreground(lipgloss.Color(hi.Hex())).Render("■") + fmt.Sprintf(" %g", sum.Max),
		}
	case KindScatter:
		fit, err := geom.FitLinear(d.SamplesOrDerived())
		if err != nil {
			return nil
		}
		return []string{fmt.Sprintf("y = %.3fx %+.3f  r=%.3f", fit.Slope, fit.Intercept, fit.Correlation)}
	case KindBar:
		out := make([]string, len(s))
		for i, v := range s {
			out[i] = swatch(i).Render("■") + fmt.Sprintf(" %s %g", v.Label, v.Value)
		}
		return out
	}
	return nil
}
