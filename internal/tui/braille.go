package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chartkit/internal/geom"
)

// brailleBuf is a monochrome dot grid, 2x4 dots per terminal cell, with one
// palette color per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	c    [][]int   // per-cell palette index, -1 for default
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]int, w)
		for j := range c[i] {
			c[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// dotBits maps a dot position inside a cell to its bit in the braille
// pattern, indexed [column][row].
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a dot at micro coords (2x4 per cell) and tags the cell with
// color.
func (b *brailleBuf) setPixel(mx, my, color int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	if color >= 0 {
		b.c[cy][cx] = color
	}
}

func (b *brailleBuf) dotsW() int { return b.w * 2 }
func (b *brailleBuf) dotsH() int { return b.h * 4 }

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, color int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stroke draws a polyline through canvas-space points. A point with a
// non-finite coordinate breaks the line; it is never rasterised.
func (b *brailleBuf) stroke(pts []geom.Point, color int) {
	run := 0
	for i, p := range pts {
		if !drawable(p) {
			run = 0
			continue
		}
		if run > 0 {
			a, c := dot(pts[i-1]), dot(p)
			b.drawLineMicro(a[0], a[1], c[0], c[1], color)
		} else if i+1 == len(pts) || !drawable(pts[i+1]) {
			d := dot(p)
			b.setPixel(d[0], d[1], color)
		}
		run++
	}
}

// fillPolygon fills a closed outline with the even-odd rule, one scanline
// per dot row.
func (b *brailleBuf) fillPolygon(pts []geom.Point, color int) {
	if len(pts) < 3 {
		return
	}
	ring := make([][2]int, 0, len(pts))
	for _, p := range pts {
		if drawable(p) {
			ring = append(ring, dot(p))
		}
	}
	if len(ring) < 3 {
		return
	}
	for y := 0; y < b.dotsH(); y++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(c[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(c[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1]; x++ {
				b.setPixel(x, y, color)
			}
		}
	}
}

func (b *brailleBuf) fillRect(r geom.Rect, color int) {
	if !drawable(geom.Point{X: r.X, Y: r.Y}) || !drawable(geom.Point{X: r.X + r.Width, Y: r.Y + r.Height}) {
		return
	}
	p0 := dot(geom.Point{X: r.X, Y: r.Y})
	p1 := dot(geom.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	for y := p0[1]; y <= p1[1]; y++ {
		for x := p0[0]; x <= p1[0]; x++ {
			b.setPixel(x, y, color)
		}
	}
}

// toLines renders the buffer, coloring each tagged cell from palette.
func (b *brailleBuf) toLines(palette []lipgloss.Style) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			ch := string(rune(0x2800 + int(mask)))
			if c := b.c[y][x]; c >= 0 && len(palette) > 0 {
				ch = palette[c%len(palette)].Render(ch)
			}
			sb.WriteString(ch)
		}
		out[y] = sb.String()
	}
	return out
}

// maxDot bounds the coordinates handed to the rasteriser; anything further
// out is off every terminal and would only make line walks long.
const maxDot = 1 << 20

// drawable reports whether p can be converted to dot coordinates.
func drawable(p geom.Point) bool {
	return geom.Finite(p.X) && geom.Finite(p.Y) && math.Abs(p.X) < maxDot && math.Abs(p.Y) < maxDot
}

// dot rounds a canvas-space point to the nearest dot.
func dot(p geom.Point) [2]int {
	return [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
}
