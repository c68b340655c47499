package tui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chartkit/internal/geom"
)

func TestBrailleDots(t *testing.T) {
	tests := []struct {
		name   string
		mx, my int
		want   rune
	}{
		{"top left", 0, 0, '⠁'},
		{"top right", 1, 0, '⠈'},
		{"third row left", 0, 2, '⠄'},
		{"bottom left", 0, 3, '⡀'},
		{"bottom right", 1, 3, '⢀'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrailleBuf(1, 1)
			b.setPixel(tt.mx, tt.my, -1)
			assert.Equal(t, []string{string(tt.want)}, b.toLines(nil))
		})
	}
}

func TestBrailleOutOfRangeIgnored(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(-1, 0, 0)
	b.setPixel(4, 0, 0)
	b.setPixel(0, 4, 0)
	assert.Equal(t, []string{"  "}, b.toLines(nil))
}

func TestDrawLineMicro(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLineMicro(0, 0, 3, 0, -1)
	assert.Equal(t, []string{"⠉⠉"}, b.toLines(nil))

	b = newBrailleBuf(1, 1)
	b.drawLineMicro(0, 0, 0, 3, -1)
	assert.Equal(t, []string{"⡇"}, b.toLines(nil))
}

func TestStrokeSinglePoint(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.stroke([]geom.Point{{X: 1.2, Y: 2.6}}, -1)
	// (1, 3) is the bottom right dot
	assert.Equal(t, []string{"⢀"}, b.toLines(nil))
}

func TestFillRect(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.fillRect(geom.Rect{X: 0, Y: 0, Width: 1, Height: 3}, 0)
	assert.Equal(t, []string{"⣿ ", "  "}, b.toLines(nil))
}

func TestFillPolygon(t *testing.T) {
	b := newBrailleBuf(4, 2)
	square := []geom.Point{{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 7, Y: 7}, {X: 0, Y: 7}}
	b.fillPolygon(square, -1)
	lines := b.toLines(nil)
	// every row from 0 to 6 is filled across the full width
	assert.Equal(t, "⣿⣿⣿⣿", lines[0])
	assert.Equal(t, "⠿⠿⠿⠿", lines[1])
}

func TestStrokeBreaksAtNonFinite(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.stroke([]geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: math.NaN()}, {X: 3, Y: 0}}, -1)
	assert.Equal(t, []string{"⠁⠈"}, b.toLines(nil))

	b = newBrailleBuf(2, 1)
	b.stroke([]geom.Point{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}, {X: 1e300, Y: 0}}, -1)
	assert.Equal(t, []string{"⠁ "}, b.toLines(nil))

	b.fillRect(geom.Rect{X: math.NaN(), Y: 0, Width: 1, Height: 1}, 0)
	b.fillPolygon([]geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 1, Y: 1}}, 0)
	assert.Equal(t, []string{"⠁ "}, b.toLines(nil))
}
