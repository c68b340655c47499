package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorForMonotonic(t *testing.T) {
	for _, hue := range []float64{0, 120, 210, 330, -30, 720} {
		prev := ColorFor(0, 0, 100, hue)
		for v := 1.0; v <= 100; v++ {
			c := ColorFor(v, 0, 100, hue)
			assert.Less(t, c.Lightness, prev.Lightness, "hue %v value %v", hue, v)
			assert.Greater(t, c.Alpha, prev.Alpha, "hue %v value %v", hue, v)
			prev = c
		}
	}
}

func TestColorForClamps(t *testing.T) {
	lo := ColorFor(-50, 0, 10, 200)
	hi := ColorFor(500, 0, 10, 200)
	assert.Equal(t, ColorFor(0, 0, 10, 200), lo)
	assert.Equal(t, ColorFor(10, 0, 10, 200), hi)
	assert.Zero(t, lo.Intensity)
	assert.Equal(t, 1.0, hi.Intensity)
	assert.Equal(t, 1.0, hi.Alpha)
}

func TestColorForFlatRange(t *testing.T) {
	mid := ColorFor(5, 5, 5, 90)
	assert.Equal(t, 0.5, mid.Intensity)
	assert.Equal(t, mid, ColorFor(-1, 5, 5, 90))
	assert.Equal(t, mid, ColorFor(1e6, 5, 5, 90))
}

func TestColorHex(t *testing.T) {
	c := ColorFor(10, 0, 10, 0)
	hex := c.Hex()
	assert.True(t, strings.HasPrefix(hex, "#"))
	assert.Len(t, hex, 7)
	r, g, _ := c.RGB255()
	assert.Greater(t, r, g)
	assert.True(t, strings.HasPrefix(c.RGBA(), "rgba("))
}

func TestBuildHeatmap(t *testing.T) {
	grid := [][]float64{{1, 2, 3}, {4, 5}}
	cells, err := BuildHeatmap(grid, canvas100, 20)
	require.NoError(t, err)
	require.Len(t, cells, 5)

	first, last := cells[0], cells[4]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 1, last.Row)
	assert.Equal(t, 1, last.Col)
	assert.InDelta(t, 80.0/3, first.Rect.Width, 1e-9)
	assert.InDelta(t, 40, first.Rect.Height, 1e-9)
	assert.InDelta(t, 50, last.Rect.Y, 1e-9)
	assert.Zero(t, first.Color.Intensity)
	assert.Equal(t, 1.0, last.Color.Intensity)

	_, err = BuildHeatmap([][]float64{{}, {}}, canvas100, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
