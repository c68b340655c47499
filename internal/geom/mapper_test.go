package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas100 = Canvas{Width: 100, Height: 100, Padding: 10}

func TestMapToCanvas(t *testing.T) {
	t.Run("quarter peak", func(t *testing.T) {
		s := Series{{"Jan", 10}, {"Feb", 20}, {"Mar", 10}}
		pts, err := MapToCanvas(s, canvas100)
		require.NoError(t, err)
		require.Len(t, pts, 3)

		assert.Less(t, pts[1].Y, pts[0].Y)
		assert.Equal(t, pts[0].Y, pts[2].Y)
		assert.InDelta(t, 90, pts[0].Y, 1e-9)
		assert.InDelta(t, 10, pts[1].Y, 1e-9)
		assert.InDelta(t, 10, pts[0].X, 1e-9)
		assert.InDelta(t, 50, pts[1].X, 1e-9)
		assert.InDelta(t, 90, pts[2].X, 1e-9)
		assert.Equal(t, "Feb", pts[1].Label)
		assert.Equal(t, 20.0, pts[1].Value)
	})

	t.Run("output length follows input", func(t *testing.T) {
		for n := 1; n <= 12; n++ {
			s := make(Series, n)
			for i := range s {
				s[i] = Datum{Value: float64(i * i)}
			}
			pts, err := MapToCanvas(s, canvas100)
			require.NoError(t, err)
			assert.Len(t, pts, n)
		}
	})

	t.Run("flat series sits at mid height", func(t *testing.T) {
		s := Series{{"a", 7}, {"b", 7}, {"c", 7}, {"d", 7}}
		pts, err := MapToCanvas(s, canvas100)
		require.NoError(t, err)
		for _, p := range pts {
			assert.InDelta(t, 50, p.Y, 1e-9)
		}
	})

	t.Run("single datum at left padding", func(t *testing.T) {
		pts, err := MapToCanvas(Series{{"only", 3}}, canvas100)
		require.NoError(t, err)
		require.Len(t, pts, 1)
		assert.Equal(t, 10.0, pts[0].X)
		assert.InDelta(t, 50, pts[0].Y, 1e-9)
	})

	t.Run("inset keeps extremes off the edges", func(t *testing.T) {
		c := canvas100
		c.Inset = 0.1
		pts, err := MapToCanvas(Series{{"lo", 0}, {"hi", 10}}, c)
		require.NoError(t, err)
		assert.Greater(t, pts[1].Y, c.Top())
		assert.Less(t, pts[0].Y, c.Bottom())
	})

	t.Run("empty series is rejected", func(t *testing.T) {
		_, err := MapToCanvas(nil, canvas100)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestMapSamples(t *testing.T) {
	pts, err := MapSamples([]Sample{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 5}}, canvas100)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 10, Y: 90, Value: 0}, pts[0])
	assert.Equal(t, Point{X: 90, Y: 10, Value: 5}, pts[1])
	assert.InDelta(t, 50, pts[2].X, 1e-9)

	flat, err := MapSamples([]Sample{{X: 1, Y: 2}, {X: 1, Y: 3}}, canvas100)
	require.NoError(t, err)
	assert.InDelta(t, 50, flat[0].X, 1e-9)
	assert.InDelta(t, 50, flat[1].X, 1e-9)

	_, err = MapSamples(nil, canvas100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildBars(t *testing.T) {
	t.Run("positive values grow from the bottom", func(t *testing.T) {
		bars, err := BuildBars(Series{{"a", 5}, {"b", 10}}, canvas100, 0.2)
		require.NoError(t, err)
		require.Len(t, bars, 2)
		for _, b := range bars {
			assert.InDelta(t, 90, b.Y+b.Height, 1e-9)
			assert.InDelta(t, 32, b.Width, 1e-9)
		}
		assert.InDelta(t, 40, bars[0].Height, 1e-9)
		assert.InDelta(t, 80, bars[1].Height, 1e-9)
		assert.Less(t, bars[0].X, bars[1].X)
	})

	t.Run("negative values hang below zero", func(t *testing.T) {
		bars, err := BuildBars(Series{{"up", 10}, {"down", -10}}, canvas100, 0)
		require.NoError(t, err)
		assert.InDelta(t, 50, bars[0].Y+bars[0].Height, 1e-9)
		assert.InDelta(t, 50, bars[1].Y, 1e-9)
		assert.InDelta(t, 40, bars[1].Height, 1e-9)
	})

	t.Run("all zero bars are empty", func(t *testing.T) {
		bars, err := BuildBars(Series{{"a", 0}, {"b", 0}}, canvas100, 0)
		require.NoError(t, err)
		for _, b := range bars {
			assert.Zero(t, b.Height)
		}
	})

	_, err := BuildBars(Series{}, canvas100, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestZeroLine(t *testing.T) {
	y, err := ZeroLine(Series{{"a", -10}, {"b", 10}}, canvas100)
	require.NoError(t, err)
	assert.InDelta(t, 50, y, 1e-9)

	y, err = ZeroLine(Series{{"a", 5}, {"b", 10}}, canvas100)
	require.NoError(t, err)
	assert.Equal(t, canvas100.Bottom(), y)
}

func TestNonFiniteValuesAreMissing(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	t.Run("leading NaN", func(t *testing.T) {
		pts, err := MapToCanvas(Series{{"a", nan}, {"b", 1}, {"c", 2}}, canvas100)
		require.NoError(t, err)
		require.Len(t, pts, 2)
		assert.Equal(t, Point{X: 50, Y: 90, Label: "b", Value: 1}, pts[0])
		assert.Equal(t, Point{X: 90, Y: 10, Label: "c", Value: 2}, pts[1])
	})

	t.Run("position does not matter", func(t *testing.T) {
		lead, err := MapToCanvas(Series{{"a", nan}, {"b", 1}, {"c", 2}}, canvas100)
		require.NoError(t, err)
		mid, err := MapToCanvas(Series{{"b", 1}, {"a", nan}, {"c", 2}}, canvas100)
		require.NoError(t, err)
		require.Len(t, mid, 2)
		assert.Equal(t, lead[0].Y, mid[0].Y)
		assert.Equal(t, lead[1].Y, mid[1].Y)
		for _, p := range append(lead, mid...) {
			assert.True(t, Finite(p.X) && Finite(p.Y))
		}
	})

	t.Run("infinities", func(t *testing.T) {
		s := Series{{"lo", -inf}, {"a", 0}, {"b", 10}, {"hi", inf}}
		b, ok := s.Bounds()
		require.True(t, ok)
		assert.Equal(t, Bounds{Min: 0, Max: 10}, b)

		zero, err := ZeroLine(s, canvas100)
		require.NoError(t, err)
		assert.InDelta(t, 90, zero, 1e-9)

		bars, err := BuildBars(s, canvas100, 0)
		require.NoError(t, err)
		require.Len(t, bars, 4)
		assert.Zero(t, bars[0].Height)
		assert.Zero(t, bars[3].Height)
		assert.InDelta(t, 90, bars[3].Y, 1e-9)
	})

	t.Run("nothing finite is rejected", func(t *testing.T) {
		s := Series{{"a", nan}, {"b", inf}}
		_, err := MapToCanvas(s, canvas100)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = ZeroLine(s, canvas100)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = BuildBars(s, canvas100, 0.2)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = MapSamples([]Sample{{X: nan, Y: 1}}, canvas100)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = FitLinear([]Sample{{X: 1, Y: inf}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("samples", func(t *testing.T) {
		samples := []Sample{{X: nan, Y: 100}, {X: 0, Y: 0}, {X: 10, Y: 5}, {X: 3, Y: -inf}}
		xb, yb, ok := SampleBounds(samples)
		require.True(t, ok)
		assert.Equal(t, Bounds{Min: 0, Max: 10}, xb)
		assert.Equal(t, Bounds{Min: 0, Max: 5}, yb)

		pts, err := MapSamples(samples, canvas100)
		require.NoError(t, err)
		assert.Equal(t, []Point{{X: 10, Y: 90, Value: 0}, {X: 90, Y: 10, Value: 5}}, pts)
	})
}
