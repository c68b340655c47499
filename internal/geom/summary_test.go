package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeGrid(t *testing.T) {
	s, err := SummarizeGrid([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Summary{Min: 1, Max: 4, Sum: 10, Mean: 2.5, Count: 4}, s)

	ragged, err := SummarizeGrid([][]float64{{5}, {}, {-1, 2, 9}})
	require.NoError(t, err)
	assert.Equal(t, -1.0, ragged.Min)
	assert.Equal(t, 9.0, ragged.Max)
	assert.Equal(t, 4, ragged.Count)
	assert.Equal(t, Bounds{Min: -1, Max: 9}, ragged.Bounds())
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, Summary{Min: 7, Max: 7, Sum: 7, Mean: 7, Count: 1}, s)

	s, err = Summarize([]float64{math.NaN(), 2, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 2, s.Count)

	s, err = Summarize([]float64{math.Inf(1), 1, math.Inf(-1), 3})
	require.NoError(t, err)
	assert.Equal(t, Summary{Min: 1, Max: 3, Sum: 4, Mean: 2, Count: 2}, s)
}

func TestSummarizeEmpty(t *testing.T) {
	for name, grid := range map[string][][]float64{
		"nil":        nil,
		"empty rows": {{}, {}},
		"only NaN":   {{math.NaN()}},
		"only Inf":   {{math.Inf(1), math.Inf(-1)}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := SummarizeGrid(grid)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
