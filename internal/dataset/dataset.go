// Package dataset loads chartable data from files and pasted text.
package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chartkit/internal/geom"
)

// Dataset holds whatever a source provided: a labelled series, a numeric
// grid, x/y samples, or several of them.
type Dataset struct {
	Title   string
	Series  geom.Series
	Grid    [][]float64
	Samples []geom.Sample
}

func (d Dataset) Empty() bool {
	return len(d.Series) == 0 && len(d.Grid) == 0 && len(d.Samples) == 0
}

// SeriesOrDerived returns the series, falling back to the sample y values or
// the grid row sums so every chart kind has something to draw.
func (d Dataset) SeriesOrDerived() geom.Series {
	switch {
	case len(d.Series) > 0:
		return d.Series
	case len(d.Samples) > 0:
		s := make(geom.Series, len(d.Samples))
		for i, p := range d.Samples {
			s[i] = geom.Datum{Label: p.Label, Value: p.Y}
		}
		return s
	case len(d.Grid) > 0:
		s := make(geom.Series, len(d.Grid))
		for i, row := range d.Grid {
			var sum float64
			for _, v := range row {
				sum += v
			}
			s[i] = geom.Datum{Label: rowLabel(i), Value: sum}
		}
		return s
	}
	return nil
}

// SamplesOrDerived returns the samples, falling back to the series with the
// datum index as x.
func (d Dataset) SamplesOrDerived() []geom.Sample {
	if len(d.Samples) > 0 {
		return d.Samples
	}
	s := d.SeriesOrDerived()
	out := make([]geom.Sample, len(s))
	for i, v := range s {
		out[i] = geom.Sample{X: float64(i), Y: v.Value, Label: v.Label}
	}
	return out
}

// GridOrDerived returns the grid, falling back to the series as one row.
func (d Dataset) GridOrDerived() [][]float64 {
	if len(d.Grid) > 0 {
		return d.Grid
	}
	s := d.SeriesOrDerived()
	if len(s) == 0 {
		return nil
	}
	return [][]float64{s.Values()}
}

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".json", ".yaml", ".yml", ".txt"}

// Supported reports whether Load understands the file's extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a dataset, choosing the decoder from the file extension.
func Load(path string) (Dataset, error) {
	var (
		d   Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		d, err = LoadCSV(path)
	case ".json", ".yaml", ".yml":
		d, err = LoadDocument(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			d, err = Parse(string(data))
		}
	default:
		return Dataset{}, errors.New("unsupported file: " + filepath.Ext(path))
	}
	if err != nil {
		return Dataset{}, err
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

func rowLabel(i int) string {
	return "#" + strconv.Itoa(i+1)
}
