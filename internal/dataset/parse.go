package dataset

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chartkit/internal/geom"
)

// Parse reads pasted text, one entry per line. Lines look like
// "Jan, 10", "Jan 10", "Jan: 10" or a bare "10". When every line holds two
// or more numbers and nothing else the text is read as a grid instead.
// Blank lines and lines starting with '#' are skipped.
func Parse(text string) (Dataset, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, splitFields(line))
	}
	if len(rows) == 0 {
		return Dataset{}, errors.New("paste: empty")
	}

	if grid, ok := parseGrid(rows); ok {
		return Dataset{Grid: grid}, nil
	}
	var d Dataset
	for i, fs := range rows {
		last := fs[len(fs)-1]
		v, err := parseNumber(last)
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d: %q is not a finite number", i+1, last)
		}
		label := strings.Join(fs[:len(fs)-1], " ")
		if label == "" {
			label = rowLabel(i)
		}
		d.Series = append(d.Series, geom.Datum{Label: label, Value: v})
	}
	return d, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', ';', ':', '\t', ' ':
			return true
		}
		return false
	})
}

func parseGrid(rows [][]string) ([][]float64, bool) {
	grid := make([][]float64, 0, len(rows))
	for _, fs := range rows {
		if len(fs) < 2 {
			return nil, false
		}
		vs, ok := numericRow(fs)
		if !ok {
			return nil, false
		}
		grid = append(grid, vs)
	}
	return grid, true
}

func seriesFromMap(m map[string]float64) geom.Series {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}
	slices.Sort(labels)
	s := make(geom.Series, len(labels))
	for i, k := range labels {
		s[i] = geom.Datum{Label: k, Value: m[k]}
	}
	return s
}
