package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chartkit/internal/geom"
)

// LoadCSV reads a CSV file. See ReadCSV for the accepted layouts.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV decodes one of three layouts, decided from the header row
// (case-insensitive). Series and sample rows whose numbers are missing,
// malformed, NaN or infinite are skipped; a grid must be fully finite.
//   - x and y columns: scatter samples, with an optional label column;
//   - a value|y|count|amount|total column: a series, with an optional
//     label|name|category|month|x column;
//   - no recognised header, every cell numeric: a grid (heatmap).
func ReadCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(recs) == 0 {
		return Dataset{}, errors.New("empty csv")
	}
	idxLabel, idxValue, idxX, idxY := -1, -1, -1, -1
	first := func(idx *int, i int) {
		if *idx == -1 {
			*idx = i
		}
	}
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "label", "name", "category", "month":
			first(&idxLabel, i)
		case "value", "count", "amount", "total":
			first(&idxValue, i)
		case "x":
			first(&idxX, i)
		case "y":
			first(&idxY, i)
		}
	}

	var d Dataset
	switch {
	case idxX != -1 && idxY != -1:
		for _, row := range recs[1:] {
			x, okx := cellFloat(row, idxX)
			y, oky := cellFloat(row, idxY)
			if !okx || !oky {
				continue
			}
			d.Samples = append(d.Samples, geom.Sample{X: x, Y: y, Label: cell(row, idxLabel)})
		}
		if len(d.Samples) == 0 {
			return Dataset{}, errors.New("csv: no valid samples parsed")
		}
	case idxValue != -1 || idxY != -1:
		if idxValue == -1 {
			idxValue = idxY
		}
		if idxLabel == -1 {
			idxLabel = idxX
		}
		for i, row := range recs[1:] {
			v, ok := cellFloat(row, idxValue)
			if !ok {
				continue
			}
			label := cell(row, idxLabel)
			if label == "" {
				label = rowLabel(i)
			}
			d.Series = append(d.Series, geom.Datum{Label: label, Value: v})
		}
		if len(d.Series) == 0 {
			return Dataset{}, errors.New("csv: no valid values parsed")
		}
	default:
		rows := recs
		if isHeader(recs[0]) {
			rows = recs[1:]
		}
		for _, row := range rows {
			vs, ok := numericRow(row)
			if !ok {
				return Dataset{}, errors.New("csv: value column not found or grid cell not a finite number")
			}
			d.Grid = append(d.Grid, vs)
		}
		if len(d.Grid) == 0 {
			return Dataset{}, errors.New("csv: no valid rows parsed")
		}
	}
	return d, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellFloat parses a finite number; "NaN" and "Inf" cells count as
// non-numeric.
func cellFloat(row []string, i int) (float64, bool) {
	v, err := parseNumber(cell(row, i))
	return v, err == nil
}

// parseNumber parses s as a finite float.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !geom.Finite(v) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// isHeader reports whether some cell of row is not a number at all. NaN and
// Inf parse, so a grid row holding them is not mistaken for a header.
func isHeader(row []string) bool {
	for i := range row {
		if _, err := strconv.ParseFloat(cell(row, i), 64); err != nil {
			return true
		}
	}
	return false
}

func numericRow(row []string) ([]float64, bool) {
	vs := make([]float64, 0, len(row))
	for i := range row {
		v, ok := cellFloat(row, i)
		if !ok {
			return nil, false
		}
		vs = append(vs, v)
	}
	return vs, len(vs) > 0
}
