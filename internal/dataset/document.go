package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"chartkit/internal/geom"
)

// document is the on-disk shape of JSON and YAML datasets. JSON is read
// through the YAML decoder, which accepts it as a subset.
type document struct {
	Title  string `yaml:"title"`
	Series []struct {
		Label string   `yaml:"label"`
		Value *float64 `yaml:"value"`
	} `yaml:"series"`
	Values  map[string]float64 `yaml:"values"`
	Grid    [][]float64        `yaml:"grid"`
	Samples []struct {
		X     float64 `yaml:"x"`
		Y     float64 `yaml:"y"`
		Label string  `yaml:"label"`
	} `yaml:"samples"`
}

// LoadDocument reads a JSON or YAML dataset file.
func LoadDocument(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	return ReadDocument(f)
}

// ReadDocument decodes a dataset document:
//
//	title: Revenue
//	series:
//	  - {label: Jan, value: 10}
//	grid: [[1, 2], [3, 4]]
//	samples:
//	  - {x: 1, y: 3.5}
//
// A series entry without a value is rejected, as is any .nan or .inf value; "values" is a label to value
// mapping accepted when "series" is absent, in label order.
func ReadDocument(r io.Reader) (Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, errors.New("empty document")
		}
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	d := Dataset{Title: doc.Title, Grid: doc.Grid}
	for i, s := range doc.Series {
		if s.Value == nil {
			return Dataset{}, fmt.Errorf("series entry %d: missing value", i+1)
		}
		label := s.Label
		if label == "" {
			label = rowLabel(i)
		}
		d.Series = append(d.Series, geom.Datum{Label: label, Value: *s.Value})
	}
	if len(d.Series) == 0 && len(doc.Values) > 0 {
		d.Series = seriesFromMap(doc.Values)
	}
	for _, s := range doc.Samples {
		d.Samples = append(d.Samples, geom.Sample{X: s.X, Y: s.Y, Label: s.Label})
	}
	if d.Empty() {
		return Dataset{}, errors.New("no series, grid or samples found")
	}
	if err := checkFinite(d); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

func checkFinite(d Dataset) error {
	for _, v := range d.Series {
		if !geom.Finite(v.Value) {
			return fmt.Errorf("series %q: value is not a finite number", v.Label)
		}
	}
	for i, row := range d.Grid {
		for j, v := range row {
			if !geom.Finite(v) {
				return fmt.Errorf("grid[%d][%d]: not a finite number", i, j)
			}
		}
	}
	for i, s := range d.Samples {
		if !geom.Finite(s.X) || !geom.Finite(s.Y) {
			return fmt.Errorf("sample %d: not a finite number", i+1)
		}
	}
	return nil
}
