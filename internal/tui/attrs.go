package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

// dataRows builds the data table for the current dataset: one row per
// datum with its share of the total, or one row per sample.
func dataRows(d dataset.Dataset) ([]string, [][]string) {
	if len(d.Samples) > 0 {
		cols := []string{"label", "x", "y"}
		rows := make([][]string, len(d.Samples))
		for i, s := range d.Samples {
			rows[i] = []string{s.Label, formatNum(s.X), formatNum(s.Y)}
		}
		return cols, rows
	}
	s := d.SeriesOrDerived()
	sectors, err := geom.BuildSectors(s, 0, 1)
	if err != nil {
		return nil, nil
	}
	cols := []string{"label", "value", "share"}
	rows := make([][]string, len(s))
	for i, v := range s {
		rows[i] = []string{v.Label, formatNum(v.Value), fmt.Sprintf("%.1f%%", sectors[i].Percentage)}
	}
	return cols, rows
}

// refreshTable rebuilds the table columns/rows from the current dataset
func (m *Model) refreshTable() {
	cols, rows := dataRows(m.data)
	// If there are no columns or rows, disable the table view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showTable = false
		m.status = "no rows for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for ci, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			w = max(w, len(r[ci])+2)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
