package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case frameMsg:
		if !m.animating() {
			return m, nil
		}
		m.frame++
		if m.animating() {
			return m, tick()
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "k", " ":
			m.kind = m.kind.next()
			m.status = "chart: " + string(m.kind)
			return m, m.startAnimation()
		case "s":
			if m.cfg.Mode() == geom.Quadratic {
				m.cfg.Smoothing = geom.Linear.String()
			} else {
				m.cfg.Smoothing = geom.Quadratic.String()
			}
			m.status = "smoothing: " + m.cfg.Smoothing
		case "r":
			return m, m.startAnimation()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			m.inspectPopup = strings.Join(m.statsLines(), "\n")
			m.status = "stats popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					return m, m.loadPath(it.path)
				}
			}
		}
		if m.showTable {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := dataset.Parse(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		d.Title = "pasted"
		m.selPath = ""
		m.pasteMode = false
		m.ta.Blur()
		cmd := m.setData(d)
		m.status = "rendered paste  " + describe(d)
		return m, cmd
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// layout returns the chart origin and size; it must match View.
func (m Model) layout() (originX, originY, w, h int) {
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	return sw, headerHeight, max(10, contentWidth-sw), contentHeight
}

// plotWidth is the width the chart itself is drawn at inside a chart area
// of w cells, leaving room for the legend when one fits.
func (m Model) plotWidth(w int) int {
	if m.data.Empty() || w <= legendWidth*2 || len(Legend(m.kind, m.data, m.cfg)) == 0 {
		return w
	}
	return w - legendWidth
}

// updateHover tracks the datum under the mouse.
func (m *Model) updateHover(x, y int) {
	ox, oy, w, h := m.layout()
	w = m.plotWidth(w)
	chartHidden := m.showTable || m.pasteMode || m.inspectPopup != ""
	if x < ox || x >= ox+w || y < oy || y >= oy+h || m.data.Empty() || chartHidden {
		m.hovering = false
		m.hoverLabel = ""
		return
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = x-ox, y-oy
	label, ok := m.hitTest(m.hoverCellX, m.hoverCellY, w, h)
	if !ok {
		m.hoverLabel = ""
		return
	}
	m.hoverLabel = label
}

// hitTest names the datum drawn nearest to cell (cx, cy) of a w x h chart.
func (m Model) hitTest(cx, cy, w, h int) (string, bool) {
	mx, my := float64(cx*2+1), float64(cy*4+2)
	c := m.cfg.Canvas(float64(w*2-1), float64(h*4-1))
	switch m.kind {
	case KindPie, KindDonut:
		sectors, err := geom.BuildSectors(m.data.SeriesOrDerived(), 0, c.Radius())
		if err != nil {
			return "", false
		}
		center := c.Center()
		dx, dy := mx-center.X, my-center.Y
		r, a := math.Hypot(dx, dy), math.Atan2(dy, dx)
		for _, s := range sectors {
			if s.Contains(a, r) {
				return fmt.Sprintf("%s = %g (%.1f%%)", s.Label, s.Value, s.Percentage), true
			}
		}
		return "", false
	case KindBar:
		bars, err := geom.BuildBars(m.data.SeriesOrDerived(), c, m.cfg.Gap)
		if err != nil {
			return "", false
		}
		for _, b := range bars {
			if mx >= b.X && mx <= b.X+b.Width {
				return fmt.Sprintf("%s = %g", b.Label, b.Value), true
			}
		}
		return "", false
	case KindGauge:
		last, _, _, err := gaugeRange(m.data.SeriesOrDerived())
		if err != nil {
			return "", false
		}
		return fmt.Sprintf("%s = %g", last.Label, last.Value), true
	case KindHeatmap:
		cells, err := geom.BuildHeatmap(m.data.GridOrDerived(), geom.Canvas{Width: float64(w), Height: float64(h)}, m.cfg.Hue)
		if err != nil {
			return "", false
		}
		for _, cell := range cells {
			if cell.Rect.Contains(float64(cx)+0.5, float64(cy)+0.5) {
				return fmt.Sprintf("[%d,%d] = %g", cell.Row, cell.Col, cell.Rect.Value), true
			}
		}
		return "", false
	}

	var (
		pts []geom.Point
		err error
	)
	if m.kind == KindScatter {
		pts, err = geom.MapSamples(m.data.SamplesOrDerived(), c)
	} else {
		pts, err = geom.MapToCanvas(m.data.SeriesOrDerived(), c)
	}
	if err != nil {
		return "", false
	}
	best, bestD := -1, math.Inf(1)
	for i, p := range pts {
		if d := math.Hypot(p.X-mx, p.Y-my); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	p := pts[best]
	return fmt.Sprintf("%s = %g", p.Label, p.Value), true
}

// statsLines summarises the current dataset for the stats popup.
func (m Model) statsLines() []string {
	if m.data.Empty() {
		return []string{"no data loaded"}
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	lines := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("title: %s", m.data.Title),
		describe(m.data),
	}
	var (
		sum geom.Summary
		err error
	)
	if m.kind == KindHeatmap {
		sum, err = geom.SummarizeGrid(m.data.GridOrDerived())
	} else {
		sum, err = geom.Summarize(m.data.SeriesOrDerived().Values())
	}
	if err == nil {
		lines = append(lines, summaryLine(sum))
	}
	if fit, err := geom.FitLinear(m.data.SamplesOrDerived()); err == nil {
		lines = append(lines,
			fmt.Sprintf("trend: y = %.4gx %+.4g", fit.Slope, fit.Intercept),
			fmt.Sprintf("correlation: %.4f  r²: %.4f", fit.Correlation, fit.RSquared))
	}
	return lines
}

func summaryLine(s geom.Summary) string {
	return fmt.Sprintf("min=%g max=%g sum=%g mean=%.4g n=%d", s.Min, s.Max, s.Sum, s.Mean, s.Count)
}
