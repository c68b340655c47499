package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const legendWidth = 24

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, chartW, chartH := m.layout()
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, chartH-2)
	}

	// Header
	title := " chartkit ─ " + string(m.kind)
	if m.data.Title != "" {
		title += " ─ " + m.data.Title
	}
	header := titleStyle.Render(title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var chartView string
	switch {
	case m.showTable:
		// Render the data table centered in the chart area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(chartW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(chartH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(chartW, chartH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(chartW)
		m.ta.SetHeight(min(chartH, 12))
		chartView = lipgloss.NewStyle().Width(chartW).Height(chartH).Render(m.ta.View())
	default:
		chartView = m.renderChart(chartW, chartH)
	}

	// Stats popup overlays the left of the body
	popup := ""
	if m.inspectPopup != "" && !m.showTable {
		maxPopupW := max(20, min(56, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, chartH, lipgloss.Left, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	} else {
		body = chartView
	}
	if popup != "" {
		body = popup
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	hover := ""
	if m.hovering && m.hoverLabel != "" {
		hover = hoverStyle.Render("  " + m.hoverLabel + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderChart draws the chart with its legend on the right when there is
// room for both.
func (m Model) renderChart(w, h int) string {
	if m.data.Empty() {
		msg := dimStyle.Render("no data: Tab to pick a file, p to paste")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
	}
	legend := Legend(m.kind, m.data, m.cfg)
	plotW := m.plotWidth(w)
	chart, err := Render(m.kind, m.data, m.cfg, plotW, h, m.progress())
	if err != nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("render error: "+err.Error()))
	}
	chart = lipgloss.NewStyle().Width(plotW).Height(h).Render(chart)
	if plotW == w {
		return chart
	}
	rows := make([]string, 0, len(legend))
	for _, l := range legend {
		rows = append(rows, padRight(l, legendWidth-lipgloss.Width(l)))
	}
	side := lipgloss.NewStyle().Width(legendWidth).Height(h).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, chart, side)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"k kind",
		"s smooth",
		"r replay",
		"Tab files",
		"Enter open",
		"p paste",
		"t table",
		"i stats",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
