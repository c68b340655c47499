package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// seriesColors is the categorical palette for bars, sectors and lines.
var seriesColors = []lipgloss.Color{
	"#60A5FA", "#F472B6", "#34D399", "#FBBF24", "#A78BFA", "#F87171", "#22D3EE", "#A3E635",
}

var palette = func() []lipgloss.Style {
	out := make([]lipgloss.Style, len(seriesColors))
	for i, c := range seriesColors {
		out[i] = lipgloss.NewStyle().Foreground(c)
	}
	return out
}()

func swatch(i int) lipgloss.Style {
	return palette[i%len(palette)]
}
