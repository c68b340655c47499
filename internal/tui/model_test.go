package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartkit/internal/config"
	"chartkit/internal/dataset"
	"chartkit/internal/geom"
)

func staticConfig() config.Config {
	cfg := config.Default()
	cfg.Animate = false
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelCyclesKind(t *testing.T) {
	m := New(staticConfig())
	assert.Equal(t, KindLine, m.kind)

	m = update(t, m, keys("k"))
	assert.Equal(t, KindArea, m.kind)
	assert.Equal(t, "chart: area", m.status)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, KindBar, m.kind)
}

func TestModelToggleSmoothing(t *testing.T) {
	m := New(staticConfig())
	m = update(t, m, keys("s"))
	assert.Equal(t, "linear", m.cfg.Smoothing)
	m = update(t, m, keys("s"))
	assert.Equal(t, "quadratic", m.cfg.Smoothing)
}

func TestModelPaste(t *testing.T) {
	m := New(staticConfig())
	m = update(t, m, keys("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("Jan, 10\nFeb, 20")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.pasteMode)
	assert.Equal(t, "pasted", m.data.Title)
	require.Len(t, m.data.Series, 2)
	assert.Equal(t, 20.0, m.data.Series[1].Value)

	m = update(t, m, keys("p"))
	m.ta.SetValue("not a number here x")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.pasteMode)
	assert.True(t, strings.HasPrefix(m.status, "paste error"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.pasteMode)
}

func TestModelLoadPathPicksKind(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, os.WriteFile(p, []byte("1,2,3\n4,5,6\n"), 0o644))

	m := NewWithPath(staticConfig(), p, "")
	assert.Equal(t, KindHeatmap, m.kind)
	assert.Equal(t, p, m.selPath)
	assert.Len(t, m.data.Grid, 2)

	m = NewWithPath(staticConfig(), p, KindBar)
	assert.Equal(t, KindBar, m.kind)

	m = NewWithPath(staticConfig(), filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.True(t, m.data.Empty())
	assert.True(t, strings.HasPrefix(m.status, "load error"))
}

func TestModelAnimation(t *testing.T) {
	cfg := config.Default()
	cfg.Frames = 2
	m := New(cfg)
	assert.Equal(t, 1.0, m.progress())

	m.setData(salesData())
	assert.True(t, m.animating())
	assert.Equal(t, 0.0, m.progress())

	m = update(t, m, frameMsg{})
	assert.Equal(t, 0.5, m.progress())
	m = update(t, m, frameMsg{})
	assert.False(t, m.animating())
	assert.Equal(t, 1.0, m.progress())
}

func TestModelStatsAndTable(t *testing.T) {
	m := New(staticConfig())
	assert.Equal(t, []string{"no data loaded"}, m.statsLines())

	m.setData(salesData())
	lines := m.statsLines()
	assert.Contains(t, lines, "name: <pasted>")
	assert.Contains(t, strings.Join(lines, "\n"), "min=10 max=20 sum=45")

	m = update(t, m, keys("i"))
	assert.NotEmpty(t, m.inspectPopup)
	m = update(t, m, keys("i"))
	assert.Empty(t, m.inspectPopup)

	m = update(t, m, keys("t"))
	assert.True(t, m.showTable)
	assert.Len(t, m.tbl.Rows(), 3)
}

func TestModelHitTest(t *testing.T) {
	m := New(staticConfig())
	m.setData(dataset.Dataset{Series: geom.Series{{Label: "A", Value: 1}, {Label: "B", Value: 1}}})
	m.kind = KindPie

	label, ok := m.hitTest(24, 5, 40, 10)
	require.True(t, ok)
	assert.Equal(t, "A = 1 (50.0%)", label)

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 13})
	m.updateHover(0, 0) // header row
	assert.False(t, m.hovering)
}

func TestModelView(t *testing.T) {
	m := New(staticConfig())
	assert.Empty(t, m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "no data")

	m.setData(salesData())
	view := m.View()
	assert.Contains(t, view, "chartkit")
	assert.Contains(t, view, "sales")
}

func TestModelHoverMatchesDrawnChart(t *testing.T) {
	m := New(staticConfig())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.setData(dataset.Dataset{Series: geom.Series{{Label: "A", Value: 1}, {Label: "B", Value: 1}}})
	m.kind = KindPie

	_, _, w, h := m.layout()
	require.Equal(t, 56, m.plotWidth(w))

	// left half of the pie, which is drawn 56 cells wide next to the legend
	m.updateHover(10, 1+h/2)
	assert.True(t, m.hovering)
	assert.Equal(t, "B = 1 (50.0%)", m.hoverLabel)

	// inside the plot but outside the pie
	m.updateHover(55, 1+h/2)
	assert.True(t, m.hovering)
	assert.Empty(t, m.hoverLabel)

	// over the legend
	m.updateHover(60, 1+h/2)
	assert.False(t, m.hovering)

	m = update(t, m, keys("t"))
	m.updateHover(10, 1+h/2)
	assert.False(t, m.hovering)
}

func TestModelHitTestNonFinite(t *testing.T) {
	m := New(staticConfig())
	m.setData(dataset.Dataset{Series: geom.Series{{Label: "a", Value: math.NaN()}, {Label: "b", Value: 2}}})
	for _, kind := range Kinds {
		m.kind = kind
		assert.NotPanics(t, func() { m.hitTest(5, 5, 40, 10) }, kind)
	}

	m.kind = KindLine
	label, ok := m.hitTest(5, 5, 40, 10)
	require.True(t, ok)
	assert.Equal(t, "b = 2", label)

	m.setData(dataset.Dataset{Series: geom.Series{{Label: "a", Value: math.NaN()}, {Label: "b", Value: math.Inf(-1)}}})
	m.kind = KindLine
	_, ok = m.hitTest(5, 5, 40, 10)
	assert.False(t, ok)
}
