package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"chartkit/internal/config"
	"chartkit/internal/dataset"
)

const frameInterval = 40 * time.Millisecond

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	cfg    config.Config

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Data
	data dataset.Dataset
	kind Kind

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// stats popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverLabel string

	// data table
	showTable bool
	tbl       table.Model

	// reveal animation
	frame int
}

type frameMsg struct{}

func New(cfg config.Config) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "chartkit ready",
		cfg:         cfg,
		kind:        KindLine,
		frame:       cfg.Frames,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste data here, one \"label, value\" per line or rows of numbers for a heatmap. Press Ctrl+S to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.Config, path string, kind Kind) Model {
	m := New(cfg)
	m.loadPath(path)
	if kind != "" {
		m.kind = kind
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.animating() {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) startAnimation() tea.Cmd {
	if !m.cfg.Animate {
		m.frame = m.cfg.Frames
		return nil
	}
	m.frame = 0
	return tick()
}

func (m Model) animating() bool {
	return m.cfg.Animate && m.frame < m.cfg.Frames
}

// progress is the position of the reveal animation in [0,1].
func (m Model) progress() float64 {
	if m.cfg.Frames <= 0 {
		return 1
	}
	return clampProgress(float64(m.frame) / float64(m.cfg.Frames))
}
