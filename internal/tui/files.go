package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chartkit/internal/dataset"
	"chartkit/internal/logger"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !dataset.Supported(name) {
			logger.Debug("skipping entry", zap.String("name", name), zap.Bool("dir", e.IsDir()))
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a dataset file into the model and starts the reveal
// animation.
func (m *Model) loadPath(p string) tea.Cmd {
	d, err := dataset.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		logger.Warn("load failed", zap.String("path", p), zap.Error(err))
		return nil
	}
	m.selPath = p
	m.status = "loaded: " + filepath.Base(p) + "  " + describe(d)
	logger.Info("dataset loaded",
		zap.String("path", p),
		zap.Int("series", len(d.Series)),
		zap.Int("grid_rows", len(d.Grid)),
		zap.Int("samples", len(d.Samples)))
	return m.setData(d)
}

// setData swaps the dataset, picks a chart kind suited to it when the data
// shape changed, and restarts the animation.
func (m *Model) setData(d dataset.Dataset) tea.Cmd {
	m.data = d
	m.inspectPopup = ""
	m.kind = KindFor(d, m.kind)
	// If the table is currently shown, verify availability for the new dataset
	if m.showTable {
		m.refreshTable()
	}
	return m.startAnimation()
}

func describe(d dataset.Dataset) string {
	return fmt.Sprintf("counts: series=%d grid=%d samples=%d", len(d.Series), len(d.Grid), len(d.Samples))
}
