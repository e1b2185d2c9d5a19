// Package tui renders an interactive token sheet for every loaded theme.
// The chrome itself is styled by the theme under the cursor, so switching
// themes restyles the entire screen.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/glazekit/glaze/internal/registry"
	"github.com/glazekit/glaze/pkg/styles"
	"github.com/glazekit/glaze/pkg/theme"
)

// ReloadMsg replaces the entry for a watched theme file after it changed on
// disk. A non-nil Err keeps the previous theme and surfaces the problem in
// the footer.
type ReloadMsg struct {
	Entry registry.Entry
	Err   error
}

// Model contains the Bubbletea state for the theme preview.
type Model struct {
	entries []registry.Entry
	cursor  int

	styles   styles.Styles
	viewport viewport.Model

	width   int
	height  int
	ready   bool
	watched string
	status  string
}

// NewModel constructs a preview model over the given entries, starting on
// the named theme. watched is the file path hot reload events refer to,
// empty when not watching.
func NewModel(entries []registry.Entry, start string, watched string) Model {
	m := Model{
		entries: entries,
		watched: watched,
		width:   80,
		height:  24,
	}

	for i, entry := range entries {
		if entry.Name == start {
			m.cursor = i
			break
		}
	}

	m.styles = styles.Build(m.current().Theme)
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns the entry under the cursor.
func (m Model) Current() registry.Entry {
	return m.current()
}

func (m Model) current() registry.Entry {
	if len(m.entries) == 0 {
		return registry.Entry{Name: "light", Source: registry.SourceBuiltin, Theme: theme.Default()}
	}
	return m.entries[m.cursor]
}

// moveCursor advances the cursor with wrapping and restyles the screen.
func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}

	m.cursor = (m.cursor + delta + len(m.entries)) % len(m.entries)
	m.restyle()
}

// setCursor jumps to a specific index when it exists.
func (m *Model) setCursor(index int) {
	if index >= 0 && index < len(m.entries) {
		m.cursor = index
		m.restyle()
	}
}

// jumpTo moves the cursor to the named theme and reports whether it exists.
func (m *Model) jumpTo(name string) bool {
	for i, entry := range m.entries {
		if entry.Name == name {
			m.cursor = i
			m.restyle()
			return true
		}
	}
	return false
}

// restyle rebuilds the style set and the token sheet for the current theme.
func (m *Model) restyle() {
	m.styles = styles.Build(m.current().Theme)
	if m.ready {
		m.viewport.SetContent(m.sheet())
	}
}
