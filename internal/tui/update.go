package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
		bodyHeight := msg.Height - chrome
		if bodyHeight < 1 {
			bodyHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.viewport.SetContent(m.sheet())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ReloadMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.Err)
			return m, nil
		}

		for i := range m.entries {
			if m.entries[i].Path == msg.Entry.Path {
				m.entries[i] = msg.Entry
				if i == m.cursor {
					m.restyle()
				}
				m.status = fmt.Sprintf("reloaded %s", time.Now().Format("15:04:05"))
				return m, nil
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Cycle themes
	case "right", "l", "tab":
		m.moveCursor(1)
		return m, nil

	case "left", "h", "shift+tab":
		m.moveCursor(-1)
		return m, nil

	// Jump straight to the builtin dark theme
	case "d":
		m.jumpTo("dark")
		return m, nil

	// Direct selection with number keys
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.setCursor(int(msg.String()[0] - '1'))
		return m, nil

	// Clear the status line
	case "x", "esc":
		m.status = ""
		return m, nil
	}

	// Everything else scrolls the token sheet.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
