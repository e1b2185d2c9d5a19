package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glazekit/glaze/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if !m.ready {
		return m.styles.Muted.Render("loading preview...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("glaze")
	mode := m.styles.Muted.Render(fmt.Sprintf("mode: %s", m.current().Theme.Palette.Mode))

	entries := make([]components.ThemeEntry, 0, len(m.entries))
	for i, entry := range m.entries {
		entries = append(entries, components.ThemeEntry{
			Name:   entry.Name,
			Source: entry.Source.String(),
			Active: i == m.cursor,
		})
	}
	list := components.NewThemeList(entries).View(m.styles)

	rule := m.styles.Divider.Render(strings.Repeat("─", max(1, m.width)))

	top := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode)
	return lipgloss.JoinVertical(lipgloss.Left, top, list, rule)
}

func (m Model) renderFooter() string {
	entry := m.current()
	footer := components.NewFooter(components.FooterData{
		ThemeName: entry.Name,
		Source:    entry.Source.String(),
		Index:     m.cursor,
		Total:     len(m.entries),
		WatchPath: m.watched,
		Status:    m.status,
	})
	return m.styles.Help.Render(footer.View())
}
