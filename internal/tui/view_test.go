package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewBeforeReady(t *testing.T) {
	m := NewModel(builtinEntries(), "light", "")

	require.Contains(t, m.View(), "loading preview")
}

func TestViewRendersTokenSheet(t *testing.T) {
	m := NewModel(builtinEntries(), "light", "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = updated.(Model)

	out := m.View()
	require.Contains(t, out, "glaze")
	require.Contains(t, out, "mode: light")
	require.Contains(t, out, "Palette")
	require.Contains(t, out, "primary")
	require.Contains(t, out, "#1976d2")
	require.Contains(t, out, "theme 1/2: light (builtin)")
	require.Contains(t, out, "q quit")
}

func TestViewShowsWatchTarget(t *testing.T) {
	m := NewModel(builtinEntries(), "light", "/themes/live.yaml")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = updated.(Model)

	require.Contains(t, m.View(), "watching /themes/live.yaml")
}

func TestSheetCoversEveryDimension(t *testing.T) {
	m := NewModel(builtinEntries(), "dark", "")
	m.width = 120

	out := m.sheet()
	require.Contains(t, out, "Palette")
	require.Contains(t, out, "Contrast")
	require.Contains(t, out, "Typography")
	require.Contains(t, out, "Layout")
	require.Contains(t, out, "Shadows")
	require.Contains(t, out, "#121212")
	require.Contains(t, out, "unit 8px")
	require.Contains(t, out, "xs:0")
	require.Contains(t, out, "radius 4px")
}
