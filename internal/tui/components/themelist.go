package components

import (
	"strings"

	"github.com/glazekit/glaze/pkg/styles"
)

// ThemeEntry represents a single selectable theme for rendering.
type ThemeEntry struct {
	Name   string
	Source string
	Active bool
}

// ThemeList renders the set of loaded themes with the active one marked.
type ThemeList struct {
	entries []ThemeEntry
}

// NewThemeList constructs a theme list component.
func NewThemeList(entries []ThemeEntry) ThemeList {
	clone := make([]ThemeEntry, len(entries))
	copy(clone, entries)
	return ThemeList{entries: clone}
}

// Entries returns the ordered theme entries.
func (l ThemeList) Entries() []ThemeEntry {
	clone := make([]ThemeEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// View renders the list as a single line, active entry badged.
func (l ThemeList) View(st styles.Styles) string {
	parts := make([]string, 0, len(l.entries))
	for _, entry := range l.entries {
		if entry.Active {
			parts = append(parts, st.Badge.Render(entry.Name))
			continue
		}
		parts = append(parts, st.Muted.Render(entry.Name))
	}
	return strings.Join(parts, " ")
}
