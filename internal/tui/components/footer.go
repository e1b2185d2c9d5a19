package components

import (
	"fmt"
	"strings"
)

// FooterData aggregates state for the preview footer.
type FooterData struct {
	ThemeName string
	Source    string
	Index     int
	Total     int
	WatchPath string
	Status    string
}

// Footer renders the bottom status area of the preview.
type Footer struct {
	data FooterData
}

// NewFooter creates a new Footer component.
func NewFooter(data FooterData) Footer {
	return Footer{data: data}
}

// View renders the footer. Styling is left to the caller.
func (f Footer) View() string {
	var lines []string

	if f.data.ThemeName != "" {
		lines = append(lines, fmt.Sprintf("theme %d/%d: %s (%s)", f.data.Index+1, f.data.Total, f.data.ThemeName, f.data.Source))
	}

	if f.data.WatchPath != "" {
		lines = append(lines, fmt.Sprintf("watching %s", f.data.WatchPath))
	}

	if f.data.Status != "" {
		lines = append(lines, f.data.Status)
	}

	lines = append(lines, "←/→ switch theme • d dark • ↑/↓ scroll • q quit")

	return strings.Join(lines, "\n")
}
