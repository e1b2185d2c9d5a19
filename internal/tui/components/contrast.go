package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// maxContrastRatio is the ratio of pure white on pure black.
const maxContrastRatio = 21.0

// ContrastMeter renders a WCAG contrast ratio as a filled bar.
type ContrastMeter struct {
	bar progress.Model
}

// NewContrastMeter creates a contrast meter component.
func NewContrastMeter() ContrastMeter {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return ContrastMeter{bar: bar}
}

// View renders the labeled ratio next to the bar.
func (c ContrastMeter) View(label string, ratio float64) string {
	filled := math.Min(1.0, math.Max(0.0, ratio/maxContrastRatio))
	text := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-12s %5.2f:1", label, ratio))
	return lipgloss.JoinHorizontal(lipgloss.Left, text, " ", c.bar.ViewAs(filled))
}
