package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glazekit/glaze/pkg/styles"
)

// SwatchRow pairs a label with the colors it should display.
type SwatchRow struct {
	label  string
	colors []string
}

// NewSwatchRow constructs a swatch row component.
func NewSwatchRow(label string, colors ...string) SwatchRow {
	clone := make([]string, len(colors))
	copy(clone, colors)
	return SwatchRow{label: label, colors: clone}
}

// View renders the label followed by one block per color and its value.
func (r SwatchRow) View(st styles.Styles, swatchWidth int) string {
	cells := make([]string, 0, len(r.colors)+1)
	cells = append(cells, st.Body.Render(fmt.Sprintf("%-12s", r.label)))

	for _, color := range r.colors {
		cells = append(cells, styles.Swatch(color, swatchWidth), st.Muted.Render(" "+color+"  "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// Label returns the row label.
func (r SwatchRow) Label() string {
	return r.label
}

// Values returns the colors this row displays.
func (r SwatchRow) Values() string {
	return strings.Join(r.colors, " ")
}
