package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glazekit/glaze/internal/tui/components"
	"github.com/glazekit/glaze/pkg/theme"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

const swatchWidth = 5

// sheet renders every token dimension of the current theme as scrollable
// viewport content.
func (m Model) sheet() string {
	t := m.current().Theme
	st := m.styles

	var sections []string
	sections = append(sections, m.paletteSection(t), m.contrastSection(t), m.typographySection(t),
		m.layoutSection(t), m.shadowSection(t))

	if len(t.Extra) > 0 {
		keys := make([]string, 0, len(t.Extra))
		for key := range t.Extra {
			keys = append(keys, key)
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left,
			st.Subtitle.Render("Custom"),
			st.Muted.Render("carries: "+strings.Join(keys, ", ")),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) paletteSection(t theme.Theme) string {
	st := m.styles

	roles := []struct {
		name  string
		color tokens.PaletteColor
	}{
		{"primary", t.Palette.Primary},
		{"secondary", t.Palette.Secondary},
		{"error", t.Palette.Error},
		{"warning", t.Palette.Warning},
		{"info", t.Palette.Info},
		{"success", t.Palette.Success},
	}

	lines := []string{st.Subtitle.Render("Palette")}
	for _, role := range roles {
		row := components.NewSwatchRow(role.name, role.color.Light, role.color.Main, role.color.Dark)
		lines = append(lines, row.View(st, swatchWidth))
	}

	lines = append(lines,
		st.Body.Render(fmt.Sprintf("%-12s", "background"))+st.Muted.Render(
			fmt.Sprintf("default %s  paper %s", t.Palette.Background.Default, t.Palette.Background.Paper)),
		st.Body.Render(fmt.Sprintf("%-12s", "text"))+st.Muted.Render(
			fmt.Sprintf("primary %s  secondary %s  disabled %s",
				t.Palette.Text.Primary, t.Palette.Text.Secondary, t.Palette.Text.Disabled)),
		st.Body.Render(fmt.Sprintf("%-12s", "divider"))+st.Muted.Render(t.Palette.Divider),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) contrastSection(t theme.Theme) string {
	st := m.styles
	meter := components.NewContrastMeter()

	roles := []struct {
		name  string
		color tokens.PaletteColor
	}{
		{"primary", t.Palette.Primary},
		{"secondary", t.Palette.Secondary},
		{"error", t.Palette.Error},
	}

	lines := []string{st.Subtitle.Render("Contrast")}
	for _, role := range roles {
		ratio, err := theme.ContrastRatio(role.color.Main, role.color.ContrastText)
		if err != nil {
			continue
		}
		lines = append(lines, meter.View(role.name, ratio))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) typographySection(t theme.Theme) string {
	st := m.styles

	variants := []struct {
		name    string
		variant tokens.Variant
	}{
		{"h1", t.Typography.H1},
		{"h2", t.Typography.H2},
		{"h3", t.Typography.H3},
		{"h4", t.Typography.H4},
		{"h5", t.Typography.H5},
		{"h6", t.Typography.H6},
		{"subtitle1", t.Typography.Subtitle1},
		{"body1", t.Typography.Body1},
		{"body2", t.Typography.Body2},
		{"button", t.Typography.Button},
		{"caption", t.Typography.Caption},
		{"overline", t.Typography.Overline},
	}

	lines := []string{
		st.Subtitle.Render("Typography"),
		st.Muted.Render(t.Typography.FontFamily),
	}
	for _, v := range variants {
		lines = append(lines, st.Body.Render(fmt.Sprintf("%-10s", v.name))+st.Muted.Render(
			fmt.Sprintf("%s / weight %d / line height %.3f", v.variant.FontSize, v.variant.FontWeight, v.variant.LineHeight)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) layoutSection(t theme.Theme) string {
	st := m.styles

	ruler := make([]string, 0, 5)
	for _, factor := range []int{1, 2, 3, 4, 8} {
		ruler = append(ruler, fmt.Sprintf("%d→%dpx", factor, t.Spacing.Px(factor)))
	}

	breakpoints := make([]string, 0, len(t.Breakpoints.Keys))
	for _, key := range t.Breakpoints.Keys {
		breakpoints = append(breakpoints, fmt.Sprintf("%s:%d", key, breakpointValue(t.Breakpoints.Values, key)))
	}

	panel := st.Panel.Render(fmt.Sprintf("radius %dpx", t.Shape.BorderRadius))

	return lipgloss.JoinVertical(lipgloss.Left,
		st.Subtitle.Render("Layout"),
		st.Body.Render(fmt.Sprintf("%-12s", "spacing"))+st.Muted.Render(fmt.Sprintf("unit %dpx  %s", t.Spacing.Unit, strings.Join(ruler, "  "))),
		st.Body.Render(fmt.Sprintf("%-12s", "breakpoints"))+st.Muted.Render(strings.Join(breakpoints, "  ")+" "+t.Breakpoints.Unit),
		panel,
	)
}

func (m Model) shadowSection(t theme.Theme) string {
	st := m.styles

	lines := []string{st.Subtitle.Render("Shadows")}
	for _, elevation := range []int{0, 1, 2, 4, 8, 16, 24} {
		value := t.Shadows[elevation]
		if limit := max(20, m.width-8); len(value) > limit {
			value = value[:limit] + "…"
		}
		lines = append(lines, st.Body.Render(fmt.Sprintf("%2d ", elevation))+st.Muted.Render(value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func breakpointValue(values tokens.BreakpointValues, key string) int {
	switch key {
	case "xs":
		return values.XS
	case "sm":
		return values.SM
	case "md":
		return values.MD
	case "lg":
		return values.LG
	case "xl":
		return values.XL
	default:
		return 0
	}
}
