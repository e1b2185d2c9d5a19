// Package styles maps a resolved theme onto lipgloss terminal styles. It
// is a consumer of the theme, not part of resolution: it reads palette,
// spacing and shape tokens and adapts them to what a terminal can render.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glazekit/glaze/pkg/theme"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

// Styles is the terminal rendering kit derived from one theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Badge    lipgloss.Style
	Panel    lipgloss.Style
	Divider  lipgloss.Style
	Help     lipgloss.Style
}

// Build derives the kit from t. Web-only color notations (rgba, hsl) that
// a terminal cannot address fall back to the nearest hex token for their
// role; hex values pass through untouched.
func Build(t theme.Theme) Styles {
	dark := t.Palette.Mode == tokens.ModeDark

	text := hexOr(t.Palette.Text.Primary, pick(dark, "#ffffff", "#212121"))
	muted := hexOr(t.Palette.Text.Secondary, t.Palette.Grey["600"])
	divider := hexOr(t.Palette.Divider, t.Palette.Grey[pick(dark, "800", "300")])

	padX := t.Spacing.Unit / 8
	if padX < 1 {
		padX = 1
	}

	border := lipgloss.NormalBorder()
	if t.Shape.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	accent := lipgloss.Color(t.Palette.Primary.Main)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(text)),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Palette.Secondary.Main)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Palette.Error.Main)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Palette.Warning.Main)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Palette.Success.Main)),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hexOr(t.Palette.Primary.ContrastText, "#ffffff"))).
			Background(accent).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			BorderStyle(border).
			BorderForeground(lipgloss.Color(divider)).
			Padding(0, padX),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(divider)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
	}
}

// Swatch renders a color block of the given width.
func Swatch(hex string, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}

func hexOr(value, fallback string) string {
	if strings.HasPrefix(value, "#") {
		return value
	}
	return fallback
}

func pick(dark bool, darkValue, lightValue string) string {
	if dark {
		return darkValue
	}
	return lightValue
}
