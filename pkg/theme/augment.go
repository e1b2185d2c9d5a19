package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/glazekit/glaze/pkg/theme/tokens"
)

// Augmentation helpers derive the light/dark/contrast slots of a color
// role from its main color. They live outside New on purpose: resolution
// never invents values, it only merges them, so a theme's untouched fields
// always equal their defaults. Callers opt in per color.

const (
	lightenCoef       = 0.2
	darkenCoef        = 0.3
	contrastThreshold = 3.0
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

func parseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Lighten blends a hex color toward white by coef in [0, 1].
func Lighten(hex string, coef float64) (string, error) {
	c, err := parseColor(hex)
	if err != nil {
		return "", err
	}
	return c.BlendRgb(white, clamp01(coef)).Hex(), nil
}

// Darken blends a hex color toward black by coef in [0, 1].
func Darken(hex string, coef float64) (string, error) {
	c, err := parseColor(hex)
	if err != nil {
		return "", err
	}
	return c.BlendRgb(black, clamp01(coef)).Hex(), nil
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors,
// from 1 (identical luminance) to 21 (white on black).
func ContrastRatio(a, b string) (float64, error) {
	ca, err := parseColor(a)
	if err != nil {
		return 0, err
	}
	cb, err := parseColor(b)
	if err != nil {
		return 0, err
	}
	la, lb := relativeLuminance(ca), relativeLuminance(cb)
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// ContrastText picks the readable text color for a hex background: white
// when its contrast ratio clears the threshold, near-black otherwise.
func ContrastText(background string) (string, error) {
	ratio, err := ContrastRatio(background, "#fff")
	if err != nil {
		return "", err
	}
	if ratio >= contrastThreshold {
		return "#fff", nil
	}
	return "rgba(0, 0, 0, 0.87)", nil
}

// AugmentColor expands a main hex color into a full role: light blends 0.2
// toward white, dark blends 0.3 toward black, contrast text per
// ContrastText.
func AugmentColor(main string) (tokens.PaletteColor, error) {
	c, err := parseColor(main)
	if err != nil {
		return tokens.PaletteColor{}, err
	}
	contrast, err := ContrastText(main)
	if err != nil {
		return tokens.PaletteColor{}, err
	}
	return tokens.PaletteColor{
		Main:         main,
		Light:        c.BlendRgb(white, lightenCoef).Hex(),
		Dark:         c.BlendRgb(black, darkenCoef).Hex(),
		ContrastText: contrast,
	}, nil
}
