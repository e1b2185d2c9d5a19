package theme

import "github.com/glazekit/glaze/pkg/theme/tokens"

// Theme is a fully resolved token set: every field of every dimension is
// populated, either from the canonical defaults or from an override.
// Consumers may rely on any leaf being present.
type Theme struct {
	Palette     tokens.Palette     `yaml:"palette" json:"palette"`
	Typography  tokens.Typography  `yaml:"typography" json:"typography"`
	Spacing     tokens.Spacing     `yaml:"spacing" json:"spacing"`
	Breakpoints tokens.Breakpoints `yaml:"breakpoints" json:"breakpoints"`
	Shadows     tokens.Shadows     `yaml:"shadows" json:"shadows"`
	Shape       tokens.Shape       `yaml:"shape" json:"shape"`
	Extra       map[string]any     `yaml:",inline" json:"extra,omitempty"`
}

// New resolves a theme from the given partial configurations. With no
// arguments it returns the default light theme. Multiple overrides fold
// left to right into one effective override before resolution, so later
// arguments win where they overlap.
//
// Resolution first reads palette.mode (default light) and re-bases the
// palette defaults onto that mode's sub-table, then merges each dimension:
// set fields replace defaults, absent fields keep them, nested structures
// merge field by field, plain sequences replace wholesale, and the shadow
// table merges positionally under a fixed-length invariant (the only
// error condition; see ShadowLengthError and ShadowIndexError).
//
// New is pure: no caching, no I/O, safe for concurrent use. The returned
// Theme shares no mutable memory with any override, so mutating an
// override afterwards never changes a resolved theme, and vice versa.
func New(overrides ...*Override) (Theme, error) {
	var ov *Override
	for _, o := range overrides {
		if o == nil {
			continue
		}
		if ov == nil {
			ov = o
			continue
		}
		ov = MergeOverrides(ov, o)
	}

	mode := tokens.ModeLight
	if ov != nil && ov.Palette != nil && ov.Palette.Mode != nil {
		mode = *ov.Palette.Mode
	}

	t := baseTheme(mode)
	if ov == nil {
		return t, nil
	}

	shadows, err := ov.Shadows.apply(t.Shadows)
	if err != nil {
		return Theme{}, err
	}

	t.Palette = mergePalette(t.Palette, ov.Palette)
	t.Typography = mergeTypography(t.Typography, ov.Typography)
	t.Spacing = mergeSpacing(t.Spacing, ov.Spacing)
	t.Breakpoints = mergeBreakpoints(t.Breakpoints, ov.Breakpoints)
	t.Shadows = shadows
	t.Shape = mergeShape(t.Shape, ov.Shape)
	t.Extra = mergeExtra(t.Extra, ov.Extra)
	return t, nil
}

// MustNew is New for configurations known to be valid; it panics on a
// shadow shape violation.
func MustNew(overrides ...*Override) Theme {
	t, err := New(overrides...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the resolved light theme. It cannot fail and allocates
// a fresh value per call.
func Default() Theme {
	return baseTheme(tokens.ModeLight)
}

func baseTheme(mode tokens.Mode) Theme {
	return Theme{
		Palette:     tokens.PaletteFor(mode),
		Typography:  tokens.DefaultTypography(),
		Spacing:     tokens.DefaultSpacing(),
		Breakpoints: tokens.DefaultBreakpoints(),
		Shadows:     tokens.DefaultShadows(),
		Shape:       tokens.DefaultShape(),
	}
}

// AsOverride converts a resolved theme into a fully populated override,
// useful for re-composing on top of an existing theme:
//
//	tweaked, err := theme.New(theme.AsOverride(base), tweak)
//
// Resolving AsOverride(t) alone reproduces t exactly.
func AsOverride(t Theme) *Override {
	return &Override{
		Palette: &PaletteOverride{
			Mode: Ptr(t.Palette.Mode),
			Common: &CommonColorsOverride{
				Black: Ptr(t.Palette.Common.Black),
				White: Ptr(t.Palette.Common.White),
			},
			Primary:   paletteColorAsOverride(t.Palette.Primary),
			Secondary: paletteColorAsOverride(t.Palette.Secondary),
			Error:     paletteColorAsOverride(t.Palette.Error),
			Warning:   paletteColorAsOverride(t.Palette.Warning),
			Info:      paletteColorAsOverride(t.Palette.Info),
			Success:   paletteColorAsOverride(t.Palette.Success),
			Grey:      cloneStringMap(t.Palette.Grey),
			Text: &TextColorsOverride{
				Primary:   Ptr(t.Palette.Text.Primary),
				Secondary: Ptr(t.Palette.Text.Secondary),
				Disabled:  Ptr(t.Palette.Text.Disabled),
			},
			Background: &BackgroundColorsOverride{
				Default: Ptr(t.Palette.Background.Default),
				Paper:   Ptr(t.Palette.Background.Paper),
			},
			Action: &ActionColorsOverride{
				Active:             Ptr(t.Palette.Action.Active),
				Hover:              Ptr(t.Palette.Action.Hover),
				Selected:           Ptr(t.Palette.Action.Selected),
				Disabled:           Ptr(t.Palette.Action.Disabled),
				DisabledBackground: Ptr(t.Palette.Action.DisabledBackground),
			},
			Divider: Ptr(t.Palette.Divider),
			Extra:   mergeExtra(nil, t.Palette.Extra),
		},
		Typography: &TypographyOverride{
			FontFamily:        Ptr(t.Typography.FontFamily),
			FontSize:          Ptr(t.Typography.FontSize),
			HTMLFontSize:      Ptr(t.Typography.HTMLFontSize),
			FontWeightLight:   Ptr(t.Typography.FontWeightLight),
			FontWeightRegular: Ptr(t.Typography.FontWeightRegular),
			FontWeightMedium:  Ptr(t.Typography.FontWeightMedium),
			FontWeightBold:    Ptr(t.Typography.FontWeightBold),
			H1:                variantAsOverride(t.Typography.H1),
			H2:                variantAsOverride(t.Typography.H2),
			H3:                variantAsOverride(t.Typography.H3),
			H4:                variantAsOverride(t.Typography.H4),
			H5:                variantAsOverride(t.Typography.H5),
			H6:                variantAsOverride(t.Typography.H6),
			Subtitle1:         variantAsOverride(t.Typography.Subtitle1),
			Subtitle2:         variantAsOverride(t.Typography.Subtitle2),
			Body1:             variantAsOverride(t.Typography.Body1),
			Body2:             variantAsOverride(t.Typography.Body2),
			Button:            variantAsOverride(t.Typography.Button),
			Caption:           variantAsOverride(t.Typography.Caption),
			Overline:          variantAsOverride(t.Typography.Overline),
			Extra:             mergeExtra(nil, t.Typography.Extra),
		},
		Spacing: &SpacingOverride{Unit: Ptr(t.Spacing.Unit)},
		Breakpoints: &BreakpointsOverride{
			Keys: cloneStrings(t.Breakpoints.Keys),
			Values: &BreakpointValuesOverride{
				XS: Ptr(t.Breakpoints.Values.XS),
				SM: Ptr(t.Breakpoints.Values.SM),
				MD: Ptr(t.Breakpoints.Values.MD),
				LG: Ptr(t.Breakpoints.Values.LG),
				XL: Ptr(t.Breakpoints.Values.XL),
			},
			Unit: Ptr(t.Breakpoints.Unit),
			Step: Ptr(t.Breakpoints.Step),
		},
		Shadows: ShadowTable(t.Shadows[:]...),
		Shape:   &ShapeOverride{BorderRadius: Ptr(t.Shape.BorderRadius)},
		Extra:   mergeExtra(nil, t.Extra),
	}
}

func paletteColorAsOverride(c tokens.PaletteColor) *PaletteColorOverride {
	return &PaletteColorOverride{
		Main:         Ptr(c.Main),
		Light:        Ptr(c.Light),
		Dark:         Ptr(c.Dark),
		ContrastText: Ptr(c.ContrastText),
	}
}

func variantAsOverride(v tokens.Variant) *VariantOverride {
	return &VariantOverride{
		FontFamily:    Ptr(v.FontFamily),
		FontWeight:    Ptr(v.FontWeight),
		FontSize:      Ptr(v.FontSize),
		LineHeight:    Ptr(v.LineHeight),
		LetterSpacing: Ptr(v.LetterSpacing),
		TextTransform: Ptr(v.TextTransform),
	}
}
