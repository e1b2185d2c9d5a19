package theme

import "github.com/glazekit/glaze/pkg/theme/tokens"

// Override is a partial theme configuration. Every field is optional;
// absent fields keep their defaults when resolved by New. Unknown mapping
// keys decoded from a document land in Extra and resolve into the theme's
// Extra map untouched.
type Override struct {
	Palette     *PaletteOverride     `yaml:"palette,omitempty"`
	Typography  *TypographyOverride  `yaml:"typography,omitempty"`
	Spacing     *SpacingOverride     `yaml:"spacing,omitempty"`
	Breakpoints *BreakpointsOverride `yaml:"breakpoints,omitempty"`
	Shadows     *ShadowsOverride     `yaml:"shadows,omitempty"`
	Shape       *ShapeOverride       `yaml:"shape,omitempty"`
	Extra       map[string]any       `yaml:",inline"`
}

// PaletteOverride customizes the color dimension. Setting Mode re-bases
// the background, text, action and divider defaults onto the dark (or
// light) sub-table before any other palette field is merged.
type PaletteOverride struct {
	Mode       *tokens.Mode              `yaml:"mode,omitempty" validate:"omitempty,thememode"`
	Common     *CommonColorsOverride     `yaml:"common,omitempty"`
	Primary    *PaletteColorOverride     `yaml:"primary,omitempty"`
	Secondary  *PaletteColorOverride     `yaml:"secondary,omitempty"`
	Error      *PaletteColorOverride     `yaml:"error,omitempty"`
	Warning    *PaletteColorOverride     `yaml:"warning,omitempty"`
	Info       *PaletteColorOverride     `yaml:"info,omitempty"`
	Success    *PaletteColorOverride     `yaml:"success,omitempty"`
	Grey       map[string]string         `yaml:"grey,omitempty"`
	Text       *TextColorsOverride       `yaml:"text,omitempty"`
	Background *BackgroundColorsOverride `yaml:"background,omitempty"`
	Action     *ActionColorsOverride     `yaml:"action,omitempty"`
	Divider    *string                   `yaml:"divider,omitempty"`
	Extra      map[string]any            `yaml:",inline"`
}

type CommonColorsOverride struct {
	Black *string `yaml:"black,omitempty" validate:"omitempty,iscolor"`
	White *string `yaml:"white,omitempty" validate:"omitempty,iscolor"`
}

type PaletteColorOverride struct {
	Main         *string `yaml:"main,omitempty" validate:"omitempty,iscolor"`
	Light        *string `yaml:"light,omitempty" validate:"omitempty,iscolor"`
	Dark         *string `yaml:"dark,omitempty" validate:"omitempty,iscolor"`
	ContrastText *string `yaml:"contrastText,omitempty"`
}

type TextColorsOverride struct {
	Primary   *string `yaml:"primary,omitempty" validate:"omitempty,iscolor"`
	Secondary *string `yaml:"secondary,omitempty" validate:"omitempty,iscolor"`
	Disabled  *string `yaml:"disabled,omitempty" validate:"omitempty,iscolor"`
}

type BackgroundColorsOverride struct {
	Default *string `yaml:"default,omitempty" validate:"omitempty,iscolor"`
	Paper   *string `yaml:"paper,omitempty" validate:"omitempty,iscolor"`
}

type ActionColorsOverride struct {
	Active             *string `yaml:"active,omitempty" validate:"omitempty,iscolor"`
	Hover              *string `yaml:"hover,omitempty" validate:"omitempty,iscolor"`
	Selected           *string `yaml:"selected,omitempty" validate:"omitempty,iscolor"`
	Disabled           *string `yaml:"disabled,omitempty" validate:"omitempty,iscolor"`
	DisabledBackground *string `yaml:"disabledBackground,omitempty" validate:"omitempty,iscolor"`
}

// TypographyOverride customizes the type scale.
type TypographyOverride struct {
	FontFamily        *string          `yaml:"fontFamily,omitempty"`
	FontSize          *float64         `yaml:"fontSize,omitempty" validate:"omitempty,gt=0"`
	HTMLFontSize      *float64         `yaml:"htmlFontSize,omitempty" validate:"omitempty,gt=0"`
	FontWeightLight   *int             `yaml:"fontWeightLight,omitempty"`
	FontWeightRegular *int             `yaml:"fontWeightRegular,omitempty"`
	FontWeightMedium  *int             `yaml:"fontWeightMedium,omitempty"`
	FontWeightBold    *int             `yaml:"fontWeightBold,omitempty"`
	H1                *VariantOverride `yaml:"h1,omitempty"`
	H2                *VariantOverride `yaml:"h2,omitempty"`
	H3                *VariantOverride `yaml:"h3,omitempty"`
	H4                *VariantOverride `yaml:"h4,omitempty"`
	H5                *VariantOverride `yaml:"h5,omitempty"`
	H6                *VariantOverride `yaml:"h6,omitempty"`
	Subtitle1         *VariantOverride `yaml:"subtitle1,omitempty"`
	Subtitle2         *VariantOverride `yaml:"subtitle2,omitempty"`
	Body1             *VariantOverride `yaml:"body1,omitempty"`
	Body2             *VariantOverride `yaml:"body2,omitempty"`
	Button            *VariantOverride `yaml:"button,omitempty"`
	Caption           *VariantOverride `yaml:"caption,omitempty"`
	Overline          *VariantOverride `yaml:"overline,omitempty"`
	Extra             map[string]any   `yaml:",inline"`
}

type VariantOverride struct {
	FontFamily    *string  `yaml:"fontFamily,omitempty"`
	FontWeight    *int     `yaml:"fontWeight,omitempty"`
	FontSize      *string  `yaml:"fontSize,omitempty"`
	LineHeight    *float64 `yaml:"lineHeight,omitempty"`
	LetterSpacing *string  `yaml:"letterSpacing,omitempty"`
	TextTransform *string  `yaml:"textTransform,omitempty"`
}

type SpacingOverride struct {
	Unit *int `yaml:"unit,omitempty" validate:"omitempty,min=0"`
}

// BreakpointsOverride customizes the breakpoint dimension. Keys is a plain
// sequence, so a non-nil Keys replaces the default list wholesale.
type BreakpointsOverride struct {
	Keys   []string                  `yaml:"keys,omitempty"`
	Values *BreakpointValuesOverride `yaml:"values,omitempty"`
	Unit   *string                   `yaml:"unit,omitempty"`
	Step   *int                      `yaml:"step,omitempty"`
}

type BreakpointValuesOverride struct {
	XS *int `yaml:"xs,omitempty" validate:"omitempty,min=0"`
	SM *int `yaml:"sm,omitempty" validate:"omitempty,min=0"`
	MD *int `yaml:"md,omitempty" validate:"omitempty,min=0"`
	LG *int `yaml:"lg,omitempty" validate:"omitempty,min=0"`
	XL *int `yaml:"xl,omitempty" validate:"omitempty,min=0"`
}

type ShapeOverride struct {
	BorderRadius *int `yaml:"borderRadius,omitempty" validate:"omitempty,min=0"`
}

// MergeOverrides composes two partial configurations: fields set on layer
// win over base, nested structures compose field by field, Extra maps
// deep-merge, and shadow slot maps union (a full shadow table on layer
// resets any earlier shadow customization). The result shares no mutable
// memory with either input, so MergeOverrides(o, nil) is a deep clone.
func MergeOverrides(base, layer *Override) *Override {
	if base == nil && layer == nil {
		return nil
	}
	if base == nil {
		base = &Override{}
	}
	if layer == nil {
		layer = &Override{}
	}
	return &Override{
		Palette:     mergePaletteOverride(base.Palette, layer.Palette),
		Typography:  mergeTypographyOverride(base.Typography, layer.Typography),
		Spacing:     mergeSpacingOverride(base.Spacing, layer.Spacing),
		Breakpoints: mergeBreakpointsOverride(base.Breakpoints, layer.Breakpoints),
		Shadows:     mergeShadowsOverride(base.Shadows, layer.Shadows),
		Shape:       mergeShapeOverride(base.Shape, layer.Shape),
		Extra:       mergeExtra(base.Extra, layer.Extra),
	}
}

func mergePaletteOverride(a, b *PaletteOverride) *PaletteOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &PaletteOverride{}
	}
	if b == nil {
		b = &PaletteOverride{}
	}
	return &PaletteOverride{
		Mode:       pick(a.Mode, b.Mode),
		Common:     mergeCommonColorsOverride(a.Common, b.Common),
		Primary:    mergePaletteColorOverride(a.Primary, b.Primary),
		Secondary:  mergePaletteColorOverride(a.Secondary, b.Secondary),
		Error:      mergePaletteColorOverride(a.Error, b.Error),
		Warning:    mergePaletteColorOverride(a.Warning, b.Warning),
		Info:       mergePaletteColorOverride(a.Info, b.Info),
		Success:    mergePaletteColorOverride(a.Success, b.Success),
		Grey:       mergeStringMap(a.Grey, b.Grey),
		Text:       mergeTextColorsOverride(a.Text, b.Text),
		Background: mergeBackgroundColorsOverride(a.Background, b.Background),
		Action:     mergeActionColorsOverride(a.Action, b.Action),
		Divider:    pick(a.Divider, b.Divider),
		Extra:      mergeExtra(a.Extra, b.Extra),
	}
}

func mergeCommonColorsOverride(a, b *CommonColorsOverride) *CommonColorsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &CommonColorsOverride{}
	}
	if b == nil {
		b = &CommonColorsOverride{}
	}
	return &CommonColorsOverride{
		Black: pick(a.Black, b.Black),
		White: pick(a.White, b.White),
	}
}

func mergePaletteColorOverride(a, b *PaletteColorOverride) *PaletteColorOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &PaletteColorOverride{}
	}
	if b == nil {
		b = &PaletteColorOverride{}
	}
	return &PaletteColorOverride{
		Main:         pick(a.Main, b.Main),
		Light:        pick(a.Light, b.Light),
		Dark:         pick(a.Dark, b.Dark),
		ContrastText: pick(a.ContrastText, b.ContrastText),
	}
}

func mergeTextColorsOverride(a, b *TextColorsOverride) *TextColorsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &TextColorsOverride{}
	}
	if b == nil {
		b = &TextColorsOverride{}
	}
	return &TextColorsOverride{
		Primary:   pick(a.Primary, b.Primary),
		Secondary: pick(a.Secondary, b.Secondary),
		Disabled:  pick(a.Disabled, b.Disabled),
	}
}

func mergeBackgroundColorsOverride(a, b *BackgroundColorsOverride) *BackgroundColorsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &BackgroundColorsOverride{}
	}
	if b == nil {
		b = &BackgroundColorsOverride{}
	}
	return &BackgroundColorsOverride{
		Default: pick(a.Default, b.Default),
		Paper:   pick(a.Paper, b.Paper),
	}
}

func mergeActionColorsOverride(a, b *ActionColorsOverride) *ActionColorsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &ActionColorsOverride{}
	}
	if b == nil {
		b = &ActionColorsOverride{}
	}
	return &ActionColorsOverride{
		Active:             pick(a.Active, b.Active),
		Hover:              pick(a.Hover, b.Hover),
		Selected:           pick(a.Selected, b.Selected),
		Disabled:           pick(a.Disabled, b.Disabled),
		DisabledBackground: pick(a.DisabledBackground, b.DisabledBackground),
	}
}

func mergeTypographyOverride(a, b *TypographyOverride) *TypographyOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &TypographyOverride{}
	}
	if b == nil {
		b = &TypographyOverride{}
	}
	return &TypographyOverride{
		FontFamily:        pick(a.FontFamily, b.FontFamily),
		FontSize:          pick(a.FontSize, b.FontSize),
		HTMLFontSize:      pick(a.HTMLFontSize, b.HTMLFontSize),
		FontWeightLight:   pick(a.FontWeightLight, b.FontWeightLight),
		FontWeightRegular: pick(a.FontWeightRegular, b.FontWeightRegular),
		FontWeightMedium:  pick(a.FontWeightMedium, b.FontWeightMedium),
		FontWeightBold:    pick(a.FontWeightBold, b.FontWeightBold),
		H1:                mergeVariantOverride(a.H1, b.H1),
		H2:                mergeVariantOverride(a.H2, b.H2),
		H3:                mergeVariantOverride(a.H3, b.H3),
		H4:                mergeVariantOverride(a.H4, b.H4),
		H5:                mergeVariantOverride(a.H5, b.H5),
		H6:                mergeVariantOverride(a.H6, b.H6),
		Subtitle1:         mergeVariantOverride(a.Subtitle1, b.Subtitle1),
		Subtitle2:         mergeVariantOverride(a.Subtitle2, b.Subtitle2),
		Body1:             mergeVariantOverride(a.Body1, b.Body1),
		Body2:             mergeVariantOverride(a.Body2, b.Body2),
		Button:            mergeVariantOverride(a.Button, b.Button),
		Caption:           mergeVariantOverride(a.Caption, b.Caption),
		Overline:          mergeVariantOverride(a.Overline, b.Overline),
		Extra:             mergeExtra(a.Extra, b.Extra),
	}
}

func mergeVariantOverride(a, b *VariantOverride) *VariantOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &VariantOverride{}
	}
	if b == nil {
		b = &VariantOverride{}
	}
	return &VariantOverride{
		FontFamily:    pick(a.FontFamily, b.FontFamily),
		FontWeight:    pick(a.FontWeight, b.FontWeight),
		FontSize:      pick(a.FontSize, b.FontSize),
		LineHeight:    pick(a.LineHeight, b.LineHeight),
		LetterSpacing: pick(a.LetterSpacing, b.LetterSpacing),
		TextTransform: pick(a.TextTransform, b.TextTransform),
	}
}

func mergeSpacingOverride(a, b *SpacingOverride) *SpacingOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &SpacingOverride{}
	}
	if b == nil {
		b = &SpacingOverride{}
	}
	return &SpacingOverride{Unit: pick(a.Unit, b.Unit)}
}

func mergeBreakpointsOverride(a, b *BreakpointsOverride) *BreakpointsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &BreakpointsOverride{}
	}
	if b == nil {
		b = &BreakpointsOverride{}
	}
	keys := a.Keys
	if b.Keys != nil {
		keys = b.Keys
	}
	return &BreakpointsOverride{
		Keys:   cloneStrings(keys),
		Values: mergeBreakpointValuesOverride(a.Values, b.Values),
		Unit:   pick(a.Unit, b.Unit),
		Step:   pick(a.Step, b.Step),
	}
}

func mergeBreakpointValuesOverride(a, b *BreakpointValuesOverride) *BreakpointValuesOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &BreakpointValuesOverride{}
	}
	if b == nil {
		b = &BreakpointValuesOverride{}
	}
	return &BreakpointValuesOverride{
		XS: pick(a.XS, b.XS),
		SM: pick(a.SM, b.SM),
		MD: pick(a.MD, b.MD),
		LG: pick(a.LG, b.LG),
		XL: pick(a.XL, b.XL),
	}
}

func mergeShapeOverride(a, b *ShapeOverride) *ShapeOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &ShapeOverride{}
	}
	if b == nil {
		b = &ShapeOverride{}
	}
	return &ShapeOverride{BorderRadius: pick(a.BorderRadius, b.BorderRadius)}
}
