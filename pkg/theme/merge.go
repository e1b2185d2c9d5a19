package theme

import "github.com/glazekit/glaze/pkg/theme/tokens"

// Ptr returns a pointer to v, for building overrides inline.
func Ptr[T any](v T) *T {
	return &v
}

// set replaces *dst with *src when src is present.
func set[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// pick returns a fresh pointer to layer's value when set, else base's
// value, else nil.
func pick[T any](base, layer *T) *T {
	p := layer
	if p == nil {
		p = base
	}
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneAny(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneAny(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneAny(item)
		}
		return out
	default:
		return v
	}
}

// mergeExtra deep-merges unknown-key maps: when both sides hold a nested
// map the maps merge recursively, otherwise the layer value replaces the
// base value. Plain sequences are terminal and replace wholesale. The
// result never aliases either input.
func mergeExtra(base, layer map[string]any) map[string]any {
	if base == nil && layer == nil {
		return nil
	}
	out := make(map[string]any, len(base)+len(layer))
	for k, v := range base {
		out[k] = cloneAny(v)
	}
	for k, v := range layer {
		if existing, ok := out[k].(map[string]any); ok {
			if nested, ok := v.(map[string]any); ok {
				out[k] = mergeExtra(existing, nested)
				continue
			}
		}
		out[k] = cloneAny(v)
	}
	return out
}

func mergeStringMap(base, layer map[string]string) map[string]string {
	if base == nil && layer == nil {
		return nil
	}
	out := make(map[string]string, len(base)+len(layer))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range layer {
		out[k] = v
	}
	return out
}

// The merge* functions below resolve one dimension: the base is the
// mode-appropriate default table (passed by value, already a private
// copy) and ov customizes it field by field.

func mergePalette(base tokens.Palette, ov *PaletteOverride) tokens.Palette {
	if ov == nil {
		return base
	}
	// Mode already selected the base sub-table; keep the echoed value in
	// sync with an explicit override.
	if ov.Mode != nil {
		base.Mode = *ov.Mode
	}
	if ov.Common != nil {
		set(&base.Common.Black, ov.Common.Black)
		set(&base.Common.White, ov.Common.White)
	}
	mergePaletteColor(&base.Primary, ov.Primary)
	mergePaletteColor(&base.Secondary, ov.Secondary)
	mergePaletteColor(&base.Error, ov.Error)
	mergePaletteColor(&base.Warning, ov.Warning)
	mergePaletteColor(&base.Info, ov.Info)
	mergePaletteColor(&base.Success, ov.Success)
	for k, v := range ov.Grey {
		base.Grey[k] = v
	}
	if ov.Text != nil {
		set(&base.Text.Primary, ov.Text.Primary)
		set(&base.Text.Secondary, ov.Text.Secondary)
		set(&base.Text.Disabled, ov.Text.Disabled)
	}
	if ov.Background != nil {
		set(&base.Background.Default, ov.Background.Default)
		set(&base.Background.Paper, ov.Background.Paper)
	}
	if ov.Action != nil {
		set(&base.Action.Active, ov.Action.Active)
		set(&base.Action.Hover, ov.Action.Hover)
		set(&base.Action.Selected, ov.Action.Selected)
		set(&base.Action.Disabled, ov.Action.Disabled)
		set(&base.Action.DisabledBackground, ov.Action.DisabledBackground)
	}
	set(&base.Divider, ov.Divider)
	base.Extra = mergeExtra(base.Extra, ov.Extra)
	return base
}

func mergePaletteColor(base *tokens.PaletteColor, ov *PaletteColorOverride) {
	if ov == nil {
		return
	}
	set(&base.Main, ov.Main)
	set(&base.Light, ov.Light)
	set(&base.Dark, ov.Dark)
	set(&base.ContrastText, ov.ContrastText)
}

func mergeTypography(base tokens.Typography, ov *TypographyOverride) tokens.Typography {
	if ov == nil {
		return base
	}
	set(&base.FontFamily, ov.FontFamily)
	set(&base.FontSize, ov.FontSize)
	set(&base.HTMLFontSize, ov.HTMLFontSize)
	set(&base.FontWeightLight, ov.FontWeightLight)
	set(&base.FontWeightRegular, ov.FontWeightRegular)
	set(&base.FontWeightMedium, ov.FontWeightMedium)
	set(&base.FontWeightBold, ov.FontWeightBold)
	mergeVariant(&base.H1, ov.H1)
	mergeVariant(&base.H2, ov.H2)
	mergeVariant(&base.H3, ov.H3)
	mergeVariant(&base.H4, ov.H4)
	mergeVariant(&base.H5, ov.H5)
	mergeVariant(&base.H6, ov.H6)
	mergeVariant(&base.Subtitle1, ov.Subtitle1)
	mergeVariant(&base.Subtitle2, ov.Subtitle2)
	mergeVariant(&base.Body1, ov.Body1)
	mergeVariant(&base.Body2, ov.Body2)
	mergeVariant(&base.Button, ov.Button)
	mergeVariant(&base.Caption, ov.Caption)
	mergeVariant(&base.Overline, ov.Overline)
	base.Extra = mergeExtra(base.Extra, ov.Extra)
	return base
}

func mergeVariant(base *tokens.Variant, ov *VariantOverride) {
	if ov == nil {
		return
	}
	set(&base.FontFamily, ov.FontFamily)
	set(&base.FontWeight, ov.FontWeight)
	set(&base.FontSize, ov.FontSize)
	set(&base.LineHeight, ov.LineHeight)
	set(&base.LetterSpacing, ov.LetterSpacing)
	set(&base.TextTransform, ov.TextTransform)
}

func mergeSpacing(base tokens.Spacing, ov *SpacingOverride) tokens.Spacing {
	if ov == nil {
		return base
	}
	set(&base.Unit, ov.Unit)
	return base
}

func mergeBreakpoints(base tokens.Breakpoints, ov *BreakpointsOverride) tokens.Breakpoints {
	if ov == nil {
		return base
	}
	if ov.Keys != nil {
		base.Keys = cloneStrings(ov.Keys)
	}
	if ov.Values != nil {
		set(&base.Values.XS, ov.Values.XS)
		set(&base.Values.SM, ov.Values.SM)
		set(&base.Values.MD, ov.Values.MD)
		set(&base.Values.LG, ov.Values.LG)
		set(&base.Values.XL, ov.Values.XL)
	}
	set(&base.Unit, ov.Unit)
	set(&base.Step, ov.Step)
	return base
}

func mergeShape(base tokens.Shape, ov *ShapeOverride) tokens.Shape {
	if ov == nil {
		return base
	}
	set(&base.BorderRadius, ov.BorderRadius)
	return base
}
