// Package theme resolves partial design-token configurations into fully
// populated themes.
//
// New merges an optional Override onto the canonical defaults from
// pkg/theme/tokens with deterministic precedence: set fields win, absent
// fields keep their defaults, nested structures merge recursively, plain
// sequences replace wholesale, and the 25-entry shadow table merges
// positionally under a fixed-length invariant. Setting palette.mode to
// dark re-bases the palette surface defaults before anything else merges.
//
//	dark, err := theme.New(&theme.Override{
//	    Palette: &theme.PaletteOverride{Mode: theme.Ptr(tokens.ModeDark)},
//	    Shape:   &theme.ShapeOverride{BorderRadius: theme.Ptr(8)},
//	})
//
// A Provider owns one resolved theme for a subtree and exposes it through
// a context carrier (NewContext/FromContext/ThemeOf) or an explicit Scope
// stack; nested providers shadow outer ones independently.
package theme
