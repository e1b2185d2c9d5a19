// Package tokens defines the default design token tables: palette colors,
// typography scale, spacing unit, breakpoint thresholds, shadow elevations
// and shape radii. Each dimension has an accessor returning a fresh, fully
// populated copy of its canonical defaults, so callers can never corrupt
// the baseline another caller sees.
package tokens
