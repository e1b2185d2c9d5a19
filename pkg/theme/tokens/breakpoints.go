package tokens

// BreakpointValues are the viewport thresholds, smallest to largest.
type BreakpointValues struct {
	XS int `yaml:"xs" json:"xs"`
	SM int `yaml:"sm" json:"sm"`
	MD int `yaml:"md" json:"md"`
	LG int `yaml:"lg" json:"lg"`
	XL int `yaml:"xl" json:"xl"`
}

// Breakpoints is the resolved breakpoint dimension. Keys is a plain
// sequence: an override replaces it wholesale, never element by element.
type Breakpoints struct {
	Keys   []string         `yaml:"keys" json:"keys"`
	Values BreakpointValues `yaml:"values" json:"values"`
	Unit   string           `yaml:"unit" json:"unit"`
	Step   int              `yaml:"step" json:"step"`
}

// DefaultBreakpoints returns the canonical thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Keys:   []string{"xs", "sm", "md", "lg", "xl"},
		Values: BreakpointValues{XS: 0, SM: 600, MD: 900, LG: 1200, XL: 1536},
		Unit:   "px",
		Step:   5,
	}
}
