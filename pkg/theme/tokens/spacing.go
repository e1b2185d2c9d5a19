package tokens

// Spacing is the resolved spacing dimension: a base unit in pixels that
// consumers multiply by small integer factors.
type Spacing struct {
	Unit int `yaml:"unit" json:"unit"`
}

// Px returns the pixel value for the given spacing factor.
func (s Spacing) Px(factor int) int {
	return s.Unit * factor
}

// DefaultSpacing returns the canonical spacing unit.
func DefaultSpacing() Spacing {
	return Spacing{Unit: 8}
}
