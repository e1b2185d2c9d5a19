package tokens

// Shape is the resolved corner geometry dimension.
type Shape struct {
	BorderRadius int `yaml:"borderRadius" json:"borderRadius"`
}

// DefaultShape returns the canonical shape values.
func DefaultShape() Shape {
	return Shape{BorderRadius: 4}
}
