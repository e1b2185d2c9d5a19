package tokens

const defaultFontFamily = `"Roboto", "Helvetica", "Arial", sans-serif`

// Variant is one named typography style, fully resolved.
type Variant struct {
	FontFamily    string  `yaml:"fontFamily" json:"fontFamily"`
	FontWeight    int     `yaml:"fontWeight" json:"fontWeight"`
	FontSize      string  `yaml:"fontSize" json:"fontSize"`
	LineHeight    float64 `yaml:"lineHeight" json:"lineHeight"`
	LetterSpacing string  `yaml:"letterSpacing" json:"letterSpacing"`
	TextTransform string  `yaml:"textTransform" json:"textTransform"`
}

// Typography is the resolved type scale dimension.
type Typography struct {
	FontFamily        string         `yaml:"fontFamily" json:"fontFamily"`
	FontSize          float64        `yaml:"fontSize" json:"fontSize"`
	HTMLFontSize      float64        `yaml:"htmlFontSize" json:"htmlFontSize"`
	FontWeightLight   int            `yaml:"fontWeightLight" json:"fontWeightLight"`
	FontWeightRegular int            `yaml:"fontWeightRegular" json:"fontWeightRegular"`
	FontWeightMedium  int            `yaml:"fontWeightMedium" json:"fontWeightMedium"`
	FontWeightBold    int            `yaml:"fontWeightBold" json:"fontWeightBold"`
	H1                Variant        `yaml:"h1" json:"h1"`
	H2                Variant        `yaml:"h2" json:"h2"`
	H3                Variant        `yaml:"h3" json:"h3"`
	H4                Variant        `yaml:"h4" json:"h4"`
	H5                Variant        `yaml:"h5" json:"h5"`
	H6                Variant        `yaml:"h6" json:"h6"`
	Subtitle1         Variant        `yaml:"subtitle1" json:"subtitle1"`
	Subtitle2         Variant        `yaml:"subtitle2" json:"subtitle2"`
	Body1             Variant        `yaml:"body1" json:"body1"`
	Body2             Variant        `yaml:"body2" json:"body2"`
	Button            Variant        `yaml:"button" json:"button"`
	Caption           Variant        `yaml:"caption" json:"caption"`
	Overline          Variant        `yaml:"overline" json:"overline"`
	Extra             map[string]any `yaml:",inline" json:"extra,omitempty"`
}

func variant(weight int, size string, lineHeight float64, letterSpacing string) Variant {
	return Variant{
		FontFamily:    defaultFontFamily,
		FontWeight:    weight,
		FontSize:      size,
		LineHeight:    lineHeight,
		LetterSpacing: letterSpacing,
		TextTransform: "none",
	}
}

func uppercase(v Variant) Variant {
	v.TextTransform = "uppercase"
	return v
}

// DefaultTypography returns the canonical type scale.
func DefaultTypography() Typography {
	return Typography{
		FontFamily:        defaultFontFamily,
		FontSize:          14,
		HTMLFontSize:      16,
		FontWeightLight:   300,
		FontWeightRegular: 400,
		FontWeightMedium:  500,
		FontWeightBold:    700,
		H1:                variant(300, "6rem", 1.167, "-0.01562em"),
		H2:                variant(300, "3.75rem", 1.2, "-0.00833em"),
		H3:                variant(400, "3rem", 1.167, "0em"),
		H4:                variant(400, "2.125rem", 1.235, "0.00735em"),
		H5:                variant(400, "1.5rem", 1.334, "0em"),
		H6:                variant(500, "1.25rem", 1.6, "0.0075em"),
		Subtitle1:         variant(400, "1rem", 1.75, "0.00938em"),
		Subtitle2:         variant(500, "0.875rem", 1.57, "0.00714em"),
		Body1:             variant(400, "1rem", 1.5, "0.00938em"),
		Body2:             variant(400, "0.875rem", 1.43, "0.01071em"),
		Button:            uppercase(variant(500, "0.875rem", 1.75, "0.02857em")),
		Caption:           variant(400, "0.75rem", 1.66, "0.03333em"),
		Overline:          uppercase(variant(400, "0.75rem", 2.66, "0.08333em")),
	}
}
