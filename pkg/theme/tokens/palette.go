package tokens

// Mode selects which canonical default sub-table a palette is based on.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// PaletteColor is one color role resolved to its four intensity slots.
type PaletteColor struct {
	Main         string `yaml:"main" json:"main"`
	Light        string `yaml:"light" json:"light"`
	Dark         string `yaml:"dark" json:"dark"`
	ContrastText string `yaml:"contrastText" json:"contrastText"`
}

// CommonColors are the mode-independent anchors.
type CommonColors struct {
	Black string `yaml:"black" json:"black"`
	White string `yaml:"white" json:"white"`
}

// TextColors is the text emphasis hierarchy.
type TextColors struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Disabled  string `yaml:"disabled" json:"disabled"`
}

// BackgroundColors are the surface colors.
type BackgroundColors struct {
	Default string `yaml:"default" json:"default"`
	Paper   string `yaml:"paper" json:"paper"`
}

// ActionColors are the interaction-state overlays.
type ActionColors struct {
	Active             string `yaml:"active" json:"active"`
	Hover              string `yaml:"hover" json:"hover"`
	Selected           string `yaml:"selected" json:"selected"`
	Disabled           string `yaml:"disabled" json:"disabled"`
	DisabledBackground string `yaml:"disabledBackground" json:"disabledBackground"`
}

// Palette is the resolved color dimension. Text, Background, Action and
// Divider have distinct canonical defaults per mode; the six color roles,
// Common and Grey are shared between modes. Unknown keys decoded from a
// document land in Extra and are carried through untouched.
type Palette struct {
	Mode       Mode              `yaml:"mode" json:"mode"`
	Common     CommonColors      `yaml:"common" json:"common"`
	Primary    PaletteColor      `yaml:"primary" json:"primary"`
	Secondary  PaletteColor      `yaml:"secondary" json:"secondary"`
	Error      PaletteColor      `yaml:"error" json:"error"`
	Warning    PaletteColor      `yaml:"warning" json:"warning"`
	Info       PaletteColor      `yaml:"info" json:"info"`
	Success    PaletteColor      `yaml:"success" json:"success"`
	Grey       map[string]string `yaml:"grey" json:"grey"`
	Text       TextColors        `yaml:"text" json:"text"`
	Background BackgroundColors  `yaml:"background" json:"background"`
	Action     ActionColors      `yaml:"action" json:"action"`
	Divider    string            `yaml:"divider" json:"divider"`
	Extra      map[string]any    `yaml:",inline" json:"extra,omitempty"`
}

// PaletteFor returns the canonical default palette for the given mode.
// ModeDark substitutes the dark sub-table for Text, Background, Action and
// Divider; any other value (including unrecognized mode strings, which are
// echoed as-is) selects the light sub-table.
func PaletteFor(mode Mode) Palette {
	p := Palette{
		Mode:   mode,
		Common: CommonColors{Black: "#000", White: "#fff"},
		Primary: PaletteColor{
			Main:         "#1976d2",
			Light:        "#42a5f5",
			Dark:         "#1565c0",
			ContrastText: "#fff",
		},
		Secondary: PaletteColor{
			Main:         "#9c27b0",
			Light:        "#ba68c8",
			Dark:         "#7b1fa2",
			ContrastText: "#fff",
		},
		Error: PaletteColor{
			Main:         "#d32f2f",
			Light:        "#ef5350",
			Dark:         "#c62828",
			ContrastText: "#fff",
		},
		Warning: PaletteColor{
			Main:         "#ed6c02",
			Light:        "#ff9800",
			Dark:         "#e65100",
			ContrastText: "#fff",
		},
		Info: PaletteColor{
			Main:         "#0288d1",
			Light:        "#03a9f4",
			Dark:         "#01579b",
			ContrastText: "#fff",
		},
		Success: PaletteColor{
			Main:         "#2e7d32",
			Light:        "#4caf50",
			Dark:         "#1b5e20",
			ContrastText: "#fff",
		},
		Grey: map[string]string{
			"50":   "#fafafa",
			"100":  "#f5f5f5",
			"200":  "#eeeeee",
			"300":  "#e0e0e0",
			"400":  "#bdbdbd",
			"500":  "#9e9e9e",
			"600":  "#757575",
			"700":  "#616161",
			"800":  "#424242",
			"900":  "#212121",
			"A100": "#f5f5f5",
			"A200": "#eeeeee",
			"A400": "#bdbdbd",
			"A700": "#616161",
		},
	}

	if mode == ModeDark {
		p.Text = TextColors{
			Primary:   "#fff",
			Secondary: "rgba(255, 255, 255, 0.7)",
			Disabled:  "rgba(255, 255, 255, 0.5)",
		}
		p.Background = BackgroundColors{Default: "#121212", Paper: "#121212"}
		p.Action = ActionColors{
			Active:             "#fff",
			Hover:              "rgba(255, 255, 255, 0.08)",
			Selected:           "rgba(255, 255, 255, 0.16)",
			Disabled:           "rgba(255, 255, 255, 0.3)",
			DisabledBackground: "rgba(255, 255, 255, 0.12)",
		}
		p.Divider = "rgba(255, 255, 255, 0.12)"
		return p
	}

	p.Text = TextColors{
		Primary:   "rgba(0, 0, 0, 0.87)",
		Secondary: "rgba(0, 0, 0, 0.6)",
		Disabled:  "rgba(0, 0, 0, 0.38)",
	}
	p.Background = BackgroundColors{Default: "#fff", Paper: "#fff"}
	p.Action = ActionColors{
		Active:             "rgba(0, 0, 0, 0.54)",
		Hover:              "rgba(0, 0, 0, 0.04)",
		Selected:           "rgba(0, 0, 0, 0.08)",
		Disabled:           "rgba(0, 0, 0, 0.26)",
		DisabledBackground: "rgba(0, 0, 0, 0.12)",
	}
	p.Divider = "rgba(0, 0, 0, 0.12)"
	return p
}
