package theme

// FontRoles names the typeface slots a skin fills. Terminal rendering
// cannot switch fonts, so these are advisory labels surfaced by skins
// that print their own chrome (and kept for parity with the durable
// preference format).
type FontRoles struct {
	Display string
	Body    string
	Mono    string
}

// ColorRoles defines the stable semantic colour slots shared by every
// skin. Renderers should depend on these roles, never on skin-specific
// literals.
type ColorRoles struct {
	Background      string
	Foreground      string
	Accent          string
	AccentSecondary string
	Surface         string
}

// Config is the immutable per-skin bundle of display label, font roles,
// and colour roles. Exactly one Config exists per Name.
type Config struct {
	Name   Name
	Label  string
	Fonts  FontRoles
	Colors ColorRoles
}

var configs = map[Name]Config{
	NameStarship: {
		Name:  NameStarship,
		Label: "Starship",
		Fonts: FontRoles{Display: "Antonio", Body: "Antonio", Mono: "Antonio"},
		Colors: ColorRoles{
			Background:      "#000000",
			Foreground:      "#FFFFFF",
			Accent:          "#FFAA00",
			AccentSecondary: "#CC6699",
			Surface:         "#111111",
		},
	},
	NameCyberpunk: {
		Name:  NameCyberpunk,
		Label: "Cyberpunk",
		Fonts: FontRoles{Display: "Orbitron", Body: "Rajdhani", Mono: "Share Tech Mono"},
		Colors: ColorRoles{
			Background:      "#0A0A0F",
			Foreground:      "#E0E0FF",
			Accent:          "#00F3FF",
			AccentSecondary: "#FF0055",
			Surface:         "#0D0D1A",
		},
	},
	NameTerminal: {
		Name:  NameTerminal,
		Label: "Retro Terminal",
		Fonts: FontRoles{Display: "VT323", Body: "VT323", Mono: "VT323"},
		Colors: ColorRoles{
			Background:      "#0D0208",
			Foreground:      "#00FF41",
			Accent:          "#00FF41",
			AccentSecondary: "#008F11",
			Surface:         "#0D0208",
		},
	},
	NameHolographic: {
		Name:  NameHolographic,
		Label: "Holographic",
		Fonts: FontRoles{Display: "Exo 2", Body: "Exo 2", Mono: "Share Tech Mono"},
		Colors: ColorRoles{
			Background:      "#0A0E1A",
			Foreground:      "#E4EFF0",
			Accent:          "#00DCDC",
			AccentSecondary: "#FF6B35",
			Surface:         "#10182B",
		},
	},
	NameRetro: {
		Name:  NameRetro,
		Label: "Retro OS",
		Fonts: FontRoles{Display: "system-ui", Body: "system-ui", Mono: "Courier New"},
		Colors: ColorRoles{
			Background:      "#008080",
			Foreground:      "#000000",
			Accent:          "#000080",
			AccentSecondary: "#C0C0C0",
			Surface:         "#C0C0C0",
		},
	},
	NameMCDU: {
		Name:  NameMCDU,
		Label: "MCDU",
		Fonts: FontRoles{Display: "B612 Mono", Body: "B612 Mono", Mono: "B612 Mono"},
		Colors: ColorRoles{
			Background:      "#1A1A1A",
			Foreground:      "#00FF00",
			Accent:          "#00FF00",
			AccentSecondary: "#FFAA00",
			Surface:         "#2A2A2A",
		},
	},
}

// ConfigFor returns the config for a skin name. The config table is
// exhaustive over the valid name set; names outside the set degrade to
// the default skin's config rather than failing.
func ConfigFor(n Name) Config {
	if cfg, ok := configs[n]; ok {
		return cfg
	}
	return configs[Default]
}
