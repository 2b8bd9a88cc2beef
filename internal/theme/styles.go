package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles a skin renderer works with,
// derived from the skin's colour roles.
type Styles struct {
	Config Config

	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Alert    lipgloss.Style
	Panel    lipgloss.Style
	Chrome   lipgloss.Style
	Backdrop lipgloss.Style
}

// BuildStyles converts a skin config into lipgloss styles. Low-capability
// terminals get a monochrome rendition so every skin stays legible.
func BuildStyles(cfg Config, profile TermProfile) Styles {
	colors := cfg.Colors
	if shouldUseMonochrome(profile) {
		colors = ColorRoles{
			Background:      "#000000",
			Foreground:      "#FFFFFF",
			Accent:          "#FFFFFF",
			AccentSecondary: "#BFBFBF",
			Surface:         "#1A1A1A",
		}
	}

	return Styles{
		Config:   cfg,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Accent)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Foreground)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.AccentSecondary)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Accent)),
		Alert:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.AccentSecondary)).Bold(true),
		Panel:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Foreground)).Background(lipgloss.Color(colors.Surface)).Padding(0, 1),
		Chrome:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Background)).Background(lipgloss.Color(colors.Accent)).Bold(true).Padding(0, 1),
		Backdrop: lipgloss.NewStyle().Background(lipgloss.Color(colors.Background)),
	}
}

// StylesFor resolves a style bundle for a skin name and TERM value.
func StylesFor(n Name, term string) Styles {
	return BuildStyles(ConfigFor(n), DetectTermProfile(term))
}

func shouldUseMonochrome(profile TermProfile) bool {
	if !profile.IsTTY {
		return true
	}
	return !profile.TrueColor && profile.Colors <= 16
}
