package boot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism-terminal/internal/theme"
)

const skipHint = "Press any key to skip"

// View renders the current boot frame for the sequencer's skin. Layout
// is intentionally simple; the staged reveal is driven entirely by the
// phase counter.
func (s *Sequencer) View(styles theme.Styles, width, height int) string {
	var body string
	switch s.name {
	case theme.NameTerminal:
		body = s.terminalFrame(styles)
	case theme.NameCyberpunk:
		body = s.cyberpunkFrame(styles)
	case theme.NameStarship:
		body = s.starshipFrame(styles)
	case theme.NameHolographic:
		body = s.holographicFrame(styles)
	case theme.NameRetro:
		body = s.retroFrame(styles)
	case theme.NameMCDU:
		body = s.mcduFrame(styles)
	default:
		body = s.cyberpunkFrame(styles)
	}

	frame := lipgloss.JoinVertical(lipgloss.Center, body, "", styles.Muted.Render(skipHint))
	if width <= 0 || height <= 0 {
		return frame
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
}

func (s *Sequencer) terminalFrame(styles theme.Styles) string {
	revealed := s.phase
	if revealed > len(terminalScript) {
		revealed = len(terminalScript)
	}
	lines := make([]string, 0, revealed)
	for _, line := range terminalScript[:revealed] {
		lines = append(lines, styles.Text.Render(line))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("_"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *Sequencer) cyberpunkFrame(styles theme.Styles) string {
	lines := []string{}
	if s.phase >= 2 {
		lines = append(lines, styles.Accent.Render("> SYS://NIGHTCITY.NET -- INITIALIZING..."))
	}
	if s.phase >= 3 {
		lines = append(lines, "", styles.Title.Render("S Y S T E M  O N L I N E"))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("..."))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *Sequencer) starshipFrame(styles theme.Styles) string {
	lines := []string{}
	if s.phase >= 1 {
		lines = append(lines, styles.Accent.Render(strings.Repeat("▀", 24)))
	}
	if s.phase >= 2 {
		lines = append(lines, styles.Title.Render("LCARS INTERFACE ACTIVE"))
	}
	if s.phase >= 3 {
		lines = append(lines, styles.Muted.Render("ALL SYSTEMS NOMINAL"))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("..."))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *Sequencer) holographicFrame(styles theme.Styles) string {
	lines := []string{}
	if s.phase >= 1 {
		lines = append(lines,
			styles.Accent.Render("  .----.  "),
			styles.Accent.Render(" /      \\ "),
			styles.Accent.Render(" \\      / "),
			styles.Accent.Render("  '----'  "),
		)
	}
	if s.phase >= 2 {
		lines = append(lines, "", styles.Title.Render("HOLOGRAPHIC INTERFACE INITIALIZED"))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("..."))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *Sequencer) retroFrame(styles theme.Styles) string {
	if s.phase >= 2 {
		return styles.Text.Render("Starting desktop...")
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Accent.Render("██ ██"),
		styles.Accent.Render("██ ██"),
		"",
		styles.Title.Render("Prism OS"),
		styles.Muted.Render("Version 3.1"),
	)
}

func (s *Sequencer) mcduFrame(styles theme.Styles) string {
	lines := []string{styles.Title.Render("MCDU  SELF TEST")}
	if s.phase >= 1 {
		lines = append(lines, styles.Text.Render("RAM ........ OK"))
	}
	if s.phase >= 2 {
		lines = append(lines, styles.Text.Render("NAV DB ..... OK"), styles.Accent.Render("READY"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
