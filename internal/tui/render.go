package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each skin wraps the shared section body in its own chrome. The body
// is skin-agnostic; only the framing differs.

func (m Model) terminalView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	var b strings.Builder
	b.WriteString(styles.Muted.Render("ben@prism:~$ ") + styles.Text.Render("open "+m.loc.Path()))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		label := "[" + entry.Key + "] " + entry.Label
		if entry.Section == active {
			tabs = append(tabs, styles.Accent.Render(label))
		} else {
			tabs = append(tabs, styles.Muted.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")
	b.WriteString(m.sectionBody(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("t: cycle theme  q: quit"))
	return m.frame(b.String())
}

func (m Model) cyberpunkView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	pills := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		if entry.Section == active {
			pills = append(pills, styles.Chrome.Render(entry.Key+" "+strings.ToUpper(entry.Label)))
		} else {
			pills = append(pills, styles.Panel.Render(entry.Key+" "+strings.ToUpper(entry.Label)))
		}
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("// PRISM TERMINAL"),
		lipgloss.JoinHorizontal(lipgloss.Top, pills...),
	)
	return m.frame(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.sectionBody(styles),
		"",
		styles.Muted.Render("t: cycle skin / q: disconnect"),
	))
}

func (m Model) starshipView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	// Left rail of rounded blocks, in the console tradition.
	rail := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		block := styles.Panel.Render(strings.ToUpper(entry.Label))
		if entry.Section == active {
			block = styles.Chrome.Render(strings.ToUpper(entry.Label))
		}
		rail = append(rail, block)
	}

	left := lipgloss.JoinVertical(lipgloss.Right, rail...)
	right := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("PERSONNEL RECORD: DE CHRAI, B."),
		"",
		m.sectionBody(styles),
	)
	return m.frame(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func (m Model) holographicView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	tabs := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		label := "< " + entry.Label + " >"
		if entry.Section == active {
			tabs = append(tabs, styles.Accent.Render(label))
		} else {
			tabs = append(tabs, styles.Muted.Render(label))
		}
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Config.Colors.Accent)).
		Padding(1, 2).
		Render(m.sectionBody(styles))

	return m.frame(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("◈ PROJECTION ACTIVE"),
		strings.Join(tabs, " "),
		panel,
	))
}

func (m Model) retroView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	var activeLabel string
	menu := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		if entry.Section == active {
			activeLabel = entry.Label
			menu = append(menu, styles.Chrome.Render(entry.Label))
		} else {
			menu = append(menu, styles.Text.Render(entry.Label))
		}
	}

	titleBar := styles.Chrome.Render("≡ Personal Site - " + activeLabel)
	window := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(styles.Config.Colors.Foreground)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleBar,
			strings.Join(menu, "  "),
			"",
			m.sectionBody(styles),
		))
	return m.frame(window)
}

// fmsView is the flight computer skin. Section keys map to line-select
// positions down the left edge of the display.
func (m Model) fmsView() string {
	styles := m.store.Styles()
	active := m.activeSection()

	var pageTitle string
	keys := make([]string, 0, len(sectionOrder))
	for _, entry := range sectionOrder {
		label := "<" + entry.Key + " " + strings.ToUpper(entry.Label)
		if entry.Section == active {
			pageTitle = strings.ToUpper(entry.Label)
			keys = append(keys, styles.Accent.Render(label))
		} else {
			keys = append(keys, styles.Muted.Render(label))
		}
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(lipgloss.PlaceHorizontal(40, lipgloss.Center, pageTitle+" 1/1")),
		"",
		lipgloss.JoinVertical(lipgloss.Left, keys...),
		"",
		m.sectionBody(styles),
		"",
		styles.Muted.Render("SCRATCHPAD: "+m.loc.Path()),
	)
	return m.frame(styles.Panel.Render(screen))
}
