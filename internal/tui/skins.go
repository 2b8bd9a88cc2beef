package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism-terminal/internal/content"
	"prism-terminal/internal/nav"
	"prism-terminal/internal/theme"
)

// sectionOrder drives every skin's navigation chrome.
var sectionOrder = []struct {
	Section nav.Section
	Key     string
	Label   string
}{
	{nav.SectionHome, "1", "Home"},
	{nav.SectionArticles, "2", "Articles"},
	{nav.SectionEvents, "3", "Events"},
	{nav.SectionTalks, "4", "Talks"},
	{nav.SectionProjects, "5", "Projects"},
	{nav.SectionContact, "6", "Contact"},
}

func articleList() []content.Article { return content.Articles }
func talkList() []content.Talk      { return content.Talks }

// skinView dispatches the resolved section through the active skin.
// The switch is closed over the valid name set; anything else falls to
// the placeholder, so adding a skin name without a renderer is visible
// immediately rather than silently wrong.
func (m Model) skinView() string {
	switch m.store.Current() {
	case theme.NameTerminal:
		return m.terminalView()
	case theme.NameCyberpunk:
		return m.cyberpunkView()
	case theme.NameStarship:
		return m.starshipView()
	case theme.NameHolographic:
		return m.holographicView()
	case theme.NameRetro:
		return m.retroView()
	case theme.NameMCDU:
		return m.fmsView()
	}
	return m.placeholderView()
}

func (m Model) placeholderView() string {
	styles := m.store.Styles()
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("PRISM TERMINAL"),
		styles.Muted.Render("this skin has no renderer yet"),
		"",
		m.sectionBody(styles),
	)
	return m.frame(body)
}

func (m Model) frame(body string) string {
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, body)
}

// sectionBody renders the active section's content without chrome; the
// skins wrap it in their own metaphor.
func (m Model) sectionBody(styles theme.Styles) string {
	section, articleSlug, talkSlug := m.loc.Resolve()

	if articleSlug != "" {
		return m.articleDetail(styles, articleSlug)
	}
	if talkSlug != "" {
		return m.talkDetail(styles, talkSlug)
	}

	switch section {
	case nav.SectionArticles:
		return m.articleIndex(styles)
	case nav.SectionEvents:
		return m.eventIndex(styles)
	case nav.SectionTalks:
		return m.talkIndex(styles)
	case nav.SectionProjects:
		return m.projectIndex(styles)
	case nav.SectionContact:
		return m.contact.view(styles)
	}
	return m.homeBody(styles)
}

func (m Model) homeBody(styles theme.Styles) string {
	lines := []string{styles.Title.Render(content.BioLines[0])}
	for _, line := range content.BioLines[1:] {
		lines = append(lines, styles.Text.Render(line))
	}
	lines = append(lines, "")
	for _, name := range []string{"github", "linkedin", "twitter"} {
		lines = append(lines, styles.Muted.Render(name+": ")+styles.Accent.Render(content.SocialLinks[name]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) articleIndex(styles theme.Styles) string {
	lines := make([]string, 0, len(content.Articles)*2)
	for i, a := range content.Articles {
		marker := "  "
		title := styles.Text.Render(a.Title)
		if i == m.cursor {
			marker = styles.Accent.Render("> ")
			title = styles.Title.Render(a.Title)
		}
		lines = append(lines, marker+title)
		lines = append(lines, "  "+styles.Muted.Render(a.Date+" · "+a.Summary))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) articleDetail(styles theme.Styles, slug string) string {
	a, ok := content.ArticleBySlug(slug)
	if !ok {
		return styles.Alert.Render("article not found: " + slug)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(a.Title),
		styles.Muted.Render(a.Date),
		"",
		m.renderMarkdown(a.Body),
		styles.Muted.Render("esc: back"),
	)
}

func (m Model) eventIndex(styles theme.Styles) string {
	lines := make([]string, 0, len(content.Events))
	for _, e := range content.Events {
		role := styles.Muted.Render(string(e.Role))
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			styles.Accent.Render(e.Date),
			styles.Text.Render(e.Name),
			styles.Muted.Render(e.Location),
			role,
		))
		if e.Talk != "" {
			lines = append(lines, "    "+styles.Muted.Render(e.Talk))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) talkIndex(styles theme.Styles) string {
	lines := make([]string, 0, len(content.Talks)*2)
	for i, talk := range content.Talks {
		marker := "  "
		title := styles.Text.Render(talk.Title)
		if i == m.cursor {
			marker = styles.Accent.Render("> ")
			title = styles.Title.Render(talk.Title)
		}
		badge := styles.Muted.Render("[" + string(talk.Type) + "]")
		lines = append(lines, marker+title+" "+badge)
		lines = append(lines, "  "+styles.Muted.Render(talk.Event+" · "+talk.Date))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) talkDetail(styles theme.Styles, slug string) string {
	talk, ok := content.TalkBySlug(slug)
	if !ok {
		return styles.Alert.Render("talk not found: " + slug)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(talk.Title),
		styles.Muted.Render(talk.Event+" · "+talk.Date),
		"",
		m.renderMarkdown(talk.Abstract),
		styles.Muted.Render("esc: back"),
	)
}

func (m Model) projectIndex(styles theme.Styles) string {
	lines := make([]string, 0, len(content.Projects)*2)
	for _, p := range content.Projects {
		lines = append(lines, styles.Title.Render(p.Name)+"  "+styles.Muted.Render(strings.Join(p.Tech, ", ")))
		lines = append(lines, "  "+styles.Text.Render(p.Description))
		lines = append(lines, "  "+styles.Muted.Render(p.Link))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) activeSection() nav.Section {
	section, _, _ := m.loc.Resolve()
	return section
}
