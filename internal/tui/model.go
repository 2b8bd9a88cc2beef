// Package tui is the per-session terminal UI: one bubbletea model per
// SSH connection, dispatching the resolved section through the active
// skin's renderer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"

	"prism-terminal/internal/boot"
	"prism-terminal/internal/gateway"
	"prism-terminal/internal/nav"
	"prism-terminal/internal/theme"
)

// Options carries the session-scoped inputs collected by the server
// middleware.
type Options struct {
	UserKey       string
	ThemeOverride string
	InitialPath   string
	BootedSeed    string
	ReducedMotion bool
	BootGrace     time.Duration
	Term          string

	Prefs   theme.PreferenceStore
	Gateway *gateway.Client
	Logger  *log.Logger
}

// Model is the root session model. Theme state and section state are
// independent slices: a renderer may transiently observe a new section
// with the old skin's chrome, which is acceptable.
type Model struct {
	store   *theme.Store
	loc     *nav.Locator
	booted  *boot.BootedSet
	seq     *boot.Sequencer
	epoch   int
	reduced bool
	grace   time.Duration

	gateway *gateway.Client
	contact contactForm
	cursor  int

	width  int
	height int
}

// NewModel resolves the initial theme and boot state for a session.
func NewModel(opts Options) Model {
	var store *theme.Store
	if opts.Prefs != nil || opts.ThemeOverride != "" {
		store = theme.NewStore(opts.Prefs, theme.StoreOptions{
			UserKey:  opts.UserKey,
			Override: opts.ThemeOverride,
			Term:     opts.Term,
			Logger:   opts.Logger,
		})
	} else {
		store = theme.Detached()
	}

	booted := boot.SeedBootedSet(opts.BootedSeed)
	epoch := 1
	seq := boot.NewSequencer(store.Current(), booted, boot.Options{
		ReducedMotion: opts.ReducedMotion,
		Epoch:         epoch,
		Grace:         opts.BootGrace,
	})

	client := opts.Gateway
	if client == nil {
		client = gateway.NewClient("")
	}

	return Model{
		store:   store,
		loc:     nav.NewLocator(opts.InitialPath),
		booted:  booted,
		seq:     seq,
		epoch:   epoch,
		reduced: opts.ReducedMotion,
		grace:   opts.BootGrace,
		gateway: client,
		contact: newContactForm(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.seq.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.store.MarkMounted()
		return m, nil

	case boot.PhaseMsg, boot.DoneMsg, boot.TimeoutMsg:
		m.seq.Update(msg)
		return m, nil

	case contactResultMsg:
		m.contact.finish(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.seq.Playing() {
			m.seq.Skip()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any interaction while the boot sequence plays skips it.
	if m.seq.Playing() {
		m.seq.Skip()
		return m, nil
	}

	section, _, _ := m.loc.Resolve()

	// The contact form owns most keys while it is the active section.
	if section == nav.SectionContact {
		switch msg.String() {
		case "esc":
			if !m.loc.Back() {
				m.loc.Navigate("/")
			}
			return m, nil
		default:
			cmd, consumed := m.contact.update(msg, m.gateway)
			if consumed {
				return m, cmd
			}
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		return m.switchTheme(theme.Next(m.store.Current()))
	case "1":
		return m.navigate("/")
	case "2":
		return m.navigate("/articles")
	case "3":
		return m.navigate("/events")
	case "4":
		return m.navigate("/talks")
	case "5":
		return m.navigate("/projects")
	case "6":
		return m.navigate("/contact")
	case "esc", "b":
		if m.loc.Back() {
			m.cursor = 0
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.openSelection()
	}

	return m, nil
}

func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	m.loc.Navigate(path)
	m.cursor = 0
	return m, nil
}

// switchTheme re-evaluates the boot machine from scratch for the new
// skin. The old sequencer's epoch dies with it; its pending timers
// resolve as stale ticks and are discarded.
func (m Model) switchTheme(n theme.Name) (tea.Model, tea.Cmd) {
	m.store.SetTheme(n)
	m.epoch++
	m.seq = boot.NewSequencer(m.store.Current(), m.booted, boot.Options{
		ReducedMotion: m.reduced,
		Epoch:         m.epoch,
		Grace:         m.grace,
	})
	return m, m.seq.Init()
}

func (m Model) openSelection() (tea.Model, tea.Cmd) {
	section, articleSlug, talkSlug := m.loc.Resolve()
	if articleSlug != "" || talkSlug != "" {
		return m, nil
	}

	switch section {
	case nav.SectionArticles:
		if m.cursor < len(articleList()) {
			return m.navigate("/articles/" + articleList()[m.cursor].Slug)
		}
	case nav.SectionTalks:
		if m.cursor < len(talkList()) {
			return m.navigate("/talks/" + talkList()[m.cursor].Slug)
		}
	}
	return m, nil
}

func (m Model) listLen() int {
	section, articleSlug, talkSlug := m.loc.Resolve()
	if articleSlug != "" || talkSlug != "" {
		return 0
	}
	switch section {
	case nav.SectionArticles:
		return len(articleList())
	case nav.SectionTalks:
		return len(talkList())
	}
	return 0
}

func (m Model) View() string {
	// Neutral placeholder until a real terminal is attached: default
	// background only, no skin chrome.
	if !m.store.Mounted() {
		return m.placeholderBackdrop()
	}

	if m.seq.Playing() {
		return m.seq.View(m.store.Styles(), m.width, m.height)
	}

	return m.skinView()
}

func (m Model) placeholderBackdrop() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	backdrop := theme.StylesFor(theme.Default, "").Backdrop
	return backdrop.Width(m.width).Height(m.height).Render("")
}

// renderMarkdown renders an article body or talk abstract for the
// detail view, falling back to the raw text when glamour cannot.
func (m Model) renderMarkdown(body string) string {
	width := m.width - 4
	if width < 20 || width > 100 {
		width = 76
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return body
	}
	out, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return out
}
