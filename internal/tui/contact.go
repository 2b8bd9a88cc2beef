package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prism-terminal/internal/gateway"
	"prism-terminal/internal/theme"
)

type contactState int

const (
	contactIdle contactState = iota
	contactSending
	contactSent
	contactFailed
)

// contactResultMsg carries the outcome of a message submission.
type contactResultMsg struct {
	err error
}

// contactForm is the two-field contact view. Validation of non-empty
// inputs happens here before the gateway is called; the gateway
// re-validates anyway.
type contactForm struct {
	name    textinput.Model
	message textinput.Model
	focus   int
	state   contactState
	errText string
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 200
	name.Focus()

	message := textinput.New()
	message.Placeholder = "your message"
	message.CharLimit = 2000

	return contactForm{name: name, message: message}
}

func (f *contactForm) focusField(i int) {
	f.focus = i
	if i == 0 {
		f.name.Focus()
		f.message.Blur()
	} else {
		f.message.Focus()
		f.name.Blur()
	}
}

// update handles a key while the contact section is active. The second
// return value reports whether the key was consumed.
func (f *contactForm) update(msg tea.KeyMsg, client *gateway.Client) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		f.focusField((f.focus + 1) % 2)
		return nil, true
	case "enter":
		if f.focus == 0 {
			f.focusField(1)
			return nil, true
		}
		return f.submit(client), true
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.message, cmd = f.message.Update(msg)
	}
	return cmd, true
}

func (f *contactForm) submit(client *gateway.Client) tea.Cmd {
	if f.state == contactSending {
		return nil
	}

	name := strings.TrimSpace(f.name.Value())
	body := strings.TrimSpace(f.message.Value())
	if name == "" {
		f.state = contactFailed
		f.errText = gateway.ErrEmptyName.Error()
		return nil
	}
	if body == "" {
		f.state = contactFailed
		f.errText = gateway.ErrEmptyMessage.Error()
		return nil
	}

	f.state = contactSending
	f.errText = ""
	return func() tea.Msg {
		return contactResultMsg{err: client.Send(context.Background(), name, body)}
	}
}

func (f *contactForm) finish(msg contactResultMsg) {
	if msg.err != nil {
		f.state = contactFailed
		f.errText = msg.err.Error()
		return
	}
	f.state = contactSent
	f.errText = ""
	f.name.Reset()
	f.message.Reset()
	f.focusField(0)
}

func (f *contactForm) view(styles theme.Styles) string {
	status := styles.Muted.Render("tab: switch field · enter: send")
	switch f.state {
	case contactSending:
		status = styles.Muted.Render("sending...")
	case contactSent:
		status = styles.Accent.Render("message sent")
	case contactFailed:
		status = styles.Alert.Render(f.errText)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Render("Name:    ")+f.name.View(),
		styles.Text.Render("Message: ")+f.message.View(),
		"",
		status,
	)
}
