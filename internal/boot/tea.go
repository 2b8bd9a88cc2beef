package boot

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages. Every message carries the epoch of the sequencer that
// scheduled it; Update discards mismatches, which is how timers from a
// switched-away sequencer are cancelled (bubbletea ticks cannot be
// revoked once scheduled).
type (
	// PhaseMsg advances the staged reveal to the given phase.
	PhaseMsg struct {
		Epoch int
		Phase int
	}

	// DoneMsg signals natural completion of the phase timeline.
	DoneMsg struct {
		Epoch int
	}

	// TimeoutMsg is the safety net against a stuck timeline.
	TimeoutMsg struct {
		Epoch int
	}
)

// Init schedules the phase ticks, the natural completion, and the
// timeout for a Playing sequencer. Returns nil when there is nothing to
// animate.
func (s *Sequencer) Init() tea.Cmd {
	if !s.Playing() {
		return nil
	}

	epoch := s.epoch
	cmds := make([]tea.Cmd, 0, len(s.timeline.Phases)+2)
	for i, offset := range s.timeline.Phases {
		phase := i + 1
		cmds = append(cmds, tea.Tick(offset, func(time.Time) tea.Msg {
			return PhaseMsg{Epoch: epoch, Phase: phase}
		}))
	}
	cmds = append(cmds, tea.Tick(s.timeline.Nominal, func(time.Time) tea.Msg {
		return DoneMsg{Epoch: epoch}
	}))
	cmds = append(cmds, tea.Tick(s.Timeout(), func(time.Time) tea.Msg {
		return TimeoutMsg{Epoch: epoch}
	}))
	return tea.Batch(cmds...)
}

// Update consumes timer messages. All completion triggers funnel into
// the one idempotent Complete.
func (s *Sequencer) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case PhaseMsg:
		if msg.Epoch == s.epoch {
			s.advance(msg.Phase)
		}
	case DoneMsg:
		if msg.Epoch == s.epoch {
			s.Complete()
		}
	case TimeoutMsg:
		if msg.Epoch == s.epoch {
			s.Complete()
		}
	}
}

// Skip completes the sequence in response to user interaction.
func (s *Sequencer) Skip() {
	s.Complete()
}
