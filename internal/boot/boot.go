// Package boot runs the once-per-session introductory animation each
// skin plays before content is revealed. A sequencer is a tiny state
// machine {Playing, Completed}; completion is idempotent and reachable
// from three independent triggers (natural finish, user interaction,
// timeout), whichever fires first.
package boot

import (
	"strings"
	"time"

	"prism-terminal/internal/theme"
)

// State of one sequencer.
type State int

const (
	StatePlaying State = iota
	StateCompleted
)

// Grace is added to a skin's nominal duration for the safety-net
// timeout, guaranteeing forward progress if the phase timeline stalls.
const Grace = time.Second

// BootedSet records which skins have already completed their boot
// sequence in this session. Session-scoped: it lives for the SSH
// connection and dies with it. Grows monotonically, never shrinks.
type BootedSet struct {
	names map[theme.Name]struct{}
}

// NewBootedSet returns an empty session boot record.
func NewBootedSet() *BootedSet {
	return &BootedSet{names: map[theme.Name]struct{}{}}
}

// SeedBootedSet parses a comma-separated list of skin names (the
// PRISM_BOOTED session variable). Names are normalized on the way in;
// unrecognized entries are dropped. Tests use this to pre-seed
// already-booted state and skip animations deterministically.
func SeedBootedSet(raw string) *BootedSet {
	set := NewBootedSet()
	for _, part := range strings.Split(raw, ",") {
		if name, ok := theme.Normalize(part); ok {
			set.Add(name)
		}
	}
	return set
}

// Has reports whether the skin has already booted this session.
func (s *BootedSet) Has(n theme.Name) bool {
	_, ok := s.names[n]
	return ok
}

// Add records a completed boot. Idempotent.
func (s *BootedSet) Add(n theme.Name) {
	s.names[n] = struct{}{}
}

// Len returns the number of skins booted this session.
func (s *BootedSet) Len() int { return len(s.names) }

// Timeline describes a skin's boot animation: phase offsets from start
// and the nominal total duration at which it completes naturally.
type Timeline struct {
	Nominal time.Duration
	Phases  []time.Duration
}

// terminalScript is revealed line by line by the terminal skin's boot.
var terminalScript = []string{
	"[BIOS POST]",
	"Memory test... 640K OK",
	"Checking devices... OK",
	"",
	"Loading SYSTEM v2.4.7...",
	"######################## 100%",
	"",
	"Establishing connection...",
	"Connection established.",
	"",
	"WELCOME TO THE PERSONAL TERMINAL OF BEN DE CHRAI",
	"Type 'help' for available commands.",
}

var timelines = map[theme.Name]Timeline{
	theme.NameTerminal:    terminalTimeline(),
	theme.NameCyberpunk:   {Nominal: 3 * time.Second, Phases: []time.Duration{50 * time.Millisecond, 800 * time.Millisecond, 1800 * time.Millisecond}},
	theme.NameStarship:    {Nominal: 2 * time.Second, Phases: []time.Duration{300 * time.Millisecond, time.Second, 1500 * time.Millisecond}},
	theme.NameHolographic: {Nominal: 3 * time.Second, Phases: []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond, 2200 * time.Millisecond}},
	theme.NameRetro:       {Nominal: 2500 * time.Millisecond, Phases: []time.Duration{100 * time.Millisecond, 1500 * time.Millisecond}},
	theme.NameMCDU:        {Nominal: 2500 * time.Millisecond, Phases: []time.Duration{400 * time.Millisecond, 1200 * time.Millisecond}},
}

func terminalTimeline() Timeline {
	phases := make([]time.Duration, len(terminalScript))
	for i := range terminalScript {
		phases[i] = time.Duration(i+1) * 300 * time.Millisecond
	}
	return Timeline{Nominal: 4 * time.Second, Phases: phases}
}

// TimelineFor returns the boot timeline for a skin. Skins outside the
// closed set get the default skin's timeline.
func TimelineFor(n theme.Name) Timeline {
	if tl, ok := timelines[n]; ok {
		return tl
	}
	return timelines[theme.Default]
}

// Options tunes sequencer construction.
type Options struct {
	// ReducedMotion skips the animation entirely; the skin is recorded
	// as booted since the user will never see it play.
	ReducedMotion bool

	// Epoch tags this sequencer's timers. Ticks carrying another epoch
	// are discarded, so a timer scheduled by a torn-down sequencer can
	// never complete a later one.
	Epoch int

	// Grace overrides the timeout grace period when positive.
	Grace time.Duration
}

// Sequencer drives one skin's boot sequence for one session.
type Sequencer struct {
	name     theme.Name
	timeline Timeline
	booted   *BootedSet
	epoch    int
	grace    time.Duration

	state State
	phase int
}

// NewSequencer computes the initial state synchronously: already booted
// this session resolves straight to Completed; reduced motion resolves
// to Completed and records the skin into the boot set; otherwise the
// sequence starts Playing.
func NewSequencer(name theme.Name, booted *BootedSet, opts Options) *Sequencer {
	s := &Sequencer{
		name:     name,
		timeline: TimelineFor(name),
		booted:   booted,
		epoch:    opts.Epoch,
		grace:    Grace,
	}
	if opts.Grace > 0 {
		s.grace = opts.Grace
	}

	switch {
	case booted.Has(name):
		s.state = StateCompleted
	case opts.ReducedMotion:
		s.state = StateCompleted
		booted.Add(name)
	default:
		s.state = StatePlaying
	}
	return s
}

// Name returns the skin this sequencer animates.
func (s *Sequencer) Name() theme.Name { return s.name }

// State returns the sequencer state.
func (s *Sequencer) State() State { return s.state }

// Playing reports whether the animation is still running.
func (s *Sequencer) Playing() bool { return s.state == StatePlaying }

// Phase returns the current phase index (0 before the first advance).
func (s *Sequencer) Phase() int { return s.phase }

// Epoch returns the timer tag this sequencer accepts.
func (s *Sequencer) Epoch() int { return s.epoch }

// Complete transitions to Completed and records the skin into the boot
// set. Idempotent: redundant invocations (a timeout racing a natural
// finish) are no-ops.
func (s *Sequencer) Complete() {
	if s.state == StateCompleted {
		return
	}
	s.state = StateCompleted
	s.booted.Add(s.name)
}

// Timeout returns the safety-net deadline: nominal duration plus grace.
func (s *Sequencer) Timeout() time.Duration {
	return s.timeline.Nominal + s.grace
}

func (s *Sequencer) advance(phase int) {
	if s.state != StatePlaying {
		return
	}
	if phase > s.phase {
		s.phase = phase
	}
}
