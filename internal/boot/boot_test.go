package boot

import (
	"testing"
	"time"

	"prism-terminal/internal/theme"
)

func TestNewSequencerAlreadyBooted(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()
	booted.Add(theme.NameTerminal)

	s := NewSequencer(theme.NameTerminal, booted, Options{})
	if s.State() != StateCompleted {
		t.Fatalf("already-booted skin should resolve to Completed, got %v", s.State())
	}
	if cmd := s.Init(); cmd != nil {
		t.Fatal("completed sequencer must not start timers")
	}
}

func TestNewSequencerReducedMotionRecordsBoot(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()
	s := NewSequencer(theme.NameCyberpunk, booted, Options{ReducedMotion: true})

	if s.State() != StateCompleted {
		t.Fatalf("reduced motion should resolve to Completed, got %v", s.State())
	}
	if !booted.Has(theme.NameCyberpunk) {
		t.Fatal("reduced motion must record the skin as booted")
	}
	if cmd := s.Init(); cmd != nil {
		t.Fatal("reduced-motion sequencer must not start timers")
	}
}

func TestNewSequencerFreshSkinPlays(t *testing.T) {
	t.Parallel()

	s := NewSequencer(theme.NameStarship, NewBootedSet(), Options{})
	if !s.Playing() {
		t.Fatalf("fresh skin should start Playing, got %v", s.State())
	}
	if cmd := s.Init(); cmd == nil {
		t.Fatal("playing sequencer should schedule timers")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()
	s := NewSequencer(theme.NameRetro, booted, Options{})

	s.Complete()
	s.Complete()

	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %v", s.State())
	}
	if booted.Len() != 1 {
		t.Fatalf("skin should be recorded exactly once, set has %d entries", booted.Len())
	}
}

func TestTimeoutRacingNaturalFinish(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()
	s := NewSequencer(theme.NameHolographic, booted, Options{Epoch: 3})

	s.Update(DoneMsg{Epoch: 3})
	s.Update(TimeoutMsg{Epoch: 3})

	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %v", s.State())
	}
	if booted.Len() != 1 {
		t.Fatalf("redundant completion duplicated the boot record: %d entries", booted.Len())
	}
}

func TestStaleEpochTicksAreDiscarded(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()
	s := NewSequencer(theme.NameMCDU, booted, Options{Epoch: 7})

	s.Update(PhaseMsg{Epoch: 6, Phase: 2})
	if s.Phase() != 0 {
		t.Fatalf("stale phase tick advanced the sequence to %d", s.Phase())
	}

	s.Update(TimeoutMsg{Epoch: 6})
	if !s.Playing() {
		t.Fatal("stale timeout completed a later sequencer")
	}

	s.Update(DoneMsg{Epoch: 6})
	if booted.Has(theme.NameMCDU) {
		t.Fatal("stale natural-finish recorded the skin as booted")
	}
}

func TestPhaseAdvancesMonotonically(t *testing.T) {
	t.Parallel()

	s := NewSequencer(theme.NameCyberpunk, NewBootedSet(), Options{Epoch: 1})

	s.Update(PhaseMsg{Epoch: 1, Phase: 2})
	s.Update(PhaseMsg{Epoch: 1, Phase: 1})

	if s.Phase() != 2 {
		t.Fatalf("out-of-order tick regressed phase to %d", s.Phase())
	}

	s.Complete()
	s.Update(PhaseMsg{Epoch: 1, Phase: 3})
	if s.Phase() != 2 {
		t.Fatal("completed sequencer should ignore further phase ticks")
	}
}

func TestReEntryAfterThemeSwitch(t *testing.T) {
	t.Parallel()

	booted := NewBootedSet()

	first := NewSequencer(theme.NameTerminal, booted, Options{Epoch: 1})
	first.Skip()

	other := NewSequencer(theme.NameRetro, booted, Options{Epoch: 2})
	if !other.Playing() {
		t.Fatal("a different skin should play its own sequence")
	}

	back := NewSequencer(theme.NameTerminal, booted, Options{Epoch: 3})
	if back.State() != StateCompleted {
		t.Fatal("returning to a booted skin should resolve immediately to Completed")
	}
}

func TestSeedBootedSetNormalizes(t *testing.T) {
	t.Parallel()

	set := SeedBootedSet("terminal, LCARS ,win31,bogus,")

	if !set.Has(theme.NameTerminal) || !set.Has(theme.NameStarship) || !set.Has(theme.NameRetro) {
		t.Fatalf("seeded set missing normalized entries: %+v", set.names)
	}
	if set.Len() != 3 {
		t.Fatalf("unrecognized entries should be dropped, set has %d", set.Len())
	}
}

func TestTimelineCoverageAndTimeout(t *testing.T) {
	t.Parallel()

	for _, n := range theme.Names() {
		tl := TimelineFor(n)
		if tl.Nominal <= 0 || len(tl.Phases) == 0 {
			t.Fatalf("skin %q has an empty timeline", n)
		}
		for _, offset := range tl.Phases {
			if offset > tl.Nominal {
				t.Fatalf("skin %q phase offset %v exceeds nominal %v", n, offset, tl.Nominal)
			}
		}
	}

	s := NewSequencer(theme.NameTerminal, NewBootedSet(), Options{Grace: 2 * time.Second})
	if s.Timeout() != TimelineFor(theme.NameTerminal).Nominal+2*time.Second {
		t.Fatalf("timeout should be nominal plus grace, got %v", s.Timeout())
	}
}

func TestViewRendersForEveryNameAndPhase(t *testing.T) {
	t.Parallel()

	styles := theme.StylesFor(theme.Default, "wezterm")
	for _, n := range append(theme.Names(), theme.Name("mystery")) {
		s := NewSequencer(n, NewBootedSet(), Options{})
		for phase := 0; phase <= len(TimelineFor(n).Phases); phase++ {
			s.advance(phase)
			if out := s.View(styles, 80, 24); out == "" {
				t.Fatalf("empty boot frame for %q at phase %d", n, phase)
			}
		}
	}
}
