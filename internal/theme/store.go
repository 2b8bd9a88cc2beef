package theme

import (
	"context"

	"github.com/charmbracelet/log"
)

// PreferenceStore persists the durable skin preference across sessions.
// Theme returns the raw stored value ("" when none); the store applies
// Normalize itself so migration stays in one place.
type PreferenceStore interface {
	Theme(ctx context.Context, userKey string) (string, error)
	SetTheme(ctx context.Context, userKey string, name string) error
}

// StoreOptions carries the session-scoped inputs to initial resolution.
type StoreOptions struct {
	// UserKey addresses this user's row in the preference store. Empty
	// means the session is anonymous; preferences are not persisted.
	UserKey string

	// Override is the one-shot skin override from the session request
	// (the theme= command token). Consumed during initialization and
	// never re-read.
	Override string

	// Term is the session's TERM value, used for capability fallback.
	Term string

	Logger *log.Logger
}

// Store is the single source of truth for the active skin within one
// session. Created once at session start, torn down never; a session
// holds exactly one Store and is its only reader and writer.
type Store struct {
	prefs   PreferenceStore
	userKey string
	term    string
	logger  *log.Logger

	current Name
	mounted bool
	styles  Styles
}

// NewStore resolves the initial skin and returns the session store.
//
// Resolution order: a valid (possibly migrated) override is persisted
// and adopted; else a valid stored preference is adopted, re-persisting
// it when migration changed the value; else the default.
func NewStore(prefs PreferenceStore, opts StoreOptions) *Store {
	s := &Store{
		prefs:   prefs,
		userKey: opts.UserKey,
		term:    opts.Term,
		logger:  opts.Logger,
		current: Default,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	s.current = s.resolveInitial(opts.Override)
	s.styles = StylesFor(s.current, s.term)
	return s
}

// Detached returns a store with the default skin and no persistence.
// Used when no session is attached; resolution has no side effects.
func Detached() *Store {
	return &Store{
		logger:  log.Default(),
		current: Default,
		styles:  StylesFor(Default, ""),
	}
}

func (s *Store) resolveInitial(override string) Name {
	if name, ok := Normalize(override); ok {
		s.persist(name)
		return name
	}

	if s.prefs == nil || s.userKey == "" {
		return Default
	}

	raw, err := s.prefs.Theme(context.Background(), s.userKey)
	if err != nil {
		s.logger.Warn("theme preference read failed", "event", "theme_pref_read_failed", "user_key", s.userKey, "err", err)
		return Default
	}
	if name, ok := Normalize(raw); ok {
		if string(name) != raw {
			s.persist(name)
		}
		return name
	}

	return Default
}

// Current returns the active skin name.
func (s *Store) Current() Name { return s.current }

// Config returns the active skin's config.
func (s *Store) Config() Config { return ConfigFor(s.current) }

// Styles returns the active skin's style bundle, rebuilt on every skin
// change from the config's colour roles and the session's TERM profile.
func (s *Store) Styles() Styles { return s.styles }

// SetTheme switches the active skin and persists the choice. Unknown
// names are ignored silently. The session location is not rewritten:
// the override token is consumed at session start and never re-emitted.
func (s *Store) SetTheme(n Name) {
	if !Known(n) {
		return
	}
	s.current = n
	s.styles = StylesFor(n, s.term)
	s.persist(n)
}

// MarkMounted records that the session has a real terminal attached.
// One-way: a store never transitions back to unmounted.
func (s *Store) MarkMounted() { s.mounted = true }

// Mounted reports whether the session terminal is attached. Renderers
// show a neutral default-background placeholder until then.
func (s *Store) Mounted() bool { return s.mounted }

func (s *Store) persist(n Name) {
	if s.prefs == nil || s.userKey == "" {
		return
	}
	if err := s.prefs.SetTheme(context.Background(), s.userKey, string(n)); err != nil {
		s.logger.Warn("theme preference write failed", "event", "theme_pref_write_failed", "user_key", s.userKey, "theme", n, "err", err)
	}
}
