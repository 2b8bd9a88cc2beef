package theme

import (
	"context"
	"errors"
	"testing"
)

type fakePrefs struct {
	themes map[string]string
	writes int
	err    error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{themes: map[string]string{}}
}

func (f *fakePrefs) Theme(_ context.Context, userKey string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.themes[userKey], nil
}

func (f *fakePrefs) SetTheme(_ context.Context, userKey, name string) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.themes[userKey] = name
	return nil
}

func TestNewStoreOverrideWinsAndPersists(t *testing.T) {
	prefs := newFakePrefs()
	prefs.themes["ben"] = "terminal"

	s := NewStore(prefs, StoreOptions{UserKey: "ben", Override: "lcars"})

	if s.Current() != NameStarship {
		t.Fatalf("expected migrated override starship, got %q", s.Current())
	}
	if prefs.themes["ben"] != "starship" {
		t.Fatalf("override was not persisted, stored=%q", prefs.themes["ben"])
	}
}

func TestNewStoreStoredPreferenceMigratedAndRewritten(t *testing.T) {
	prefs := newFakePrefs()
	prefs.themes["ben"] = "win31"

	s := NewStore(prefs, StoreOptions{UserKey: "ben"})

	if s.Current() != NameRetro {
		t.Fatalf("expected migrated preference retro, got %q", s.Current())
	}
	if prefs.themes["ben"] != "retro" {
		t.Fatalf("migrated preference was not rewritten, stored=%q", prefs.themes["ben"])
	}
}

func TestNewStoreUnmigratedPreferenceNotRewritten(t *testing.T) {
	prefs := newFakePrefs()
	prefs.themes["ben"] = "holographic"

	s := NewStore(prefs, StoreOptions{UserKey: "ben"})

	if s.Current() != NameHolographic {
		t.Fatalf("expected stored holographic, got %q", s.Current())
	}
	if prefs.writes != 0 {
		t.Fatalf("unchanged preference should not be rewritten, writes=%d", prefs.writes)
	}
}

func TestNewStoreFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   Name
	}{
		{name: "no preference", stored: "", want: Default},
		{name: "garbage preference", stored: "not-a-real-theme", want: Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := newFakePrefs()
			if tt.stored != "" {
				prefs.themes["ben"] = tt.stored
			}
			s := NewStore(prefs, StoreOptions{UserKey: "ben"})
			if s.Current() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, s.Current())
			}
		})
	}
}

func TestNewStorePreferenceReadFailureDegradesToDefault(t *testing.T) {
	prefs := newFakePrefs()
	prefs.err = errors.New("disk gone")

	s := NewStore(prefs, StoreOptions{UserKey: "ben"})

	if s.Current() != Default {
		t.Fatalf("read failure should degrade to default, got %q", s.Current())
	}
}

func TestDetachedStoreHasNoSideEffects(t *testing.T) {
	s := Detached()
	if s.Current() != Default {
		t.Fatalf("detached store should use default, got %q", s.Current())
	}
	if s.Mounted() {
		t.Fatal("detached store should start unmounted")
	}
}

func TestSetThemeRejectsUnknownSilently(t *testing.T) {
	prefs := newFakePrefs()
	s := NewStore(prefs, StoreOptions{UserKey: "ben"})

	before := s.Current()
	s.SetTheme(Name("not-a-real-theme"))

	if s.Current() != before {
		t.Fatalf("unknown name changed current theme to %q", s.Current())
	}
	if prefs.writes != 0 {
		t.Fatalf("unknown name should not be persisted, writes=%d", prefs.writes)
	}
}

func TestSetThemePersistsAndRebuildsStyles(t *testing.T) {
	prefs := newFakePrefs()
	s := NewStore(prefs, StoreOptions{UserKey: "ben", Term: "wezterm"})

	s.SetTheme(NameTerminal)

	if s.Current() != NameTerminal {
		t.Fatalf("expected terminal, got %q", s.Current())
	}
	if prefs.themes["ben"] != "terminal" {
		t.Fatalf("preference not persisted, stored=%q", prefs.themes["ben"])
	}
	if s.Styles().Config.Name != NameTerminal {
		t.Fatalf("styles not rebuilt, carry %q", s.Styles().Config.Name)
	}
}

func TestMarkMountedIsOneWay(t *testing.T) {
	s := NewStore(newFakePrefs(), StoreOptions{UserKey: "ben"})
	if s.Mounted() {
		t.Fatal("store should start unmounted")
	}
	s.MarkMounted()
	s.MarkMounted()
	if !s.Mounted() {
		t.Fatal("store should stay mounted")
	}
}
