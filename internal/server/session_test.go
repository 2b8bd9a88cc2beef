package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	gossh "golang.org/x/crypto/ssh"

	"prism-terminal/internal/config"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	return &Runtime{cfg: config.Config{}, deps: Deps{}}
}

func TestSessionOptionsCommandTokens(t *testing.T) {
	r := newTestRuntime(t)

	cases := []struct {
		name         string
		command      []string
		wantOverride string
		wantPath     string
	}{
		{"empty", nil, "", ""},
		{"theme only", []string{"theme=retro"}, "retro", ""},
		{"path only", []string{"/articles"}, "", "/articles"},
		{"theme and path", []string{"theme=LCARS", "/talks"}, "LCARS", "/talks"},
		{"first path wins", []string{"/events", "/projects"}, "", "/events"},
		{"unknown tokens ignored", []string{"verbose", "theme=mcdu"}, "mcdu", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := newFakeSession(context.Background(), nil)
			session.command = tc.command

			opts := r.sessionOptions(session)
			if opts.ThemeOverride != tc.wantOverride {
				t.Fatalf("override = %q, want %q", opts.ThemeOverride, tc.wantOverride)
			}
			if opts.InitialPath != tc.wantPath {
				t.Fatalf("path = %q, want %q", opts.InitialPath, tc.wantPath)
			}
		})
	}
}

func TestSessionOptionsEnvironment(t *testing.T) {
	r := newTestRuntime(t)

	session := newFakeSession(context.Background(), nil)
	session.environ = []string{
		"PRISM_BOOTED=terminal,retro",
		"PRISM_REDUCE_MOTION=1",
		"malformed",
		"TERM=ignored-here",
	}
	session.term = "xterm-256color"
	session.hasPty = true

	opts := r.sessionOptions(session)
	if opts.BootedSeed != "terminal,retro" {
		t.Fatalf("booted seed = %q", opts.BootedSeed)
	}
	if !opts.ReducedMotion {
		t.Fatal("expected reduced motion from PRISM_REDUCE_MOTION=1")
	}
	if opts.Term != "xterm-256color" {
		t.Fatalf("term = %q", opts.Term)
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", " yes ", "on"}
	for _, raw := range truthy {
		if !isTruthy(raw) {
			t.Fatalf("isTruthy(%q) = false, want true", raw)
		}
	}
	falsy := []string{"", "0", "false", "off", "definitely"}
	for _, raw := range falsy {
		if isTruthy(raw) {
			t.Fatalf("isTruthy(%q) = true, want false", raw)
		}
	}
}

func TestUserKeyWithoutPublicKey(t *testing.T) {
	session := newFakeSession(context.Background(), nil)
	session.user = "visitor"

	if got := userKey(session); got != "visitor" {
		t.Fatalf("userKey = %q, want visitor", got)
	}
}

func TestUserKeyWithPublicKeyIsStable(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	sshPub, err := gossh.NewPublicKey(pub)
	if err != nil {
		t.Fatalf("wrap key: %v", err)
	}

	session := newFakeSession(context.Background(), nil)
	session.user = "visitor"
	session.pubKey = sshPub

	first := userKey(session)
	second := userKey(session)
	if first != second {
		t.Fatalf("userKey not stable: %q vs %q", first, second)
	}
	if first == "visitor" {
		t.Fatal("expected fingerprint to extend the username")
	}

	session.user = "someone-else"
	if userKey(session) == first {
		t.Fatal("expected username to participate in the key")
	}
}
