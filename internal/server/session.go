package server

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"prism-terminal/internal/tui"
)

// Session environment variables a client may forward. The boot seed
// mirrors skins already booted on the client side; reduce motion skips
// boot animation entirely.
const (
	envBooted       = "PRISM_BOOTED"
	envReduceMotion = "PRISM_REDUCE_MOTION"
)

func (r *Runtime) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	opts := r.sessionOptions(s)
	return tui.NewModel(opts), []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionOptions maps the SSH request onto session inputs: command
// tokens carry the one-shot theme override and the initial path, the
// forwarded environment carries boot state hints.
func (r *Runtime) sessionOptions(s ssh.Session) tui.Options {
	opts := tui.Options{
		UserKey:   userKey(s),
		BootGrace: r.cfg.BootGrace,
		Prefs:     r.deps.Prefs,
		Gateway:   r.deps.Gateway,
		Logger:    r.deps.Logger,
	}

	for _, token := range s.Command() {
		switch {
		case strings.HasPrefix(token, "theme="):
			opts.ThemeOverride = strings.TrimPrefix(token, "theme=")
		case strings.HasPrefix(token, "/"):
			if opts.InitialPath == "" {
				opts.InitialPath = token
			}
		}
	}

	env := environMap(s.Environ())
	opts.BootedSeed = env[envBooted]
	opts.ReducedMotion = isTruthy(env[envReduceMotion])

	if pty, _, ok := s.Pty(); ok {
		opts.Term = pty.Term
	}

	return opts
}

// userKey addresses the preference row for this user. Public-key
// fingerprints are stable across reconnects regardless of the username
// typed; username-only sessions share a row per name.
func userKey(s ssh.Session) string {
	user := s.User()
	if key := s.PublicKey(); key != nil {
		return user + "@" + gossh.FingerprintSHA256(key)
	}
	return user
}

func environMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[key] = value
	}
	return out
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func connectionLogMiddleware(logger *log.Logger) func(next ssh.Handler) ssh.Handler {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			start := time.Now()
			logger.Info("session connected",
				"event", "session_connected",
				"user", s.User(),
				"remote_ip", remoteIP(s),
				"command", strings.Join(s.Command(), " "),
			)
			next(s)
			logger.Info("session closed",
				"event", "session_closed",
				"user", s.User(),
				"remote_ip", remoteIP(s),
				"duration", time.Since(start).Round(time.Millisecond),
			)
		}
	}
}
