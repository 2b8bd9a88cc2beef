// Package server runs the SSH listener and the HTTP gateway sidecar as
// one unit with a shared lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"

	"prism-terminal/internal/config"
	"prism-terminal/internal/gateway"
	"prism-terminal/internal/theme"
)

const version = "dev"

// Deps carries the shared services a session needs.
type Deps struct {
	Prefs   theme.PreferenceStore
	Gateway *gateway.Client

	// GatewayHandler, when set, is served on the configured HTTP address
	// alongside the SSH listener.
	GatewayHandler http.Handler

	Logger *log.Logger
}

// Runtime wires config + middleware + Wish server as a testable unit.
type Runtime struct {
	cfg           config.Config
	deps          Deps
	middlewareIDs []string
	ssh           *ssh.Server
	http          *http.Server
}

func New(cfg config.Config, deps Deps) (*Runtime, error) {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	r := &Runtime{cfg: cfg, deps: deps}
	r.middlewareIDs = []string{"session-ui", "active-term", "max-sessions", "rate-limiting", "connection-log"}

	address := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	sshServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Listed inner to outer; wish applies them in reverse.
		wish.WithMiddleware(
			bm.Middleware(r.teaHandler),
			activeterm.Middleware(),
			MaxSessionsMiddleware(cfg.MaxSessions),
			RateLimitMiddleware(cfg.RateLimitPerMinute, cfg.MaxSessions, deps.Logger),
			connectionLogMiddleware(deps.Logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh server: %w", err)
	}
	r.ssh = sshServer

	if deps.GatewayHandler != nil {
		r.http = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           deps.GatewayHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return r, nil
}

// MiddlewareIDs returns the session middleware chain, outermost last.
func (r *Runtime) MiddlewareIDs() []string {
	out := make([]string, len(r.middlewareIDs))
	copy(out, r.middlewareIDs)
	return out
}

// Address returns the SSH listen address.
func (r *Runtime) Address() string {
	return r.ssh.Addr
}

// Run serves until ctx is cancelled or a signal arrives, then shuts
// both listeners down.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	errCh := make(chan error, 2)

	r.deps.Logger.Info("startup",
		"event", "startup",
		"version", version,
		"ssh_addr", r.ssh.Addr,
		"http_addr", r.httpAddr(),
		"middleware", r.middlewareIDs,
		"host_key_path", r.cfg.HostKeyPath,
		"idle_timeout", r.cfg.IdleTimeout,
		"max_sessions", r.cfg.MaxSessions,
	)

	go func() {
		err := r.ssh.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	if r.http != nil {
		go func() {
			err := r.http.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errCh <- err
		}()
	}

	select {
	case <-ctx.Done():
		return r.shutdown()
	case err := <-errCh:
		_ = r.shutdown()
		return err
	}
}

func (r *Runtime) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r.deps.Logger.Info("shutdown", "event", "shutdown")
	err := r.ssh.Shutdown(shutdownCtx)
	if r.http != nil {
		if httpErr := r.http.Shutdown(shutdownCtx); err == nil {
			err = httpErr
		}
	}
	if errors.Is(err, ssh.ErrServerClosed) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r *Runtime) httpAddr() string {
	if r.http == nil {
		return ""
	}
	return r.http.Addr
}
