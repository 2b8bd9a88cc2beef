package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// MaxSessionsMiddleware caps concurrent sessions. A slot is released
// exactly once, whether the handler returns, panics, or the session
// context is cancelled first.
func MaxSessionsMiddleware(limit int) wish.Middleware {
	if limit <= 0 {
		limit = 32
	}
	slots := make(chan struct{}, limit)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			select {
			case slots <- struct{}{}:
			default:
				_, _ = s.Write([]byte("max sessions exceeded\n"))
				return
			}

			var once sync.Once
			release := func() {
				once.Do(func() { <-slots })
			}

			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-s.Context().Done():
					release()
				case <-done:
				}
			}()

			defer func() {
				if rec := recover(); rec != nil {
					log.Error("session handler panicked", "event", "session_panic", "panic", rec)
				}
				release()
			}()
			next(s)
		}
	}
}
