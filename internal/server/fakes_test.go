package server

import (
	"context"
	"net"
	"sync"

	"github.com/charmbracelet/ssh"
)

// fakeContext implements ssh.Context over a plain context.Context.
type fakeContext struct {
	context.Context
	mu     sync.Mutex
	values map[any]any
	remote net.Addr
}

func newFakeContext(ctx context.Context, remote net.Addr) *fakeContext {
	return &fakeContext{Context: ctx, values: map[any]any{}, remote: remote}
}

func (f *fakeContext) Lock()                 { f.mu.Lock() }
func (f *fakeContext) Unlock()               { f.mu.Unlock() }
func (f *fakeContext) User() string          { return "guest" }
func (f *fakeContext) SessionID() string     { return "test-session" }
func (f *fakeContext) ClientVersion() string { return "ssh-test-client" }
func (f *fakeContext) ServerVersion() string { return "ssh-test-server" }
func (f *fakeContext) RemoteAddr() net.Addr  { return f.remote }
func (f *fakeContext) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 2222}
}
func (f *fakeContext) Permissions() *ssh.Permissions { return &ssh.Permissions{} }
func (f *fakeContext) SetValue(key, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}
func (f *fakeContext) Value(key any) any {
	f.mu.Lock()
	if v, ok := f.values[key]; ok {
		f.mu.Unlock()
		return v
	}
	f.mu.Unlock()
	return f.Context.Value(key)
}

// fakeSession overrides the parts of ssh.Session the middleware touches;
// anything else panics through the embedded nil interface.
type fakeSession struct {
	ssh.Session

	ctx     *fakeContext
	remote  net.Addr
	user    string
	command []string
	environ []string
	pubKey  ssh.PublicKey
	term    string
	hasPty  bool
	writes  []string
}

func newFakeSession(ctx context.Context, remote net.Addr) *fakeSession {
	return &fakeSession{ctx: newFakeContext(ctx, remote), remote: remote, user: "guest"}
}

func (f *fakeSession) User() string { return f.user }
func (f *fakeSession) Write(p []byte) (int, error) {
	f.writes = append(f.writes, string(p))
	return len(p), nil
}
func (f *fakeSession) RemoteAddr() net.Addr      { return f.remote }
func (f *fakeSession) Context() ssh.Context      { return f.ctx }
func (f *fakeSession) Command() []string         { return f.command }
func (f *fakeSession) Environ() []string         { return f.environ }
func (f *fakeSession) PublicKey() ssh.PublicKey  { return f.pubKey }
func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Term: f.term}, nil, f.hasPty
}
