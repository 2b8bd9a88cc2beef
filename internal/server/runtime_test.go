package server

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"prism-terminal/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Host:               "127.0.0.1",
		Port:               2222,
		HostKeyPath:        filepath.Join(t.TempDir(), "host_ed25519"),
		IdleTimeout:        time.Minute,
		MaxSessions:        4,
		RateLimitPerMinute: 30,
		HTTPAddr:           "127.0.0.1:0",
	}
}

func TestNewRuntimeStartupPipeline(t *testing.T) {
	runtime, err := New(testConfig(t), Deps{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := runtime.Address(); got != "127.0.0.1:2222" {
		t.Fatalf("Address() = %q, want %q", got, "127.0.0.1:2222")
	}

	want := []string{"session-ui", "active-term", "max-sessions", "rate-limiting", "connection-log"}
	got := runtime.MiddlewareIDs()
	if len(got) != len(want) {
		t.Fatalf("middleware length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("middleware[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewRuntimeWithoutGatewayHandlerSkipsHTTP(t *testing.T) {
	runtime, err := New(testConfig(t), Deps{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if runtime.http != nil {
		t.Fatal("expected no HTTP server without a gateway handler")
	}
	if runtime.httpAddr() != "" {
		t.Fatalf("httpAddr() = %q, want empty", runtime.httpAddr())
	}
}

func TestNewRuntimeWithGatewayHandlerServesHTTP(t *testing.T) {
	handler := http.NewServeMux()
	runtime, err := New(testConfig(t), Deps{GatewayHandler: handler})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if runtime.http == nil {
		t.Fatal("expected an HTTP server with a gateway handler")
	}
	if runtime.httpAddr() != "127.0.0.1:0" {
		t.Fatalf("httpAddr() = %q", runtime.httpAddr())
	}
}
