package routing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/routeshim/internal/protocol"
	"github.com/danmuck/routeshim/internal/testutil/fakerouter"
	"github.com/danmuck/routeshim/internal/testutil/testlog"
)

func testRequest() *protocol.Request {
	return &protocol.Request{
		Context: "contextA",
		Path:    "/bin/sh",
		Argv:    []string{"sh", "-c", "echo hi"},
		Env:     []string{"HOME=/root"},
	}
}

func TestSendDecidedResponse(t *testing.T) {
	testlog.Start(t)
	router := fakerouter.Start(t, "42")
	client := NewClient(TransportConfig{SocketPath: router.SocketPath()})

	d := client.Send(testRequest())
	if !d.Routed || d.Status != 42 {
		t.Fatalf("expected decided status 42, got %+v", d)
	}

	reqs := router.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if reqs[0].Context != "contextA" || reqs[0].Path != "/bin/sh" {
		t.Fatalf("request mismatch: %+v", reqs[0])
	}
}

func TestSendZeroStatusIsADecision(t *testing.T) {
	testlog.Start(t)
	router := fakerouter.Start(t, "0")
	client := NewClient(TransportConfig{SocketPath: router.SocketPath()})

	d := client.Send(testRequest())
	if !d.Routed || d.Status != 0 {
		t.Fatalf("expected decided status 0, got %+v", d)
	}
}

func TestSendNoDaemon(t *testing.T) {
	testlog.Start(t)
	client := NewClient(TransportConfig{
		SocketPath:     filepath.Join(t.TempDir(), "absent.sock"),
		ConnectTimeout: 200 * time.Millisecond,
	})
	d := client.Send(testRequest())
	if d.Routed {
		t.Fatalf("expected undecided, got %+v", d)
	}
	if d.Reason != ReasonDial {
		t.Fatalf("reason mismatch: %q", d.Reason)
	}
}

func TestSendEmptyResponseIsUndecided(t *testing.T) {
	testlog.Start(t)
	router := fakerouter.Start(t, "")
	client := NewClient(TransportConfig{SocketPath: router.SocketPath()})

	d := client.Send(testRequest())
	if d.Routed {
		t.Fatalf("expected undecided, got %+v", d)
	}
	if d.Reason != ReasonRead {
		t.Fatalf("reason mismatch: %q", d.Reason)
	}
}

func TestSendMalformedResponseIsUndecided(t *testing.T) {
	testlog.Start(t)
	router := fakerouter.Start(t, "not-a-status")
	client := NewClient(TransportConfig{SocketPath: router.SocketPath()})

	d := client.Send(testRequest())
	if d.Routed {
		t.Fatalf("malformed response must not be mistaken for status 0: %+v", d)
	}
	if d.Reason != ReasonStatus {
		t.Fatalf("reason mismatch: %q", d.Reason)
	}
}

func TestSendReadDeadline(t *testing.T) {
	testlog.Start(t)
	router := fakerouter.StartSilent(t)
	client := NewClient(TransportConfig{
		SocketPath:  router.SocketPath(),
		ReadTimeout: 150 * time.Millisecond,
	})

	start := time.Now()
	d := client.Send(testRequest())
	if d.Routed {
		t.Fatalf("expected undecided, got %+v", d)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("read deadline not applied: blocked %v", elapsed)
	}
}

func TestTransportConfigWithDefaults(t *testing.T) {
	cfg := TransportConfig{}.WithDefaults()
	def := DefaultTransportConfig()
	if cfg != def {
		t.Fatalf("zero config must adopt defaults: got %+v want %+v", cfg, def)
	}

	custom := TransportConfig{SocketPath: "/run/alt.sock", ReadTimeout: time.Second}.WithDefaults()
	if custom.SocketPath != "/run/alt.sock" || custom.ReadTimeout != time.Second {
		t.Fatalf("explicit fields must survive: %+v", custom)
	}
	if custom.ConnectTimeout != def.ConnectTimeout || custom.WriteTimeout != def.WriteTimeout {
		t.Fatalf("unset fields must default: %+v", custom)
	}
}
