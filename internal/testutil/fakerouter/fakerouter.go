// Package fakerouter runs an in-process routing daemon for tests. It listens
// on a per-test unix socket, records every decoded request, and answers each
// connection with a fixed response body.
package fakerouter

import (
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danmuck/routeshim/internal/protocol"
)

// Router is a scripted stand-in for the routing daemon.
type Router struct {
	listener net.Listener
	response string
	hang     bool

	mu       sync.Mutex
	requests []*protocol.Request
	closed   bool
}

// Start listens on a fresh unix socket under t.TempDir and serves until the
// test ends. Every accepted connection gets response written back after its
// request has been read; an empty response means "accept, read, say nothing".
func Start(t *testing.T, response string) *Router {
	t.Helper()
	return start(t, response, false)
}

// StartSilent accepts connections and reads requests but never responds nor
// closes until the test ends, for exercising read deadlines.
func StartSilent(t *testing.T) *Router {
	t.Helper()
	return start(t, "", true)
}

func start(t *testing.T, response string, hang bool) *Router {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "router.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("fakerouter listen: %v", err)
	}
	r := &Router{listener: listener, response: response, hang: hang}
	go r.serve()
	t.Cleanup(r.Close)
	return r
}

// SocketPath returns the daemon address tests should point the client at.
func (r *Router) SocketPath() string {
	return r.listener.Addr().String()
}

// Requests returns the requests decoded so far, in arrival order.
func (r *Router) Requests() []*protocol.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*protocol.Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// Close stops the listener. Safe to call more than once.
func (r *Router) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()
	_ = r.listener.Close()
}

func (r *Router) serve() {
	for {
		conn, err := r.listener.Accept()
		if err != nil {
			return
		}
		go r.handle(conn)
	}
}

func (r *Router) handle(conn net.Conn) {
	req, err := protocol.DecodeRequest(conn)
	if err == nil {
		r.mu.Lock()
		r.requests = append(r.requests, req)
		r.mu.Unlock()
	}
	if r.hang {
		// Hold the connection open; Close tears it down with the listener.
		buf := make([]byte, 1)
		_, _ = conn.Read(buf)
		_ = conn.Close()
		return
	}
	if r.response != "" {
		_, _ = conn.Write([]byte(r.response))
	}
	_ = conn.Close()
}
