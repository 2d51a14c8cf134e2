package shim

import (
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"
)

func TestRunSystemExitStatus(t *testing.T) {
	status, err := runSystem("exit 3")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if status != 3 {
		t.Fatalf("status mismatch: got %d want 3", status)
	}
}

func TestRunSystemSuccess(t *testing.T) {
	status, err := runSystem("true")
	if err != nil || status != 0 {
		t.Fatalf("expected clean run, got status=%d err=%v", status, err)
	}
}

func TestOpenPipeRead(t *testing.T) {
	p, err := openPipe("echo hi", PipeRead)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	out, err := io.ReadAll(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hi" {
		t.Fatalf("output mismatch: %q", string(out))
	}
}

func TestOpenPipeWrite(t *testing.T) {
	p, err := openPipe("cat > /dev/null", PipeWrite)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := p.Write([]byte("payload\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenPipeInvalidMode(t *testing.T) {
	if _, err := openPipe("true", "rw"); !errors.Is(err, ErrInvalidPipeMode) {
		t.Fatalf("expected ErrInvalidPipeMode, got %v", err)
	}
}

func TestPipeCloseReportsChildFailure(t *testing.T) {
	p, err := openPipe("exit 9", PipeRead)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = p.Close()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 9 {
		t.Fatalf("expected exit 9 from close, got %v", err)
	}
}

func TestPipeWrongDirection(t *testing.T) {
	p, err := openPipe("true", PipeRead)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer p.Close()
	if _, err := p.Write([]byte("x")); !errors.Is(err, ErrPipeNotWritable) {
		t.Fatalf("expected ErrPipeNotWritable, got %v", err)
	}
}
