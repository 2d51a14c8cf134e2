package shim

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// shellPath is the interpreter used by the shell-command primitives.
const shellPath = "/bin/sh"

var (
	ErrUnresolvedPrimitive = errors.New("shim: unresolved primitive")
	ErrNilClient           = errors.New("shim: routing client required")
	ErrInvalidPipeMode     = errors.New("shim: invalid pipe mode")
	ErrPipeNotReadable     = errors.New("shim: pipe not opened for reading")
	ErrPipeNotWritable     = errors.New("shim: pipe not opened for writing")
)

// ExecFunc replaces the current process image; it returns only on failure.
type ExecFunc func(path string, argv []string, envp []string) error

// SystemFunc runs a shell command to completion and reports its exit status.
type SystemFunc func(command string) (int, error)

// PopenFunc starts a shell command with one end of a pipe attached.
type PopenFunc func(command, mode string) (*Pipe, error)

// Capabilities bundles the real process-creation primitives the adapters fall
// back to. Resolve once at process start and treat as immutable afterwards;
// concurrent adapter calls read it without synchronization.
type Capabilities struct {
	Exec   ExecFunc
	System SystemFunc
	Popen  PopenFunc
}

// ResolveCapabilities binds the host primitives. Idempotent: every call yields
// an equivalent bundle. The PATH-searching and variadic exec variants all
// reduce to Exec after normalization, so one slot covers the exec family.
func ResolveCapabilities() Capabilities {
	return Capabilities{
		Exec:   unix.Exec,
		System: runSystem,
		Popen:  openPipe,
	}
}

// validate rejects a bundle with unset slots. Invoking an adapter over an
// unset primitive would be unrecoverable, so construction refuses it outright
// rather than discovering it mid-call.
func (c Capabilities) validate() error {
	if c.Exec == nil {
		return fmt.Errorf("%w: exec", ErrUnresolvedPrimitive)
	}
	if c.System == nil {
		return fmt.Errorf("%w: system", ErrUnresolvedPrimitive)
	}
	if c.Popen == nil {
		return fmt.Errorf("%w: popen", ErrUnresolvedPrimitive)
	}
	return nil
}
