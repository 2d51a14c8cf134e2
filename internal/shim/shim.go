package shim

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/routeshim/internal/observability"
	"github.com/danmuck/routeshim/internal/protocol"
	"github.com/danmuck/routeshim/internal/routing"
)

// Primitive names for logs and metrics labels.
const (
	primExecve = "execve"
	primExecvp = "execvp"
	primExecl  = "execl"
	primExeclp = "execlp"
	primSystem = "system"
)

// Shim front-ends the intercepted primitives with the routing decision.
type Shim struct {
	caps   Capabilities
	client *routing.Client
	exit   func(int)
}

// New builds a shim over a resolved capability bundle. A bundle with unset
// slots is rejected here so an adapter can never reach an absent primitive.
func New(caps Capabilities, client *routing.Client) (*Shim, error) {
	if err := caps.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNilClient
	}
	return &Shim{caps: caps, client: client, exit: os.Exit}, nil
}

// Execve mirrors execve(2). A daemon decision terminates the process with the
// daemon's status; otherwise the real primitive replaces the process image,
// so a return always signals failure.
func (s *Shim) Execve(path string, argv, envp []string) error {
	return s.execve(primExecve, path, argv, envp)
}

// Execl collects its variadic argument list and delegates with the ambient
// environment, matching execl(3).
func (s *Shim) Execl(path string, args ...string) error {
	return s.execve(primExecl, path, args, os.Environ())
}

// Execvp mirrors execvp(3): bare names resolve against PATH, and a name found
// nowhere is still offered for routing, then handed to the real primitive
// unresolved.
func (s *Shim) Execvp(file string, argv []string) error {
	return s.execvp(primExecvp, file, argv)
}

// Execlp is the PATH-searching variadic variant, matching execlp(3).
func (s *Shim) Execlp(file string, args ...string) error {
	return s.execvp(primExeclp, file, args)
}

// System mirrors system(3): the command runs as "/bin/sh -c <command>". A
// routed decision terminates the process; locally the shell's exit status is
// returned.
func (s *Shim) System(command string) (int, error) {
	argv := []string{"sh", "-c", command}
	if status, decided := s.route(primSystem, shellPath, argv, os.Environ()); decided {
		s.exit(status)
		return status, nil
	}
	return s.caps.System(command)
}

// Popen mirrors popen(3). A live pipe handle cannot cross the line protocol,
// so the command always runs locally; with routing active the activation and
// injection variables are scrubbed from the ambient environment for the spawn
// window so the child cannot re-enter routing. A weaker guarantee than true
// routing, and a documented scope limit.
func (s *Shim) Popen(command, mode string) (*Pipe, error) {
	if !routing.ShouldRoute() {
		return s.caps.Popen(command, mode)
	}
	var pipe *Pipe
	err := withScrubbedEnv([]string{routing.ContextEnv, routing.InjectionEnv}, func() error {
		var err error
		pipe, err = s.caps.Popen(command, mode)
		return err
	})
	return pipe, err
}

func (s *Shim) execve(primitive, path string, argv, envp []string) error {
	if status, decided := s.route(primitive, path, argv, envp); decided {
		s.exit(status)
		return nil
	}
	return s.caps.Exec(path, argv, envp)
}

func (s *Shim) execvp(primitive, file string, argv []string) error {
	resolved, _ := lookPath(file)
	if status, decided := s.route(primitive, resolved, argv, os.Environ()); decided {
		s.exit(status)
		return nil
	}
	// An unresolved name is handed to the real primitive as given; it
	// resolves against the working directory and reports its own error.
	return s.caps.Exec(resolved, argv, os.Environ())
}

// route attempts one daemon round trip. decided=false covers every failure
// mode: routing inactive, daemon unreachable, no response, unusable response.
func (s *Shim) route(primitive, path string, argv, envp []string) (status int, decided bool) {
	target, ok := routing.TargetContext()
	if !ok {
		return 0, false
	}
	observability.RecordRouteAttempt(primitive)

	req := &protocol.Request{
		Context: target,
		Path:    path,
		Argv:    argv,
		Env:     protocol.FilterEnviron(envp, routing.ContextEnv, routing.InjectionEnv),
	}
	d := s.client.Send(req)
	if !d.Routed {
		observability.RecordFallback(primitive, d.Reason)
		log.Debug().
			Str("primitive", primitive).
			Str("reason", d.Reason).
			Msg("routing undecided, falling back")
		return 0, false
	}
	observability.RecordRouteDecision(primitive, d.Status)
	log.Debug().
		Str("primitive", primitive).
		Str("context", target).
		Int("status", d.Status).
		Msg("routed")
	return d.Status, true
}
