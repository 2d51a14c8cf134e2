// Package routing decides whether an intercepted exec call leaves the
// current isolation context and performs the daemon round trip when it does.
package routing

import "os"

const (
	// ContextEnv activates routing when present; its value names the target
	// isolation context for every intercepted call in the process.
	ContextEnv = "ROUTESHIM_CONTEXT"

	// InjectionEnv is the loader variable responsible for pulling the shim
	// into a process. It must never be forwarded to a routed or sub-invoked
	// process, or the shim re-activates where it should not.
	InjectionEnv = "LD_PRELOAD"
)

// ShouldRoute reports whether routing is active for this process. Presence of
// the activation variable is the whole policy; the value may legally be
// re-read between calls if the host process mutates its own environment.
func ShouldRoute() bool {
	_, ok := os.LookupEnv(ContextEnv)
	return ok
}

// TargetContext returns the active isolation context name, if any.
func TargetContext() (string, bool) {
	return os.LookupEnv(ContextEnv)
}
