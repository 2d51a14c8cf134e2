package protocol

import (
	"fmt"
	"strings"
)

// Request is one routing round trip's payload: which isolation context to
// target and the exec image the caller asked for. Built fresh per call and
// never reused.
type Request struct {
	Context string
	Path    string
	Argv    []string
	Env     []string
}

// Validate enforces required request fields. Empty Argv and Env are legal.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Context) == "" {
		return fmt.Errorf("%w: context names the target isolation context", ErrMissingContext)
	}
	if r.Path == "" {
		return fmt.Errorf("%w: path of the requested image", ErrMissingCommand)
	}
	return nil
}

// FilterEnviron returns env with every entry whose variable name matches one
// of drop removed. Entries pass through verbatim otherwise, in original order,
// including duplicates and entries without an '=' separator. The caller drops
// the routing activation and loader injection variables here so a forwarded
// environment can never re-trigger routing downstream.
func FilterEnviron(env []string, drop ...string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for _, entry := range env {
		if matchesAny(entry, drop) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func matchesAny(entry string, names []string) bool {
	i := strings.IndexByte(entry, '=')
	if i < 0 {
		return false
	}
	name := entry[:i]
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}
