package protocol

import (
	"io"
	"strings"
)

// Request line directives. One directive per line, newline terminated.
const (
	linePreamble   = "ROUTE"
	lineTerminator = "END"

	prefixContext = "CONTEXT:"
	prefixCommand = "CMD:"
	prefixArg     = "ARG:"
	prefixEnv     = "ENV:"
)

// Encode writes req to w using the routing wire format. Argument and
// environment lines preserve the caller's original order; either set may be
// absent. Values are written verbatim: the grammar defines no escaping, so an
// embedded newline is indistinguishable from a line boundary on the wire.
func Encode(w io.Writer, req *Request) error {
	if req == nil {
		return ErrNilRequest
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(linePreamble + "\n")
	b.WriteString(prefixContext + req.Context + "\n")
	b.WriteString(prefixCommand + req.Path + "\n")
	for _, arg := range req.Argv {
		b.WriteString(prefixArg + arg + "\n")
	}
	for _, entry := range req.Env {
		b.WriteString(prefixEnv + entry + "\n")
	}
	b.WriteString(lineTerminator + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
