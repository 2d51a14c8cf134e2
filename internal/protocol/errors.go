package protocol

import "errors"

var (
	ErrNilRequest       = errors.New("protocol: nil request")
	ErrMissingContext   = errors.New("protocol: missing context")
	ErrMissingCommand   = errors.New("protocol: missing command")
	ErrBadPreamble      = errors.New("protocol: bad preamble")
	ErrUnknownDirective = errors.New("protocol: unknown directive")
	ErrTruncated        = errors.New("protocol: truncated request")
	ErrNoDecision       = errors.New("protocol: no decision")
	ErrMalformedStatus  = errors.New("protocol: malformed status")
)
