package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxStatusBytes bounds the daemon response read. The daemon answers with a
// short decimal exit status or nothing at all.
const MaxStatusBytes = 32

// ParseStatus interprets a raw daemon response. An empty or all-whitespace
// response is no decision. A non-numeric response is malformed and is also
// treated as no decision by callers; it is never mistaken for exit status 0.
func ParseStatus(raw []byte) (int, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, ErrNoDecision
	}
	status, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedStatus, s)
	}
	return status, nil
}
