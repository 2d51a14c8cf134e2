package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DecodeRequest reads a single routing request from r. It is the daemon-side
// mirror of Encode and accepts exactly the grammar Encode emits: a ROUTE
// preamble, directive lines in any interleaving, and an END terminator.
// Reaching EOF before END yields ErrTruncated.
func DecodeRequest(r io.Reader) (*Request, error) {
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if err != nil {
		return nil, ErrTruncated
	}
	if line != linePreamble {
		return nil, fmt.Errorf("%w: %q", ErrBadPreamble, line)
	}

	req := &Request{}
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, ErrTruncated
		}
		switch {
		case line == lineTerminator:
			if err := req.Validate(); err != nil {
				return nil, err
			}
			return req, nil
		case strings.HasPrefix(line, prefixContext):
			req.Context = line[len(prefixContext):]
		case strings.HasPrefix(line, prefixCommand):
			req.Path = line[len(prefixCommand):]
		case strings.HasPrefix(line, prefixArg):
			req.Argv = append(req.Argv, line[len(prefixArg):])
		case strings.HasPrefix(line, prefixEnv):
			req.Env = append(req.Env, line[len(prefixEnv):])
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownDirective, line)
		}
	}
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
