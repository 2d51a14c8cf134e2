package shim

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Pipe modes accepted by Popen.
const (
	PipeRead  = "r"
	PipeWrite = "w"
)

// Pipe is the live stream handle returned by Popen: one end of a pipe wired
// to a shell subprocess. Mode "r" reads the child's stdout; mode "w" writes
// its stdin. Close reaps the child.
type Pipe struct {
	r   io.ReadCloser
	w   io.WriteCloser
	cmd *exec.Cmd
}

// openPipe is the real popen primitive.
func openPipe(command, mode string) (*Pipe, error) {
	cmd := exec.Command(shellPath, "-c", command)
	cmd.Stderr = os.Stderr

	switch mode {
	case PipeRead:
		cmd.Stdin = os.Stdin
		r, err := cmd.StdoutPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return &Pipe{r: r, cmd: cmd}, nil
	case PipeWrite:
		cmd.Stdout = os.Stdout
		w, err := cmd.StdinPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return &Pipe{w: w, cmd: cmd}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPipeMode, mode)
	}
}

func (p *Pipe) Read(b []byte) (int, error) {
	if p.r == nil {
		return 0, ErrPipeNotReadable
	}
	return p.r.Read(b)
}

func (p *Pipe) Write(b []byte) (int, error) {
	if p.w == nil {
		return 0, ErrPipeNotWritable
	}
	return p.w.Write(b)
}

// Close closes the stream end and waits for the shell, like pclose. A nonzero
// child exit surfaces as the *exec.ExitError from Wait.
func (p *Pipe) Close() error {
	if p.w != nil {
		_ = p.w.Close()
	}
	if p.r != nil {
		_ = p.r.Close()
	}
	return p.cmd.Wait()
}
