package shim

import (
	"errors"
	"os"
	"os/exec"
)

// runSystem is the real system primitive: run the command under the shell
// with inherited standard streams and report the shell's exit status. A shell
// that cannot be started at all reports 127, the way exec failure inside
// system(3) does.
func runSystem(command string) (int, error) {
	cmd := exec.Command(shellPath, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 127, err
}
