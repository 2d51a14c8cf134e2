package shim

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// defaultPath mirrors the search default execvp applies when PATH is unset.
const defaultPath = "/usr/bin:/bin"

// lookPath resolves file against PATH the way execvp does: names containing a
// path separator skip the search entirely, otherwise each PATH directory is
// probed in order for an executable match and the first hit wins. When no
// directory holds a match the bare name comes back with found=false; callers
// still offer it for routing before the real primitive reports its own error.
func lookPath(file string) (resolved string, found bool) {
	if strings.ContainsRune(file, os.PathSeparator) {
		return file, true
	}
	path, ok := os.LookupEnv("PATH")
	if !ok {
		path = defaultPath
	}
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return file, false
}

func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
