package shim

import (
	"os"
	"strings"
	"sync"
)

// The process environment is a single shared table; concurrent scrub windows
// would corrupt each other's view of it.
var envMu sync.Mutex

// withScrubbedEnv runs fn with the named variables removed from the ambient
// environment, holding the process-wide environment lock for the duration and
// restoring the original environment on every exit path.
func withScrubbedEnv(drop []string, fn func() error) error {
	envMu.Lock()
	defer envMu.Unlock()

	saved := os.Environ()
	defer restoreEnviron(saved)

	for _, name := range drop {
		os.Unsetenv(name)
	}
	return fn()
}

func restoreEnviron(entries []string) {
	os.Clearenv()
	for _, entry := range entries {
		i := strings.IndexByte(entry, '=')
		if i < 0 {
			continue
		}
		os.Setenv(entry[:i], entry[i+1:])
	}
}
