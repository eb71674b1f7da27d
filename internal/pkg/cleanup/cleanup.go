// Package cleanup removes paths at process exit when they could not be
// deleted at the time the failure occurred.
package cleanup

import (
	"os"
	"sync"

	"github.com/doeshing/jer-go/internal/ports"
)

var (
	mu      sync.Mutex
	pending []string
)

// Defer registers path for removal by Run. Registering the same path twice
// is a no-op.
func Defer(path string) {
	if path == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, p := range pending {
		if p == path {
			return
		}
	}
	pending = append(pending, path)
}

// Pending returns the registered paths in registration order.
func Pending() []string {
	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), pending...)
}

// Run removes every registered path recursively. Failures are logged and
// otherwise ignored. Run is called from main before the process exits.
func Run(log ports.Logger) {
	mu.Lock()
	paths := pending
	pending = nil
	mu.Unlock()

	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil && log != nil {
			log.Warn("deferred cleanup failed", map[string]interface{}{"path": p, "error": err.Error()})
		}
	}
}
