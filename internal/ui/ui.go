// Package ui provides terminal output helpers: quiet-mode state and pager
// support for long help text.
package ui

import "sync"

var (
	quietMode bool
	modeMu    sync.RWMutex
)

// EnableQuiet enables quiet mode globally (used by --quiet/-q). In quiet
// mode, non-essential output is suppressed.
func EnableQuiet() {
	modeMu.Lock()
	quietMode = true
	modeMu.Unlock()
}

// IsQuiet returns true if quiet mode is enabled. Error output is always
// printed; callers consult this before emitting advisory text.
func IsQuiet() bool {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return quietMode
}
