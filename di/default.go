package di

import "sync"

// The process-wide default container. Components that are not handed a
// container explicitly fall back to this slot; it is nil until the first
// SetDefault call and cleared again only by Reset.
var (
	defaultMu        sync.RWMutex
	defaultContainer Container
)

// SetDefault installs c as the process-wide default container.
func SetDefault(c Container) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultContainer = c
}

// Default returns the process-wide default container, or nil when none has
// been installed.
func Default() Container {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultContainer
}

// Reset clears the process-wide default container.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultContainer = nil
}
