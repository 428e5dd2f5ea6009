package userdata

import "sync"

var (
	defaultMu    sync.Mutex
	defaultStore *Store
	defaultPath  string
)

// Default returns the process-wide default store, lazily loading it from
// path on first call. Subsequent calls ignore path and return the same
// instance. Hosts that want an owned instance instead of this convenience
// singleton should construct their own with New/Load directly (spec §9:
// "prefer an owned instance passed through construction; if a process-wide
// default is convenient, implement lazy-init with explicit reset and
// shutdown entry points rather than hidden static lifetime").
func Default(path string) *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultStore == nil {
		defaultPath = path
		defaultStore = Load(path)
	}
	return defaultStore
}

// ResetDefault resets the default store's state (in-memory and on disk) if
// one has been initialized; it is a no-op otherwise.
func ResetDefault() error {
	defaultMu.Lock()
	store := defaultStore
	defaultMu.Unlock()

	if store == nil {
		return nil
	}
	return store.Reset()
}

// ShutdownDefault saves the default store (if initialized) and clears the
// lazy-init slot, so a subsequent Default call reloads from disk.
func ShutdownDefault() error {
	defaultMu.Lock()
	store := defaultStore
	defaultStore = nil
	defaultMu.Unlock()

	if store == nil {
		return nil
	}
	return store.Save()
}
