package repository

import "sync"

// The process-wide repository instance, constructed lazily on first use.
// A plain mutex is used instead of sync.Once so tests can reset the
// instance between cases.
var (
	instanceMu sync.Mutex
	instance   *Repository
)

// Instance returns the process-wide repository, constructing it from the
// given store on first call. Later calls return the same instance and
// ignore the store argument.
func Instance(store Store) *Repository {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		instance = New(store)
	}
	return instance
}

// ResetInstance discards the process-wide instance so the next Instance call
// constructs a fresh one. Intended for tests.
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}
