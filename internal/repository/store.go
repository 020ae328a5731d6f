// Package repository provides the single source of truth for bookings, price
// alerts, and the user profile. The whole state is one serializable document
// persisted wholesale to a durable key-value slot on every mutation.
package repository

import "sync"

// Store is the durable key-value slot the repository persists into.
// One fixed slot holds the entire document as a single serialized blob.
type Store interface {
	// Load reads the persisted document. A missing document is not an
	// error: implementations return (nil, nil) when nothing was saved yet.
	Load() ([]byte, error)

	// Save overwrites the slot with the given document. The write is
	// all-or-nothing: readers never observe a partial document.
	Save(data []byte) error
}

// MemoryStore is an in-memory Store for tests. It records how many times
// Save was called so tests can assert on persistence behavior.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates an in-memory store pre-seeded with a document.
func NewMemoryStoreWith(data []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), data...)}
}

// Load implements Store.
func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

// Save implements Store.
func (s *MemoryStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

// SaveCount returns the number of Save calls observed.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
