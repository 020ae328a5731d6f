package repository

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketName is the single bucket holding the reservation document.
const bucketName = "reservations"

// BoltStore persists the reservation document into a bbolt file, keyed by a
// fixed, version-suffixed name so a future schema change can move to a new
// key without destroying the old document.
type BoltStore struct {
	db  *bolt.DB
	key []byte
}

// NewBoltStore opens (or creates) the database file at path and prepares the
// reservations bucket. The key names the slot the document lives under.
func NewBoltStore(path, key string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare bucket: %w", err)
	}

	return &BoltStore{db: db, key: []byte(key)}, nil
}

// Load implements Store.
func (s *BoltStore) Load() ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get(s.key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return data, nil
}

// Save implements Store. The put happens inside a single write transaction,
// so the slot is replaced atomically.
func (s *BoltStore) Save(data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(s.key, data)
	})
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Ensure interfaces are implemented.
var (
	_ Store = (*BoltStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
