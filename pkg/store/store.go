// Package store persists the command history in a bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.clint.sh/pkg/logutil"
	. "src.clint.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketCmd = "cmd"

// DBStore is the permanent storage backend for the command history.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// Another process holding the database blocks opening it; give up after this
// long.
var openTimeout = time.Second

// NewStore opens the database file dbname, creating it if needed.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB, initializing the buckets
// it needs.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Info("initializing store", "path", db.Path())
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize command history bucket: %w", err)
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
