// ABOUTME: Badger-backed KV implementation of the native store contract.
// ABOUTME: Samples live under per-type key prefixes with JSON values.
package badgerstore

import (
	"fmt"
	"sync/atomic"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

const samplePrefix = "sample:"

// Store is a local sample store on Badger. Range filtering, sorting, and
// limiting happen in memory after a prefix scan; KV offers no secondary
// indexes.
type Store struct {
	db     *badger.DB
	closed atomic.Bool
}

// Open opens or creates a sample store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Available reports whether the store can serve requests.
func (s *Store) Available() bool {
	return !s.closed.Load()
}

// Close closes the database. The store reports unavailable afterward.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// typePrefix scopes keys to one native type.
func typePrefix(t store.TypeHandle) []byte {
	return []byte(samplePrefix + t.Code + ":")
}

// sampleKey addresses one sample.
func sampleKey(t store.TypeHandle, id string) []byte {
	return append(typePrefix(t), id...)
}

var _ store.Store = (*Store)(nil)
