// Package store provides an encrypted record store backed by a filesystem.
// Records live in a single zstore collection; the master password never
// outlives Open.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zcurp/internal/identity"
)

const recordsCollection = "records"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store manages encrypted CURP records.
type Store struct {
	db      *zstore.Store
	records *zstore.Collection[identity.Record]
}

// Open opens or initializes an encrypted store on fsys. The password slice
// is erased before Open returns.
func Open(fsys zfilesystem.ReadWriteFileFS, password []byte) (*Store, error) {
	defer zcrypto.Erase(password)

	db, err := zstore.Open(fsys, password)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	col, err := zstore.NewCollection[identity.Record](db, recordsCollection)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: records collection: %w", err)
	}

	return &Store{db: db, records: col}, nil
}

// Save encrypts and writes a record.
func (s *Store) Save(r identity.Record) error {
	if err := s.records.Put(r.ID, r); err != nil {
		return fmt.Errorf("save record %s: %w", r.ID, err)
	}
	return nil
}

// Get decrypts and returns a single record by ID.
func (s *Store) Get(id string) (identity.Record, error) {
	ok, err := s.exists(id)
	if err != nil {
		return identity.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	if !ok {
		return identity.Record{}, ErrNotFound
	}

	r, err := s.records.Get(id)
	if err != nil {
		return identity.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return r, nil
}

// List returns all stored records sorted by CreatedAt descending.
func (s *Store) List() ([]identity.Record, error) {
	rs, err := s.records.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	// zstore does not guarantee order
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})

	return rs, nil
}

// Delete removes a record by ID.
func (s *Store) Delete(id string) error {
	ok, err := s.exists(id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	if err := s.records.Delete(id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying store and its key material.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

// exists reports whether a record with id is present. zstore has no
// typed not-found error, so presence is checked against the listing.
func (s *Store) exists(id string) (bool, error) {
	rs, err := s.records.List()
	if err != nil {
		return false, err
	}
	for _, r := range rs {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}
