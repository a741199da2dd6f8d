// Package boltstore implements [lesiw.io/xfs/memfs/kvstore.Store] on top of
// a [go.etcd.io/bbolt] database file, giving memfs durability across
// process restarts.
package boltstore

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketName = []byte("memfs")

// Store is a [lesiw.io/xfs/memfs/kvstore.Store] backed by a bbolt database.
// All reads and writes happen inside bbolt transactions, so a Store is safe
// for concurrent use without an additional lock.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if necessary) the bbolt database at path and returns
// a Store backed by it. Callers should Close the returned Store when done.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("boltstore: init bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

func (s *Store) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && hasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	return keys, err
}

func hasPrefix(b, prefix []byte) bool {
	if len(prefix) == 0 {
		return true
	}
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Commit is a no-op: bbolt already commits each Update transaction when it
// returns, so a boltstore.Store has nothing to batch. It exists only to
// satisfy [lesiw.io/xfs/memfs/kvstore.Committer], so memfs's
// defer-commits scope degrades gracefully rather than failing a type
// assertion against a Store that happens to need no explicit flush.
func (s *Store) Commit() error { return nil }

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}
