// Package kvstore defines the backing-store contract memfs builds on, plus
// a default in-memory implementation.
//
// memfs never assumes anything about how its bytes are actually kept: a
// Store is any mapping from string keys to byte values. Swapping the
// default Map for a durable Store (lesiw.io/xfs/memfs/boltstore, a Redis
// client, a cloud key/value service) changes nothing about memfs's path
// semantics, only where the bytes end up.
package kvstore

import "sync"

// A Store is an external mapping from string keys to byte values.
//
// Implementations must be safe for concurrent use by multiple goroutines;
// memfs itself serializes the read-modify-write sequences that span more
// than one key (it reads the metadata blob, mutates it, and writes it back
// under its own lock), but a Store may be shared with other callers that
// bypass memfs entirely.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, creating or overwriting it.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns every stored key with the given prefix, in no
	// particular order.
	Keys(prefix string) ([]string, error)
}

// A Committer is implemented by Stores whose writes can be batched and
// flushed explicitly, rather than persisted as each Set/Delete is called.
//
// memfs calls Commit after every mutating operation unless the operation
// runs under a context returned by [lesiw.io/xfs.DeferCommits], in which
// case the caller is responsible for calling Commit (directly, or via a
// type assertion on the Store it supplied) once its batch of changes is
// complete.
type Committer interface {
	Commit() error
}

// Map is a Store backed by an in-process map, safe for concurrent use. It
// is the default backing store for [lesiw.io/xfs/memfs.New] when no Store
// is supplied, and keeps no state beyond the process's lifetime.
type Map struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{data: make(map[string][]byte)}
}

func (m *Map) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Map) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Map) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Map) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if len(prefix) == 0 || (len(k) >= len(prefix) && k[:len(prefix)] == prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
