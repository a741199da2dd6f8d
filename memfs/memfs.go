// Package memfs implements lesiw.io/xfs.FS over a pluggable key/value
// store. Unlike a tree of in-process nodes, every file's content and every
// path's metadata lives in a [lesiw.io/xfs/memfs/kvstore.Store], so the
// same implementation works whether that store is a plain in-memory map or
// a durable [lesiw.io/xfs/memfs/boltstore].
//
// Directories are implicit by default: writing "/a/b/c.ext" makes "/a" and
// "/a/b" behave as directories without any metadata of their own. Mkdir
// records an explicit directory entry, which carries its own timestamps
// and survives even when it has no children.
package memfs

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/memfs/kvstore"
	"lesiw.io/xfs/path"
)

var log = logrus.WithField("pkg", "memfs")

// fileMeta is the metadata recorded for every path, implicit directories
// excepted. It is stored as part of a single JSON blob under metaKey so
// that reads and writes to the directory structure never require scanning
// every content key in the store.
type fileMeta struct {
	Size       int64     `json:"size"`
	IsDir      bool      `json:"is_dir"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

const (
	// metaKey and cwdKey are reserved; no file path ever encodes to them
	// because contentKey always carries the "f:" prefix.
	metaKey = "\x00memfs:meta"
	cwdKey  = "\x00memfs:cwd"
)

// FS is an in-memory filesystem backed by a [kvstore.Store].
type FS struct {
	mu       sync.Mutex
	store    kvstore.Store
	maxBytes int64 // negative means unlimited
}

// An Option configures a [FS] constructed by [New].
type Option func(*FS)

// WithMaxMiB caps the total bytes FS may hold across all stored file
// contents to n mebibytes. A write that would push the total past the cap
// fails with [xfs.ErrSizeLimit] before any mutation is applied. WithMaxMiB(0)
// is a valid, distinct cap: every write of non-empty content is rejected.
func WithMaxMiB(n int) Option {
	return func(f *FS) { f.maxBytes = int64(n) * 1024 * 1024 }
}

// New returns an in-memory filesystem backed by store. If store is nil, a
// fresh [kvstore.Map] is used. By default the filesystem has no size cap;
// pass [WithMaxMiB] to impose one.
func New(store kvstore.Store, opts ...Option) *FS {
	if store == nil {
		store = kvstore.NewMap()
	}
	f := &FS{store: store, maxBytes: -1}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ xfs.FS = (*FS)(nil)

// contentKey returns the reversible, prefixed key under which the content
// of the normalized path p is stored.
func contentKey(p string) string {
	return "f:" + p
}

// commit flushes the store if it supports batched persistence and ctx isn't
// inside a defer-commits scope.
func (f *FS) commit(ctx context.Context) error {
	if xfs.CommitsDeferred(ctx) {
		log.Debug("commit skipped: defer-commits scope active")
		return nil
	}
	if c, ok := f.store.(kvstore.Committer); ok {
		return c.Commit()
	}
	return nil
}

// loadMeta reads and decodes the metadata blob. The caller must hold f.mu.
func (f *FS) loadMeta() (map[string]fileMeta, error) {
	raw, ok, err := f.store.Get(metaKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]fileMeta{}, nil
	}
	m := map[string]fileMeta{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// saveMeta encodes and writes the metadata blob, then commits. The caller
// must hold f.mu.
func (f *FS) saveMeta(ctx context.Context, m map[string]fileMeta) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := f.store.Set(metaKey, raw); err != nil {
		return err
	}
	return f.commit(ctx)
}

// Getwd returns the filesystem's persisted current working directory,
// always an absolute virtual path. Unlike [xfs.WorkDir], which is scoped to
// a context, this cwd lives in the backing store and is visible to any
// caller of this FS regardless of context.
func (f *FS) Getwd(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getcwdLocked()
}

func (f *FS) getcwdLocked() (string, error) {
	raw, ok, err := f.store.Get(cwdKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "/", nil
	}
	return string(raw), nil
}

// Chdir sets the filesystem's persisted current working directory. dir is
// resolved against the existing cwd if relative.
func (f *FS) Chdir(ctx context.Context, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cwd, err := f.getcwdLocked()
	if err != nil {
		return err
	}
	resolved := resolveAgainst(cwd, dir)
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	isDir, exists := f.entryKindLocked(meta, resolved)
	if !exists {
		return &xfs.PathError{Op: "chdir", Path: dir, Err: xfs.ErrNotExist}
	}
	if !isDir {
		return &xfs.PathError{Op: "chdir", Path: dir, Err: xfs.ErrNotDir}
	}
	if err := f.store.Set(cwdKey, []byte(resolved)); err != nil {
		return err
	}
	return f.commit(ctx)
}

// resolveAgainst normalizes p, joining it against base when relative.
func resolveAgainst(base, p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Clean(path.Join(base, p))
}

// resolve computes the normalized absolute virtual path for name, honoring
// [xfs.WorkDir] from ctx when name is relative, falling back to the
// filesystem's own persisted cwd.
func (f *FS) resolve(ctx context.Context, name string) (string, error) {
	name = path.Clean(name)
	if path.IsAbs(name) {
		return name, nil
	}
	if wd := xfs.WorkDir(ctx); wd != "" {
		return resolveAgainst(path.Clean(wd), name), nil
	}
	f.mu.Lock()
	cwd, err := f.getcwdLocked()
	f.mu.Unlock()
	if err != nil {
		return "", err
	}
	return resolveAgainst(cwd, name), nil
}
