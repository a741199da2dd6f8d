package memfs

import (
	"context"
	"iter"
	"sort"
	"strings"
	"time"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/path"
)

var _ xfs.MkdirFS = (*FS)(nil)

// Mkdir creates name as an explicit directory. The parent must already
// exist (as an explicit or implicit directory); use
// [lesiw.io/xfs.MkdirAll] to create parents automatically.
func (f *FS) Mkdir(ctx context.Context, name string) error {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	if _, exists := f.entryKindLocked(meta, p); exists {
		return &xfs.PathError{Op: "mkdir", Path: name, Err: xfs.ErrExist}
	}
	if parent := path.Dir(p); parent != p {
		if isDir, exists := f.entryKindLocked(meta, parent); !exists || !isDir {
			return &xfs.PathError{Op: "mkdir", Path: name, Err: xfs.ErrNotExist}
		}
	}
	now := time.Now().UTC()
	meta[p] = fileMeta{IsDir: true, CreatedAt: now, ModifiedAt: now}
	return f.saveMeta(ctx, meta)
}

var _ xfs.RemoveFS = (*FS)(nil)

// Remove removes name. A directory must be empty (no files or explicit
// subdirectories under it) to be removed.
func (f *FS) Remove(ctx context.Context, name string) error {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	isDir, exists := f.entryKindLocked(meta, p)
	if !exists {
		return &xfs.PathError{Op: "remove", Path: name, Err: xfs.ErrNotExist}
	}
	if isDir {
		if len(childNames(meta, p)) > 0 {
			return &xfs.PathError{Op: "remove", Path: name, Err: xfs.ErrDirNotEmpty}
		}
		delete(meta, p)
		return f.saveMeta(ctx, meta)
	}
	delete(meta, p)
	if err := f.store.Delete(contentKey(p)); err != nil {
		return err
	}
	return f.saveMeta(ctx, meta)
}

var _ xfs.RemoveAllFS = (*FS)(nil)

// RemoveAll removes name and everything under it. Removing a path that
// doesn't exist is not an error, matching [os.RemoveAll].
func (f *FS) RemoveAll(ctx context.Context, name string) error {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	prefix := p
	if prefix != "/" {
		prefix += "/"
	}
	for k, m := range meta {
		if k != p && !strings.HasPrefix(k, prefix) {
			continue
		}
		delete(meta, k)
		if !m.IsDir {
			if err := f.store.Delete(contentKey(k)); err != nil {
				return err
			}
		}
	}
	return f.saveMeta(ctx, meta)
}

var _ xfs.RemoveManyFS = (*FS)(nil)

// RemoveMany removes every named path as a single metadata commit.
func (f *FS) RemoveMany(ctx context.Context, names []string) error {
	resolved := make([]string, len(names))
	for i, name := range names {
		p, err := f.resolve(ctx, name)
		if err != nil {
			return err
		}
		resolved[i] = p
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	for _, p := range resolved {
		m, ok := meta[p]
		if !ok {
			continue
		}
		delete(meta, p)
		if !m.IsDir {
			if err := f.store.Delete(contentKey(p)); err != nil {
				return err
			}
		}
	}
	return f.saveMeta(ctx, meta)
}

var _ xfs.RenameFS = (*FS)(nil)

// Rename moves oldname to newname. For a directory, every key under
// oldname is moved to the corresponding key under newname, preserving
// each entry's created-at.
func (f *FS) Rename(ctx context.Context, oldname, newname string) error {
	oldp, err := f.resolve(ctx, oldname)
	if err != nil {
		return err
	}
	newp, err := f.resolve(ctx, newname)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	isDir, exists := f.entryKindLocked(meta, oldp)
	if !exists {
		return &xfs.PathError{Op: "rename", Path: oldname, Err: xfs.ErrNotExist}
	}

	if !isDir {
		data, ok, err := f.store.Get(contentKey(oldp))
		if err != nil {
			return err
		}
		m := meta[oldp]
		m.ModifiedAt = time.Now().UTC()
		delete(meta, oldp)
		meta[newp] = m
		if ok {
			if err := f.store.Set(contentKey(newp), data); err != nil {
				return err
			}
			if err := f.store.Delete(contentKey(oldp)); err != nil {
				return err
			}
		}
		return f.saveMeta(ctx, meta)
	}

	prefix := oldp
	if prefix != "/" {
		prefix += "/"
	}
	renamed := make(map[string]fileMeta)
	for k, m := range meta {
		var dest string
		switch {
		case k == oldp:
			dest = newp
		case strings.HasPrefix(k, prefix):
			dest = path.Join(newp, k[len(prefix):])
		default:
			continue
		}
		delete(meta, k)
		renamed[dest] = m
		if !m.IsDir {
			data, ok, err := f.store.Get(contentKey(k))
			if err != nil {
				return err
			}
			if ok {
				if err := f.store.Set(contentKey(dest), data); err != nil {
					return err
				}
				if err := f.store.Delete(contentKey(k)); err != nil {
					return err
				}
			}
		}
	}
	for k, m := range renamed {
		meta[k] = m
	}
	return f.saveMeta(ctx, meta)
}

// childNames returns the direct children of dir: explicit entries keep
// their metadata, paths that are directories only because something
// nested under them exists are synthesized as empty implicit directories.
func childNames(meta map[string]fileMeta, dir string) map[string]fileMeta {
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	children := make(map[string]fileMeta)
	for k, m := range meta {
		if k == dir || !strings.HasPrefix(k, prefix) {
			continue
		}
		rest := k[len(prefix):]
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			name := rest[:idx]
			if _, ok := children[name]; !ok {
				children[name] = fileMeta{IsDir: true}
			}
			continue
		}
		children[rest] = m
	}
	return children
}

// dirEntry implements xfs.DirEntry for entries returned by ReadDir.
type dirEntry struct {
	name string
	meta fileMeta
}

func (d *dirEntry) Name() string { return d.name }
func (d *dirEntry) IsDir() bool  { return d.meta.IsDir }

func (d *dirEntry) Type() xfs.Mode {
	if d.meta.IsDir {
		return xfs.ModeDir
	}
	return 0
}

func (d *dirEntry) Info() (xfs.FileInfo, error) {
	return &fileInfo{name: d.name, meta: d.meta}, nil
}

func (d *dirEntry) Path() string { return "" }

var _ xfs.ReadDirFS = (*FS)(nil)

// ReadDir lists the direct children of name in lexicographic order.
func (f *FS) ReadDir(
	ctx context.Context, name string,
) iter.Seq2[xfs.DirEntry, error] {
	return func(yield func(xfs.DirEntry, error) bool) {
		p, err := f.resolve(ctx, name)
		if err != nil {
			yield(nil, err)
			return
		}
		f.mu.Lock()
		meta, err := f.loadMeta()
		f.mu.Unlock()
		if err != nil {
			yield(nil, err)
			return
		}
		isDir, exists := f.entryKindLocked(meta, p)
		if !exists {
			yield(nil, &xfs.PathError{
				Op: "readdir", Path: name, Err: xfs.ErrNotExist,
			})
			return
		}
		if !isDir {
			yield(nil, &xfs.PathError{
				Op: "readdir", Path: name, Err: xfs.ErrNotDir,
			})
			return
		}
		children := childNames(meta, p)
		names := make([]string, 0, len(children))
		for n := range children {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			if !yield(&dirEntry{name: n, meta: children[n]}, nil) {
				return
			}
		}
	}
}
