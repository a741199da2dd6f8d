package memfs

import (
	"context"
	"strings"
	"time"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/path"
)

// fileInfo implements xfs.FileInfo (io/fs.FileInfo) over a fileMeta entry.
// It also carries the resolved path, used by SameFile for identity.
type fileInfo struct {
	resolved string
	name     string
	meta     fileMeta
}

func (fi *fileInfo) Name() string { return fi.name }
func (fi *fileInfo) Size() int64  { return fi.meta.Size }

func (fi *fileInfo) Mode() xfs.Mode {
	if fi.meta.IsDir {
		return 0755 | xfs.ModeDir
	}
	return 0644
}

func (fi *fileInfo) ModTime() time.Time { return fi.meta.ModifiedAt }
func (fi *fileInfo) IsDir() bool        { return fi.meta.IsDir }

// isImplicitDir reports whether p behaves as a directory solely because
// some other entry's path begins with p + "/", without p itself carrying a
// metadata entry.
func isImplicitDir(meta map[string]fileMeta, p string) bool {
	prefix := p
	if prefix != "/" {
		prefix += "/"
	}
	for k := range meta {
		if k != p && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// isExplicitDirLocked reports whether p carries its own Mkdir-recorded
// directory entry, as opposed to merely behaving as a directory because
// some nested path exists. Root is always explicit.
func isExplicitDirLocked(meta map[string]fileMeta, p string) bool {
	if p == "/" {
		return true
	}
	m, ok := meta[p]
	return ok && m.IsDir
}

// entryKindLocked reports whether p exists and, if so, whether it is a
// directory (explicit or implicit). The caller must hold f.mu and have
// loaded meta under that lock.
func (f *FS) entryKindLocked(meta map[string]fileMeta, p string) (isDir, exists bool) {
	if p == "/" {
		return true, true
	}
	if m, ok := meta[p]; ok {
		return m.IsDir, true
	}
	if isImplicitDir(meta, p) {
		return true, true
	}
	return false, false
}

var _ xfs.StatFS = (*FS)(nil)

// Stat returns metadata for name. Implicit directories are reported with
// zero-value timestamps, since no explicit mkdir ever recorded them.
func (f *FS) Stat(ctx context.Context, name string) (xfs.FileInfo, error) {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return nil, err
	}
	if p == "/" {
		return &fileInfo{resolved: p, name: "/", meta: fileMeta{IsDir: true}}, nil
	}
	if m, ok := meta[p]; ok {
		return &fileInfo{resolved: p, name: path.Base(p), meta: m}, nil
	}
	if isImplicitDir(meta, p) {
		return &fileInfo{
			resolved: p, name: path.Base(p), meta: fileMeta{IsDir: true},
		}, nil
	}
	return nil, &xfs.PathError{Op: "stat", Path: name, Err: xfs.ErrNotExist}
}

var _ xfs.AccessFS = (*FS)(nil)

// Access reports whether name exists. memfs models no permission bits, so
// per spec this is a pure existence check.
func (f *FS) Access(ctx context.Context, name string) error {
	_, err := f.Stat(ctx, name)
	return err
}

var _ xfs.ChmodFS = (*FS)(nil)

// Chmod is a no-op that verifies name exists.
func (f *FS) Chmod(ctx context.Context, name string, mode xfs.Mode) error {
	_, err := f.Stat(ctx, name)
	return err
}

var _ xfs.ChownFS = (*FS)(nil)

// Chown is a no-op that verifies name exists.
func (f *FS) Chown(ctx context.Context, name string, uid, gid int) error {
	_, err := f.Stat(ctx, name)
	return err
}

var _ xfs.ChtimesFS = (*FS)(nil)

// Chtimes updates modified-at from mtime. memfs tracks no access time, so
// atime is accepted for interface compatibility and otherwise ignored. A
// zero mtime leaves modified-at unchanged, matching the zero-value-means-
// unchanged convention ChtimesFS documents.
func (f *FS) Chtimes(
	ctx context.Context, name string, atime, mtime time.Time,
) error {
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
	m, ok := meta[p]
	if !ok {
		if !isImplicitDir(meta, p) {
			return &xfs.PathError{Op: "chtimes", Path: name, Err: xfs.ErrNotExist}
		}
		m = fileMeta{IsDir: true, CreatedAt: time.Now().UTC()}
	}
	if !mtime.IsZero() {
		m.ModifiedAt = mtime.UTC()
	}
	meta[p] = m
	return f.saveMeta(ctx, meta)
}

var _ xfs.AbsFS = (*FS)(nil)

// Abs resolves name the same way every other memfs operation does.
func (f *FS) Abs(ctx context.Context, name string) (string, error) {
	return f.resolve(ctx, name)
}

var _ xfs.SameFileFS = (*FS)(nil)

// SameFile compares the resolved paths carried by two memfs FileInfo
// values. Values returned by another filesystem never compare equal.
func (f *FS) SameFile(fi1, fi2 xfs.FileInfo) bool {
	a, ok := fi1.(*fileInfo)
	if !ok {
		return false
	}
	b, ok := fi2.(*fileInfo)
	if !ok {
		return false
	}
	return a.resolved == b.resolved
}
