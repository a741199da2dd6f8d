package memfs

import (
	"bytes"
	"context"
	"io"
	"time"

	xfs "lesiw.io/xfs"
)

// totalBytesLocked sums Size across every non-directory entry. The caller
// must hold f.mu.
func totalBytesLocked(meta map[string]fileMeta) int64 {
	var total int64
	for _, m := range meta {
		if !m.IsDir {
			total += m.Size
		}
	}
	return total
}

// putLocked stores data at the resolved path p, enforcing the size cap and
// updating metadata. The caller must hold f.mu and have already loaded
// meta. putLocked does not call saveMeta; the caller commits once, so a
// multi-path batch (writeMany) stays atomic with respect to the cap.
//
// Only an explicit directory (one with its own Mkdir-recorded entry)
// rejects the write. A path that is merely an implicit directory, because
// some other path nested under it happens to exist, converts to a file:
// files take precedence over directories of the same name.
func (f *FS) putLocked(meta map[string]fileMeta, p string, data []byte) error {
	if isExplicitDirLocked(meta, p) {
		return &xfs.PathError{Op: "write", Path: p, Err: xfs.ErrIsDir}
	}
	var oldSize int64
	var createdAt time.Time
	now := time.Now().UTC()
	if m, ok := meta[p]; ok {
		oldSize = m.Size
		createdAt = m.CreatedAt
	} else {
		createdAt = now
	}
	if f.maxBytes >= 0 {
		if totalBytesLocked(meta)-oldSize+int64(len(data)) > f.maxBytes {
			log.WithField("path", p).Warn("write rejected: size cap exceeded")
			return &xfs.PathError{Op: "write", Path: p, Err: xfs.ErrSizeLimit}
		}
	}
	if err := f.store.Set(contentKey(p), data); err != nil {
		return err
	}
	meta[p] = fileMeta{
		Size: int64(len(data)), CreatedAt: createdAt, ModifiedAt: now,
	}
	return nil
}

// write is the single-path entry point used by Create, Append, and
// Truncate: load metadata, mutate, save, commit.
func (f *FS) write(ctx context.Context, p string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}
	if err := f.putLocked(meta, p, data); err != nil {
		return err
	}
	return f.saveMeta(ctx, meta)
}

var _ xfs.FS = (*FS)(nil)

// Open returns the content of name. Opening a directory fails with
// [xfs.ErrIsDir].
func (f *FS) Open(ctx context.Context, name string) (io.ReadCloser, error) {
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
	if isDir, exists := f.entryKindLocked(meta, p); exists {
		if isDir {
			return nil, &xfs.PathError{Op: "open", Path: name, Err: xfs.ErrIsDir}
		}
	} else {
		return nil, &xfs.PathError{Op: "open", Path: name, Err: xfs.ErrNotExist}
	}
	data, ok, err := f.store.Get(contentKey(p))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &xfs.PathError{Op: "open", Path: name, Err: xfs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// writer buffers writes and flushes the combined content to the backing
// store on Close. Both Create (empty base) and Append (existing content as
// base) share this type.
type writer struct {
	ctx  context.Context
	fsys *FS
	path string
	base []byte
	buf  bytes.Buffer
}

func (w *writer) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *writer) Close() error {
	content := append(append([]byte(nil), w.base...), w.buf.Bytes()...)
	return w.fsys.write(w.ctx, w.path, content)
}

var _ xfs.CreateFS = (*FS)(nil)

// Create truncates (or creates) name for writing. Parent directories are
// implicit, so Create never fails for a missing parent.
func (f *FS) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return &writer{ctx: ctx, fsys: f, path: p}, nil
}

var _ xfs.AppendFS = (*FS)(nil)

// Append opens name for appending, creating it if it doesn't exist.
func (f *FS) Append(ctx context.Context, name string) (io.WriteCloser, error) {
	p, err := f.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	data, ok, err := f.store.Get(contentKey(p))
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !ok {
		data = nil
	}
	return &writer{ctx: ctx, fsys: f, path: p, base: data}, nil
}

var _ xfs.TruncateFS = (*FS)(nil)

// Truncate changes the size of name. Shrinking drops trailing bytes;
// growing extends with zeros. Truncating a directory is an error; use
// [lesiw.io/xfs.RemoveAll] and [lesiw.io/xfs.Mkdir] to empty one.
func (f *FS) Truncate(ctx context.Context, name string, size int64) error {
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
		return &xfs.PathError{Op: "truncate", Path: name, Err: xfs.ErrNotExist}
	}
	if isDir {
		return &xfs.PathError{Op: "truncate", Path: name, Err: xfs.ErrIsDir}
	}
	data, ok, err := f.store.Get(contentKey(p))
	if err != nil {
		return err
	}
	if !ok {
		data = nil
	}
	switch {
	case int64(len(data)) > size:
		data = data[:size]
	case int64(len(data)) < size:
		data = append(data, make([]byte, size-int64(len(data)))...)
	}
	if err := f.putLocked(meta, p, data); err != nil {
		return err
	}
	return f.saveMeta(ctx, meta)
}

var _ xfs.WriteManyFS = (*FS)(nil)

// WriteMany resolves every path, then checks the combined size delta
// against the cap once before applying any write: the batch either fully
// succeeds or leaves every path exactly as it was.
func (f *FS) WriteMany(ctx context.Context, files map[string][]byte) error {
	resolved := make(map[string][]byte, len(files))
	for name, data := range files {
		p, err := f.resolve(ctx, name)
		if err != nil {
			return err
		}
		resolved[p] = data
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	meta, err := f.loadMeta()
	if err != nil {
		return err
	}

	for p := range resolved {
		if isExplicitDirLocked(meta, p) {
			return &xfs.PathError{Op: "writemany", Path: p, Err: xfs.ErrIsDir}
		}
	}

	if f.maxBytes >= 0 {
		total := totalBytesLocked(meta)
		for p, data := range resolved {
			if m, ok := meta[p]; ok {
				total -= m.Size
			}
			total += int64(len(data))
		}
		if total > f.maxBytes {
			log.WithField("count", len(resolved)).Warn("writemany rejected: size cap exceeded")
			return &xfs.PathError{Op: "writemany", Path: "", Err: xfs.ErrSizeLimit}
		}
	}

	for p, data := range resolved {
		if err := f.putLocked(meta, p, data); err != nil {
			return err
		}
	}
	return f.saveMeta(ctx, meta)
}
