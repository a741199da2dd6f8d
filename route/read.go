package route

import (
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/internal/safepath"
)

// fallsBack reports whether a read-shaped failure against the active
// filesystem should be retried against the real operating system: the
// backend reported not-found or permission-denied, and the requested path
// is one of the Go toolchain's own safe system paths (GOROOT, GOPATH, the
// module cache).
func fallsBack(err error, name string) bool {
	if !errors.Is(err, xfs.ErrNotExist) && !errors.Is(err, xfs.ErrPermission) {
		return false
	}
	return safepath.IsSafe(name)
}

// Open opens name for reading. With an active filesystem, reads that miss
// under a safe system path (the Go toolchain's own files) fall back to the
// real operating system; any other miss propagates.
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if fsys := active(ctx); fsys != nil {
		r, err := xfs.Open(ctx, fsys, name)
		if err == nil || !fallsBack(err, name) {
			return r, err
		}
		log.WithField("path", name).Debug("falling back to real open: safe system path")
	}
	return os.Open(name)
}

// Stat reports metadata for name, following symlinks under a real-backend
// path.
func Stat(ctx context.Context, name string) (xfs.FileInfo, error) {
	if fsys := active(ctx); fsys != nil {
		info, err := xfs.Stat(ctx, fsys, name)
		if err == nil || !fallsBack(err, name) {
			return info, err
		}
		log.WithField("path", name).Debug("falling back to real stat: safe system path")
	}
	return os.Stat(name)
}

// Lstat reports metadata for name without following a trailing symlink.
func Lstat(ctx context.Context, name string) (xfs.FileInfo, error) {
	if fsys := active(ctx); fsys != nil {
		info, err := xfs.Lstat(ctx, fsys, name)
		if err == nil || !fallsBack(err, name) {
			return info, err
		}
	}
	return os.Lstat(name)
}

// Exists reports whether name exists, treating a safe-system-path miss
// against the active backend as "ask the real filesystem" rather than
// "not found".
func Exists(ctx context.Context, name string) bool {
	if fsys := active(ctx); fsys != nil {
		err := xfs.Access(ctx, fsys, name)
		if err == nil {
			return true
		}
		if !safepath.IsSafe(name) {
			return false
		}
	}
	_, err := os.Stat(name)
	return err == nil
}

// Access reports whether name is reachable, per the same fallback rule as
// Exists.
func Access(ctx context.Context, name string) error {
	if fsys := active(ctx); fsys != nil {
		err := xfs.Access(ctx, fsys, name)
		if err == nil || !fallsBack(err, name) {
			return err
		}
	}
	_, err := os.Stat(name)
	return err
}

// SameFile reports whether fi1 and fi2 describe the same underlying file.
// With an active filesystem, comparison is delegated to it; otherwise it
// falls back to the real operating system's identity comparison.
func SameFile(ctx context.Context, fi1, fi2 xfs.FileInfo) bool {
	if fsys := active(ctx); fsys != nil {
		return xfs.SameFile(ctx, fsys, fi1, fi2)
	}
	return os.SameFile(fi1, fi2)
}

// ReadDir lists the direct children of name.
func ReadDir(ctx context.Context, name string) iter.Seq2[xfs.DirEntry, error] {
	if fsys := active(ctx); fsys != nil {
		return xfs.ReadDir(ctx, fsys, name)
	}
	return func(yield func(xfs.DirEntry, error) bool) {
		entries, err := os.ReadDir(name)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, e := range entries {
			if !yield(&osDirEntry{e}, nil) {
				return
			}
		}
	}
}

// osDirEntry adapts os.DirEntry to xfs.DirEntry.
type osDirEntry struct{ os.DirEntry }

func (e *osDirEntry) Path() string { return "" }

// ReadLink returns the destination of the named symbolic link.
func ReadLink(ctx context.Context, name string) (string, error) {
	if fsys := active(ctx); fsys != nil {
		target, err := xfs.ReadLink(ctx, fsys, name)
		if err == nil || !fallsBack(err, name) {
			return target, err
		}
	}
	return os.Readlink(name)
}

// Abs returns an absolute form of name, computed against the active
// filesystem's working directory, or the real process cwd when no
// filesystem is active.
func Abs(ctx context.Context, name string) (string, error) {
	if fsys := active(ctx); fsys != nil {
		return xfs.Abs(ctx, fsys, name)
	}
	return filepath.Abs(name)
}
