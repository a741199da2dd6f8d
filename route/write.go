package route

import (
	"context"
	"io"
	"os"
	"time"

	xfs "lesiw.io/xfs"
)

// Mutation-shaped primitives never fall back to the real operating system
// once a filesystem is active: mutations go exclusively to the backend,
// surfacing a structured not-implemented error if the backend's capability
// set doesn't cover the operation, rather than silently mutating the real
// filesystem underneath an active scope.

// Create truncates (or creates) name for writing.
func Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if fsys := active(ctx); fsys != nil {
		w, err := xfs.Create(ctx, fsys, name)
		return w, notImplemented(fsys, "create", err)
	}
	return os.Create(name)
}

// Append opens name for appending, creating it if it doesn't exist.
func Append(ctx context.Context, name string) (io.WriteCloser, error) {
	if fsys := active(ctx); fsys != nil {
		w, err := xfs.Append(ctx, fsys, name)
		return w, notImplemented(fsys, "append", err)
	}
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}

// Remove removes name.
func Remove(ctx context.Context, name string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "remove", xfs.Remove(ctx, fsys, name))
	}
	return os.Remove(name)
}

// RemoveAll removes name and everything under it.
func RemoveAll(ctx context.Context, name string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "removeall", xfs.RemoveAll(ctx, fsys, name))
	}
	return os.RemoveAll(name)
}

// Mkdir creates name as a directory. The parent must already exist.
func Mkdir(ctx context.Context, name string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "mkdir", xfs.Mkdir(ctx, fsys, name))
	}
	return os.Mkdir(name, 0o755)
}

// MkdirAll creates name and any missing parents.
func MkdirAll(ctx context.Context, name string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "makedirs", xfs.MkdirAll(ctx, fsys, name))
	}
	return os.MkdirAll(name, 0o755)
}

// Rename moves oldname to newname.
func Rename(ctx context.Context, oldname, newname string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "rename", xfs.Rename(ctx, fsys, oldname, newname))
	}
	return os.Rename(oldname, newname)
}

// Chmod changes the permission bits of name.
func Chmod(ctx context.Context, name string, mode xfs.Mode) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "chmod", xfs.Chmod(ctx, fsys, name, mode))
	}
	return os.Chmod(name, mode)
}

// Chown changes the owning user and group of name.
func Chown(ctx context.Context, name string, uid, gid int) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "chown", xfs.Chown(ctx, fsys, name, uid, gid))
	}
	return os.Chown(name, uid, gid)
}

// Chtimes changes the access and modification times of name. A zero atime
// or mtime is ignored by backends that track only a single modified-at
// timestamp.
func Chtimes(ctx context.Context, name string, atime, mtime time.Time) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "utime", xfs.Chtimes(ctx, fsys, name, atime, mtime))
	}
	return os.Chtimes(name, atime, mtime)
}

// Truncate changes the size of name.
func Truncate(ctx context.Context, name string, size int64) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "truncate", xfs.Truncate(ctx, fsys, name, size))
	}
	return os.Truncate(name, size)
}

// Symlink creates newname as a symbolic link to oldname.
func Symlink(ctx context.Context, oldname, newname string) error {
	if fsys := active(ctx); fsys != nil {
		return notImplemented(fsys, "symlink", xfs.Symlink(ctx, fsys, oldname, newname))
	}
	return os.Symlink(oldname, newname)
}
