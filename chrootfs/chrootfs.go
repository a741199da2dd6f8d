// Package chrootfs implements lesiw.io/xfs.FS as an isolated real-filesystem
// backend: a sandboxed view of the real filesystem rooted at a directory,
// built on the standard library's os.Root rather than hand-rolled symlink
// bookkeeping. os.Root rejects any resolved path that would fall outside
// its root, so there is no separate escape check to hand-roll.
package chrootfs

import (
	"context"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/path"
)

var log = logrus.WithField("pkg", "chrootfs")

// FS is a real-filesystem backend rooted at a directory. Every path passed
// to its methods is virtual, resolved against the backend's root as if the
// root were "/".
type FS struct {
	root *os.Root
	name string
}

// Open roots a new FS at dir. dir must already exist.
func Open(dir string) (*FS, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &FS{root: root, name: dir}, nil
}

// Close releases the underlying root handle.
func (f *FS) Close() error { return f.root.Close() }

// hostName converts a virtual path to the name os.Root expects: relative
// to the root, with no leading slash.
func hostName(ctx context.Context, name string) string {
	virtual := name
	if !path.IsAbs(virtual) {
		virtual = path.Join(xfs.WorkDir(ctx), virtual)
	}
	virtual = path.Clean(virtual)
	trimmed := strings.TrimPrefix(virtual, "/")
	if trimmed == "" {
		return "."
	}
	return trimmed
}

// escapeErr reports whether err is os.Root's rejection of a path that
// would resolve outside the root, translating it to ErrPathEscape so
// callers can match it uniformly across backends.
func escapeErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "escapes") {
		return xfs.ErrPathEscape
	}
	return err
}

var _ xfs.FS = (*FS)(nil)

// Open returns name's content for reading.
func (f *FS) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	file, err := f.root.Open(hostName(ctx, name))
	if err != nil {
		return nil, escapeErr(err)
	}
	return file, nil
}

var _ xfs.StatFS = (*FS)(nil)

func (f *FS) Stat(ctx context.Context, name string) (xfs.FileInfo, error) {
	info, err := f.root.Stat(hostName(ctx, name))
	return info, escapeErr(err)
}

var _ xfs.ReadLinkFS = (*FS)(nil)

func (f *FS) Lstat(ctx context.Context, name string) (xfs.FileInfo, error) {
	info, err := f.root.Lstat(hostName(ctx, name))
	return info, escapeErr(err)
}

// ReadLink returns the destination of the named symbolic link. Refuses to
// report a target that would resolve outside the root.
func (f *FS) ReadLink(ctx context.Context, name string) (string, error) {
	target, err := f.root.Readlink(hostName(ctx, name))
	if err != nil {
		return "", escapeErr(err)
	}
	if _, err := f.root.Stat(hostName(ctx, name)); escapeErr(err) == xfs.ErrPathEscape {
		return "", xfs.ErrPathEscape
	}
	return target, nil
}

var _ xfs.MkdirFS = (*FS)(nil)

func (f *FS) Mkdir(ctx context.Context, name string) error {
	return escapeErr(f.root.Mkdir(hostName(ctx, name), os.FileMode(xfs.DirMode(ctx))))
}

var _ xfs.RemoveFS = (*FS)(nil)

func (f *FS) Remove(ctx context.Context, name string) error {
	return escapeErr(f.root.Remove(hostName(ctx, name)))
}

var _ xfs.RemoveAllFS = (*FS)(nil)

func (f *FS) RemoveAll(ctx context.Context, name string) error {
	return escapeErr(f.root.RemoveAll(hostName(ctx, name)))
}

var _ xfs.RenameFS = (*FS)(nil)

func (f *FS) Rename(ctx context.Context, oldname, newname string) error {
	return escapeErr(f.root.Rename(hostName(ctx, oldname), hostName(ctx, newname)))
}

var _ xfs.CreateFS = (*FS)(nil)

func (f *FS) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	file, err := f.root.OpenFile(
		hostName(ctx, name),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		os.FileMode(xfs.FileMode(ctx)),
	)
	if err != nil {
		return nil, escapeErr(err)
	}
	return file, nil
}

var _ xfs.AppendFS = (*FS)(nil)

func (f *FS) Append(ctx context.Context, name string) (io.WriteCloser, error) {
	file, err := f.root.OpenFile(
		hostName(ctx, name),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		os.FileMode(xfs.FileMode(ctx)),
	)
	if err != nil {
		return nil, escapeErr(err)
	}
	return file, nil
}

var _ xfs.TruncateFS = (*FS)(nil)

func (f *FS) Truncate(ctx context.Context, name string, size int64) error {
	file, err := f.root.OpenFile(hostName(ctx, name), os.O_WRONLY, 0)
	if err != nil {
		return escapeErr(err)
	}
	defer file.Close()
	return file.Truncate(size)
}

var _ xfs.SymlinkFS = (*FS)(nil)

// Symlink creates newname as a symlink to oldname. Both must resolve under
// the root.
func (f *FS) Symlink(ctx context.Context, oldname, newname string) error {
	link := hostName(ctx, newname)
	if err := f.root.Symlink(hostName(ctx, oldname), link); err != nil {
		return escapeErr(err)
	}
	if _, err := f.root.Stat(link); escapeErr(err) == xfs.ErrPathEscape {
		_ = f.root.Remove(link)
		return xfs.ErrPathEscape
	}
	return nil
}

var _ xfs.ChmodFS = (*FS)(nil)

func (f *FS) Chmod(ctx context.Context, name string, mode xfs.Mode) error {
	return escapeErr(f.root.Chmod(hostName(ctx, name), os.FileMode(mode)))
}

var _ xfs.ChownFS = (*FS)(nil)

func (f *FS) Chown(ctx context.Context, name string, uid, gid int) error {
	return escapeErr(f.root.Chown(hostName(ctx, name), uid, gid))
}

var _ xfs.ChtimesFS = (*FS)(nil)

func (f *FS) Chtimes(ctx context.Context, name string, atime, mtime time.Time) error {
	return escapeErr(f.root.Chtimes(hostName(ctx, name), atime, mtime))
}

var _ xfs.AbsFS = (*FS)(nil)

// Abs returns a real, OS-absolute path under the root for name.
func (f *FS) Abs(ctx context.Context, name string) (string, error) {
	return path.Join(f.name, hostName(ctx, name)), nil
}

var _ xfs.AccessFS = (*FS)(nil)

func (f *FS) Access(ctx context.Context, name string) error {
	_, err := f.root.Stat(hostName(ctx, name))
	return escapeErr(err)
}

type dirEntry struct{ os.DirEntry }

func (d *dirEntry) Path() string { return "" }

var _ xfs.ReadDirFS = (*FS)(nil)

// ReadDir lists the direct children of name.
func (f *FS) ReadDir(ctx context.Context, name string) iter.Seq2[xfs.DirEntry, error] {
	return func(yield func(xfs.DirEntry, error) bool) {
		file, err := f.root.Open(hostName(ctx, name))
		if err != nil {
			yield(nil, escapeErr(err))
			return
		}
		defer file.Close()
		entries, err := file.ReadDir(-1)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, e := range entries {
			if !yield(&dirEntry{e}, nil) {
				return
			}
		}
	}
}

// GetMetadataSnapshot walks the root lazily, returning a map of virtual
// path to FileInfo computed at call time; individual stats are returned on
// demand rather than cached ahead of the walk.
func (f *FS) GetMetadataSnapshot(
	ctx context.Context,
) (map[string]xfs.FileInfo, error) {
	snap := make(map[string]xfs.FileInfo)
	var walk func(virtual string) error
	walk = func(virtual string) error {
		for entry, err := range f.ReadDir(ctx, virtual) {
			if err != nil {
				return err
			}
			child := path.Join(virtual, entry.Name())
			info, err := entry.Info()
			if err != nil {
				return err
			}
			snap[child] = info
			if entry.IsDir() {
				if err := walk(child); err != nil {
					log.WithField("path", child).
						WithError(err).Warn("snapshot: skipping subtree")
				}
			}
		}
		return nil
	}
	if err := walk("/"); err != nil {
		return nil, err
	}
	return snap, nil
}
