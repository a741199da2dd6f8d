package fs

import "context"

// An AccessFS is a file system with the Access method.
type AccessFS interface {
	FS

	// Access reports whether name exists and is reachable under the
	// filesystem's current permission model. Backends that don't model
	// permissions (memfs in particular) treat Access as a pure existence
	// check.
	Access(ctx context.Context, name string) error
}

// Access reports whether name is reachable in fsys.
// Analogous to: [os.Access with F_OK], access(2), stat -c.
//
// Requires: [AccessFS] || [StatFS]
func Access(ctx context.Context, fsys FS, name string) error {
	if afs, ok := fsys.(AccessFS); ok {
		return afs.Access(ctx, name)
	}
	_, err := Stat(ctx, fsys, name)
	return err
}

// A SameFileFS is a file system that can tell whether two [FileInfo] values
// describe the same underlying file.
type SameFileFS interface {
	FS

	// SameFile reports whether fi1 and fi2, both returned by Stat or Lstat
	// on this filesystem, describe the same file.
	SameFile(fi1, fi2 FileInfo) bool
}

// SameFile reports whether fi1 and fi2 describe the same file.
// Analogous to: [os.SameFile].
//
// Comparing FileInfo values from two different backends (one from chrootfs,
// the other from memfs) is unspecified; SameFile only guarantees correct
// results when both FileInfo values came from the same fsys. Without [SameFileFS],
// the fallback compares name, file size, modification time and whether
// each is a directory, which is
// conservative (false negatives are possible, false positives are not for
// any reasonable backend).
func SameFile(ctx context.Context, fsys FS, fi1, fi2 FileInfo) bool {
	if sfs, ok := fsys.(SameFileFS); ok {
		return sfs.SameFile(fi1, fi2)
	}
	if fi1 == nil || fi2 == nil {
		return false
	}
	return fi1.Size() == fi2.Size() &&
		fi1.ModTime().Equal(fi2.ModTime()) &&
		fi1.IsDir() == fi2.IsDir() &&
		fi1.Name() == fi2.Name()
}
