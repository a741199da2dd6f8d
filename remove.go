package fs

import (
	"context"
)

// A RemoveFS is a file system with the Remove method.
type RemoveFS interface {
	FS

	// Remove removes the named file or empty directory.
	// It returns an error if the file does not exist or if a directory
	// is not empty.
	Remove(ctx context.Context, name string) error
}

// Remove removes the named file or empty directory.
// Analogous to: [os.Remove], rm, 9P Tremove, S3 DeleteObject.
// Returns an error if the file does not exist or if a directory is not
// empty.
func Remove(ctx context.Context, fsys FS, name string) error {
	rfs, ok := fsys.(RemoveFS)
	if !ok {
		return &PathError{
			Op:   "remove",
			Path: name,
			Err:  ErrUnsupported,
		}
	}

	return rfs.Remove(ctx, name)
}
