package fs

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrNotDir reports that an operation expecting a directory found a
// regular file instead.
var ErrNotDir = syscall.ENOTDIR

// ErrIsDir reports that an operation expecting a regular file found a
// directory instead.
var ErrIsDir = errors.New("is a directory")

// ErrDirNotEmpty reports that Remove or Rmdir was asked to remove a
// directory that still has files or explicit subdirectories under it.
var ErrDirNotEmpty = errors.New("directory not empty")

// ErrBadFileDescriptor reports that an operation referenced a virtual
// descriptor that is closed or was never allocated. It carries the POSIX
// EBADF code, matching the real operating system's behavior for the same
// mistake against a kernel descriptor.
var ErrBadFileDescriptor = syscall.EBADF

// ErrSizeLimit reports that a write to a size-capped backend (memfs in
// particular) would push the backend's total stored bytes past its
// configured cap. The write is rejected before any mutation is applied.
var ErrSizeLimit = errors.New("size limit exceeded")

// ErrPathEscape reports that a path resolved outside the root of a rooted
// backend (chrootfs). It also satisfies errors.Is(err, fs.ErrPermission),
// treating an escape attempt as a permission-denied case.
var ErrPathEscape = &pathEscapeError{}

type pathEscapeError struct{}

func (*pathEscapeError) Error() string { return "path escapes filesystem root" }

func (*pathEscapeError) Is(target error) bool {
	return target == fs.ErrPermission
}

// notImplementedError reports that a backend was asked for an operation
// outside its declared capability set. The router raises this deterministic
// error instead of probing for methods that might not exist.
type notImplementedError struct {
	backend string
	op      string
}

// NewNotImplementedError builds the structured "not implemented by this
// backend" error for operations a backend's capability set does not cover.
func NewNotImplementedError(backend, op string) error {
	return &notImplementedError{backend: backend, op: op}
}

func (e *notImplementedError) Error() string {
	return e.backend + " does not implement " + e.op
}

func (e *notImplementedError) Is(target error) bool {
	return target == ErrUnsupported
}
