// Package route provides routing wrappers for the standard filesystem
// primitives, deciding per call whether to delegate to an active virtual
// filesystem or to the real operating system.
//
// Go never rebinds `os` package functions (there is no monkeypatching), so
// application code that wants interception calls this package's functions
// instead of `os`'s directly, passing a context.Context through which
// lesiw.io/xfs.Activate bound a filesystem. Outside an activation scope
// (or inside one that was suspended), every function here delegates
// straight to the real operating system — which is what ORIG would have
// snapshotted in a language that needed to guard against a rebound
// original; in Go there is nothing to snapshot, since `os.Open` can never
// be anything other than itself.
//
// INSTALL's one genuinely global, one-time piece of state — the safe
// system-path oracle used to let the Go toolchain's own reads of GOROOT
// and the module cache through even while a filesystem is active — lives
// in lesiw.io/xfs/internal/safepath and is computed lazily on first use.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	xfs "lesiw.io/xfs"
)

var log = logrus.WithField("pkg", "route")

// active returns the filesystem bound to ctx, or nil if routing should
// fall straight through to the real operating system: no filesystem was
// ever activated, the scope was suspended, or ctx is inside the router's
// own safe-path probe or a backend's internal I/O.
func active(ctx context.Context) xfs.FS {
	if xfs.InSafePathProbe(ctx) || xfs.InBackendOp(ctx) {
		return nil
	}
	return xfs.Current(ctx)
}

// notImplemented translates a backend's ErrUnsupported into a structured
// "not implemented by this backend" error, naming the backend's concrete
// type and the attempted operation. Any other error passes through
// unchanged.
func notImplemented(fsys xfs.FS, op string, err error) error {
	if err == nil || !errors.Is(err, xfs.ErrUnsupported) {
		return err
	}
	return xfs.NewNotImplementedError(fmt.Sprintf("%T", fsys), op)
}
