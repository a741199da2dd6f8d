package fs

import "context"

// Activate returns a context that binds fsys as the active filesystem.
// Operations issued through [lesiw.io/xfs/route] with the returned context
// (or any context derived from it) are routed to fsys instead of the real
// operating system.
//
// Activation is scoped by context derivation, not by a global or
// goroutine-local cell: the parent ctx is left untouched, so sibling
// goroutines that didn't receive the derived context see no active
// filesystem, and once the derived context falls out of use the binding is
// gone with it. This gives concurrent tasks isolation from each other's
// activation state, without a mutable process-wide cell.
//
// Nesting is exact: activating a second filesystem on top of a context
// already carrying one simply shadows it for anything deriving from the new
// context; code still holding the outer context sees the outer filesystem.
func Activate(ctx context.Context, fsys FS) context.Context {
	ctx = context.WithValue(ctx, activeFSKey, fsys)
	ctx = context.WithValue(ctx, suspendedKey, false)
	return ctx
}

// Suspend returns a context in which no filesystem is active, regardless of
// whether an ancestor context activated one. Routing functions that observe
// a suspended context always delegate to the real operating system.
//
// Backends use Suspend internally before performing their own I/O against
// the real filesystem (the chrootfs backend, for instance), so that their
// internal calls never recurse back through a routing wrapper that happens
// to be layered above them.
func Suspend(ctx context.Context) context.Context {
	return context.WithValue(ctx, suspendedKey, true)
}

// Current returns the filesystem active on ctx, or nil if the context is
// suspended or has never been activated.
func Current(ctx context.Context) FS {
	if suspended, _ := ctx.Value(suspendedKey).(bool); suspended {
		return nil
	}
	fsys, _ := ctx.Value(activeFSKey).(FS)
	return fsys
}

// DeferCommits returns a context in which backends that support batched
// persistence (the backing [lesiw.io/xfs/memfs/kvstore.Store] in particular)
// skip their per-mutation commit and rely on the caller to flush once the
// scope ends.
func DeferCommits(ctx context.Context) context.Context {
	return context.WithValue(ctx, deferCommitsKey, true)
}

// CommitsDeferred reports whether ctx is inside a [DeferCommits] scope.
func CommitsDeferred(ctx context.Context) bool {
	deferred, _ := ctx.Value(deferCommitsKey).(bool)
	return deferred
}

// withSafePathProbe marks ctx as being inside the routing layer's own
// safe-path resolution, so that a probe which itself walks the filesystem
// (to decide whether a path falls under a safe system root) does not
// recurse back into routing.
func withSafePathProbe(ctx context.Context) context.Context {
	return context.WithValue(ctx, safePathProbeKey, true)
}

// InSafePathProbe reports whether ctx is inside a safe-path resolution
// probe. Routing wrappers observing this must delegate straight to the real
// operating system.
func InSafePathProbe(ctx context.Context) bool {
	v, _ := ctx.Value(safePathProbeKey).(bool)
	return v
}

// WithBackendOp marks ctx as being inside a backend's own internal I/O (for
// example, memfs persisting a virtual descriptor's buffer to its backing
// store). Routing wrappers observing this delegate straight to the real
// operating system, exactly as with a safe-path probe.
func WithBackendOp(ctx context.Context) context.Context {
	return context.WithValue(ctx, backendOpKey, true)
}

// InBackendOp reports whether ctx is inside a backend's own internal I/O.
func InBackendOp(ctx context.Context) bool {
	v, _ := ctx.Value(backendOpKey).(bool)
	return v
}
