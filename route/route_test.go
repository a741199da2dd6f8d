package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/memfs"
	"lesiw.io/xfs/route"
)

func TestRouteGoesToBackendWhenActive(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	ctx = xfs.Activate(ctx, fsys)

	w, err := route.Create(ctx, "/hello.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := xfs.ReadFile(ctx, fsys, "/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestRouteFallsThroughWhenSuspended(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	ctx = xfs.Activate(ctx, fsys)
	suspended := xfs.Suspend(ctx)

	// Suspended scope never reaches the backend, so Getwd reports the
	// real process working directory rather than the virtual root.
	wd, err := route.Getwd(suspended)
	require.NoError(t, err)
	assert.NotEqual(t, "/", wd)
}

func TestRouteMutationNotImplementedIsStructured(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	ctx = xfs.Activate(ctx, fsys)

	err := route.Symlink(ctx, "/target", "/link")
	require.Error(t, err)
	assert.ErrorIs(t, err, xfs.ErrUnsupported)
}

func TestHomeConcealedWhileActive(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	ctx = xfs.Activate(ctx, fsys)

	home, err := route.UserHomeDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/", home)

	expanded, err := route.ExpandHome(ctx, "~/project")
	require.NoError(t, err)
	assert.Equal(t, "/project", expanded)
}
