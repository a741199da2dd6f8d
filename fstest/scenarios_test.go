package fstest_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/chrootfs"
	"lesiw.io/xfs/memfs"
	"lesiw.io/xfs/route"
	"lesiw.io/xfs/vfd"
)

// These drive the routing layer, the virtual fd table, the temp-file
// pathway, chroot path escapes, concurrent per-task isolation, and
// home concealment end to end through the actual package surface rather
// than the raw xfs.FS backend.

func TestScenarioVFSRoundTripThroughRoutedOpen(t *testing.T) {
	ctx := xfs.Activate(t.Context(), memfs.New(nil))

	w, err := route.Create(ctx, "/a.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := route.Open(ctx, "/a.txt")
	require.NoError(t, err)
	defer r.Close()
	buf := make([]byte, 2)
	n, _ := r.Read(buf)
	assert.Equal(t, "hi", string(buf[:n]))

	data, err := xfs.ReadFile(ctx, xfs.Current(ctx), "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestScenarioVirtualFDPlumbing(t *testing.T) {
	ctx := xfs.Activate(t.Context(), memfs.New(nil))
	fsys := xfs.Current(ctx)
	table := vfd.NewTable()

	fd, err := table.Open(
		ctx, fsys, "/t.txt", vfd.AccessReadWrite,
		vfd.FlagCreate|vfd.FlagTruncate,
	)
	require.NoError(t, err)

	_, err = table.Write(fd, []byte("data"))
	require.NoError(t, err)

	_, err = table.Seek(fd, 0, 0)
	require.NoError(t, err)

	buf := make([]byte, 100)
	n, err := table.Read(fd, buf)
	require.NoError(t, err)
	assert.Equal(t, "data", string(buf[:n]))

	require.NoError(t, table.Close(ctx, fd))

	data, err := xfs.ReadFile(ctx, fsys, "/t.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestScenarioTempfileViaTemp(t *testing.T) {
	ctx := xfs.Activate(t.Context(), memfs.New(nil))
	fsys := xfs.Current(ctx)

	w, err := xfs.Temp(ctx, fsys, "scenario")
	require.NoError(t, err)
	path := w.Path()

	_, err = w.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = xfs.Access(ctx, fsys, path)
	assert.NoError(t, err)

	data, err := xfs.ReadFile(ctx, fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestScenarioIFSPathEscape(t *testing.T) {
	root := t.TempDir()
	fsys, err := chrootfs.Open(root)
	require.NoError(t, err)
	defer fsys.Close()

	ctx := xfs.Activate(t.Context(), fsys)
	err = xfs.WriteFile(ctx, fsys, "../secret", nil)
	assert.ErrorIs(t, err, xfs.ErrPathEscape)

	entries := 0
	for _, err := range xfs.ReadDir(ctx, fsys, "/") {
		require.NoError(t, err)
		entries++
	}
	assert.Zero(t, entries, "root must remain unchanged after a rejected escape")
}

func TestScenarioConcurrentTasksIndependentFSes(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 2)
	for i := range 2 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := xfs.Activate(t.Context(), memfs.New(nil))
			fsys := xfs.Current(ctx)
			content := []byte{byte('a' + i)}
			if !assert.NoError(t, xfs.WriteFile(ctx, fsys, "file.txt", content)) {
				return
			}
			data, err := xfs.ReadFile(ctx, fsys, "file.txt")
			if !assert.NoError(t, err) {
				return
			}
			results[i] = string(data)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, "a", results[0])
	assert.Equal(t, "b", results[1])
}

func TestScenarioHomeConcealment(t *testing.T) {
	ctx := xfs.Activate(t.Context(), memfs.New(nil))

	expanded, err := route.ExpandHome(ctx, "~/.config")
	require.NoError(t, err)
	assert.Equal(t, "/.config", expanded)

	assert.Equal(t, "/x", route.ExpandEnv(ctx, "$HOME/x"))

	home, err := route.UserHomeDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/", home)

	outside := t.Context()
	realHome, err := route.UserHomeDir(outside)
	require.NoError(t, err)
	assert.NotEqual(t, "/", realHome)
}
