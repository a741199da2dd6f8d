package memfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/fstest"
	"lesiw.io/xfs/memfs"
)

func TestCompliance(t *testing.T) {
	fstest.TestFS(t.Context(), t, memfs.New(nil))
}

func TestImplicitAndExplicitDirectories(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)

	require.NoError(t, xfs.WriteFile(ctx, fsys, "/a/b/c.txt", []byte("hi")))

	info, err := xfs.Stat(ctx, fsys, "/a")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, fsys.Mkdir(ctx, "/explicit"))
	info, err = xfs.Stat(ctx, fsys, "/explicit")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = fsys.Remove(ctx, "/a")
	assert.ErrorIs(t, err, xfs.ErrDirNotEmpty)
}

func TestWriteRejectsExplicitDirectoryTarget(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	require.NoError(t, fsys.Mkdir(ctx, "/d"))

	err := xfs.WriteFile(ctx, fsys, "/d", []byte("oops"))
	assert.ErrorIs(t, err, xfs.ErrIsDir)
}

func TestWriteConvertsImplicitDirectoryToFile(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	require.NoError(t, xfs.WriteFile(ctx, fsys, "/a/b/c.txt", []byte("hi")))

	info, err := xfs.Stat(ctx, fsys, "/a/b")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, xfs.WriteFile(ctx, fsys, "/a/b", []byte("now a file")))

	info, err = xfs.Stat(ctx, fsys, "/a/b")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestSizeCapRejectsBeforeMutating(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil, memfs.WithMaxMiB(0))

	err := xfs.WriteFile(ctx, fsys, "/big.txt", []byte("x"))
	assert.ErrorIs(t, err, xfs.ErrSizeLimit)

	_, err = xfs.Stat(ctx, fsys, "/big.txt")
	assert.ErrorIs(t, err, xfs.ErrNotExist)
}

func TestWriteManyIsAllOrNothing(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil, memfs.WithMaxMiB(0))

	err := xfs.WriteMany(ctx, fsys, map[string][]byte{
		"/a.txt": nil,
		"/b.txt": []byte("over the cap"),
	})
	assert.ErrorIs(t, err, xfs.ErrSizeLimit)

	_, err = xfs.Stat(ctx, fsys, "/a.txt")
	assert.ErrorIs(t, err, xfs.ErrNotExist)
}

func TestChdirPersistsAcrossCalls(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	require.NoError(t, fsys.Mkdir(ctx, "/work"))
	require.NoError(t, fsys.Chdir(ctx, "/work"))

	require.NoError(t, xfs.WriteFile(ctx, fsys, "relative.txt", []byte("hi")))
	_, err := xfs.Stat(ctx, fsys, "/work/relative.txt")
	require.NoError(t, err)

	wd, err := fsys.Getwd(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/work", wd)
}

func TestRenameDirectoryMovesDescendants(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	require.NoError(t, xfs.WriteFile(ctx, fsys, "/src/nested/file.txt", []byte("hi")))

	require.NoError(t, fsys.Rename(ctx, "/src", "/dst"))

	_, err := xfs.Stat(ctx, fsys, "/src")
	assert.ErrorIs(t, err, xfs.ErrNotExist)

	data, err := xfs.ReadFile(ctx, fsys, "/dst/nested/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestSymlinkIsRejected(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)

	err := xfs.Symlink(ctx, fsys, "/target", "/link")
	assert.ErrorIs(t, err, xfs.ErrUnsupported)
}

func TestSnapshotDiff(t *testing.T) {
	ctx := context.Background()
	fsys := memfs.New(nil)

	before, err := fsys.GetMetadataSnapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, xfs.WriteFile(ctx, fsys, "/a.txt", []byte("hi")))

	after, err := fsys.GetMetadataSnapshot(ctx)
	require.NoError(t, err)

	changes := memfs.Diff(before, after)
	require.Len(t, changes, 1)
	assert.Equal(t, "/a.txt", changes[0].Path)
	assert.Equal(t, memfs.Added, changes[0].Kind)
}
