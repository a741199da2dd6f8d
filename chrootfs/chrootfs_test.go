package chrootfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/chrootfs"
)

func TestWriteReadRoundTrip(t *testing.T) {
	ctx := t.Context()
	fsys, err := chrootfs.Open(t.TempDir())
	require.NoError(t, err)
	defer fsys.Close()

	require.NoError(t, xfs.WriteFile(ctx, fsys, "a.txt", []byte("hi")))
	data, err := xfs.ReadFile(ctx, fsys, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestEscapeIsRejected(t *testing.T) {
	ctx := t.Context()
	fsys, err := chrootfs.Open(t.TempDir())
	require.NoError(t, err)
	defer fsys.Close()

	_, err = xfs.Stat(ctx, fsys, "../../etc/passwd")
	assert.Error(t, err)
}

func TestMkdirAndReadDir(t *testing.T) {
	ctx := t.Context()
	fsys, err := chrootfs.Open(t.TempDir())
	require.NoError(t, err)
	defer fsys.Close()

	require.NoError(t, fsys.Mkdir(ctx, "sub"))
	require.NoError(t, xfs.WriteFile(ctx, fsys, "sub/f.txt", []byte("x")))

	var names []string
	for entry, err := range fsys.ReadDir(ctx, "sub") {
		require.NoError(t, err)
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"f.txt"}, names)
}
