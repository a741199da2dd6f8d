package vfd_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xfs "lesiw.io/xfs"
	"lesiw.io/xfs/memfs"
	"lesiw.io/xfs/vfd"
)

func TestOpenCreateWriteClose(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	table := vfd.NewTable()

	fd, err := table.Open(ctx, fsys, "/new.txt", vfd.AccessWriteOnly,
		vfd.FlagCreate|vfd.FlagTruncate)
	require.NoError(t, err)

	n, err := table.Write(fd, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, table.Close(ctx, fd))

	data, err := xfs.ReadFile(ctx, fsys, "/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestOpenMissingWithoutCreateFails(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	table := vfd.NewTable()

	_, err := table.Open(ctx, fsys, "/missing.txt", vfd.AccessReadOnly, 0)
	assert.ErrorIs(t, err, xfs.ErrNotExist)
}

func TestOpenExclusiveOnExistingFails(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	require.NoError(t, xfs.WriteFile(ctx, fsys, "/a.txt", []byte("x")))
	table := vfd.NewTable()

	_, err := table.Open(ctx, fsys, "/a.txt", vfd.AccessWriteOnly,
		vfd.FlagCreate|vfd.FlagExclusive)
	assert.ErrorIs(t, err, xfs.ErrExist)
}

func TestDoubleCloseFails(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	table := vfd.NewTable()

	fd, err := table.Open(ctx, fsys, "/a.txt", vfd.AccessWriteOnly,
		vfd.FlagCreate|vfd.FlagTruncate)
	require.NoError(t, err)
	require.NoError(t, table.Close(ctx, fd))

	err = table.Close(ctx, fd)
	assert.ErrorIs(t, err, xfs.ErrBadFileDescriptor)
}

func TestFstatReportsInFlightSize(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	table := vfd.NewTable()

	fd, err := table.Open(ctx, fsys, "/a.txt", vfd.AccessWriteOnly,
		vfd.FlagCreate|vfd.FlagTruncate)
	require.NoError(t, err)
	_, err = table.Write(fd, []byte("12345"))
	require.NoError(t, err)

	info, err := table.Fstat(ctx, fd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
}

func TestRawIORespectsMode(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(nil)
	table := vfd.NewTable()

	fd, err := table.Open(ctx, fsys, "/a.txt", vfd.AccessReadOnly, vfd.FlagCreate)
	require.NoError(t, err)
	readable, writable, seekable := vfd.ModeIO("r")
	raw := vfd.NewRawIO(table, fd, readable, writable, seekable)

	_, err = raw.Write([]byte("x"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
