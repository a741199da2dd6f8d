package osfs

import (
	"testing"

	"lesiw.io/xfs"
	"lesiw.io/xfs/fstest"
)

func TestFS(t *testing.T) {
	fsys, ctx := NewTemp(), t.Context()
	defer fs.Close(fsys)

	fstest.TestFS(ctx, t, fsys)
}
