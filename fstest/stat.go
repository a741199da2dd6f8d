package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/xfs"
)

// testStat tests Stat on a file, a directory, and a nonexistent path.
func testStat(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	t.Run("StatFile", func(t *testing.T) {
		testStatFile(ctx, t, fsys)
	})
	t.Run("StatDirectory", func(t *testing.T) {
		testStatDirectory(ctx, t, fsys)
	})
	t.Run("StatNonexistent", func(t *testing.T) {
		testStatNonexistent(ctx, t, fsys)
	})
}

func testStatFile(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const name = "test_stat_file.txt"
	data := []byte("stat me")
	if err := fs.WriteFile(ctx, fsys, name, data); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	info, err := fs.Stat(ctx, fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("StatFS not supported")
		}
		t.Fatalf("Stat(%q): %v", name, err)
	}

	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", name)
	}
	if got, want := info.Name(), name; got != want {
		t.Errorf("Stat(%q): Name() = %q, want %q", name, got, want)
	}
	if got, want := info.Size(), int64(len(data)); got != want {
		t.Errorf("Stat(%q): Size() = %d, want %d", name, got, want)
	}
}

func testStatDirectory(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const dir = "test_stat_dir"
	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	info, err := fs.Stat(ctx, fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("StatFS not supported")
		}
		t.Fatalf("Stat(%q): %v", dir, err)
	}

	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", dir)
	}
	if got, want := info.Name(), dir; got != want {
		t.Errorf("Stat(%q): Name() = %q, want %q", dir, got, want)
	}
}

func testStatNonexistent(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	_, err := fs.Stat(ctx, fsys, "test_stat_nonexistent")
	if err == nil {
		t.Errorf("Stat(nonexistent) = nil, want error")
	} else if errors.Is(err, fs.ErrUnsupported) {
		t.Skip("StatFS not supported")
	}
}
