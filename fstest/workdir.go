package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/xfs"
)

// chdirFS is the optional capability a backend may implement to persist its
// own current working directory, resolving relative paths against it.
type chdirFS interface {
	Getwd(ctx context.Context) (string, error)
	Chdir(ctx context.Context, dir string) error
}

// testWorkDir tests that a backend implementing chdirFS resolves relative
// paths against its persisted working directory.
func testWorkDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	cd, ok := fsys.(chdirFS)
	if !ok {
		t.Skip("chdirFS not supported")
	}

	const dir = "test_workdir"
	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	origWd, err := cd.Getwd(ctx)
	if err != nil {
		t.Fatalf("Getwd(): %v", err)
	}
	t.Cleanup(func() {
		if err := cd.Chdir(context.WithoutCancel(ctx), origWd); err != nil {
			t.Errorf("Cleanup: Chdir(%q): %v", origWd, err)
		}
	})

	if err := cd.Chdir(ctx, "/"+dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}

	wd, err := cd.Getwd(ctx)
	if err != nil {
		t.Fatalf("Getwd(): %v", err)
	}
	if wd != "/"+dir {
		t.Errorf("Getwd() = %q, want %q", wd, "/"+dir)
	}

	data := []byte("relative to cwd")
	if err := fs.WriteFile(ctx, fsys, "file.txt", data); err != nil {
		t.Fatalf("WriteFile(file.txt) after Chdir(%q): %v", dir, err)
	}

	got, err := fs.ReadFile(ctx, fsys, dir+"/file.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", dir+"/file.txt", err)
	}
	if string(got) != string(data) {
		t.Errorf("ReadFile(%q) = %q, want %q", dir+"/file.txt", got, data)
	}
}
