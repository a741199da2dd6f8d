package fstest

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"lesiw.io/xfs"
)

// testOpenEmptyDir tests opening an empty directory as a tar stream.
func testOpenEmptyDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const dir = "test_tar_empty"
	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	r, err := fs.Open(ctx, fsys, dir+"/")
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("directory Open not supported")
		}
		t.Fatalf("Open(%q): %v", dir+"/", err)
	}
	defer r.Close()

	tr := tar.NewReader(r)
	if _, err := tr.Next(); err != io.EOF {
		t.Errorf("Next() on empty dir tar = %v, want io.EOF", err)
	}
}

// testOpenDir tests opening a populated directory as a tar stream.
func testOpenDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const dir = "test_tar_dir"
	if err := fs.MkdirAll(ctx, fsys, dir+"/nested"); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("MkdirAll(%q): %v", dir+"/nested", err)
	}
	cleanup(ctx, t, fsys, dir)

	files := map[string][]byte{
		dir + "/root.txt":        []byte("root"),
		dir + "/nested/leaf.txt": []byte("leaf"),
	}
	for name, data := range files {
		if err := fs.WriteFile(ctx, fsys, name, data); err != nil {
			if errors.Is(err, fs.ErrUnsupported) {
				t.Skip("write operations not supported")
			}
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}

	r, err := fs.Open(ctx, fsys, dir+"/")
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("directory Open not supported")
		}
		t.Fatalf("Open(%q): %v", dir+"/", err)
	}
	defer r.Close()

	got := make(map[string][]byte)
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("tar Next(): %v", err)
		}
		if hdr.Typeflag == tar.TypeDir {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("reading tar entry %q: %v", hdr.Name, err)
		}
		got[hdr.Name] = data
	}

	for name, want := range files {
		rel := name[len(dir)+1:]
		data, ok := got[rel]
		if !ok {
			t.Errorf("tar archive missing entry %q", rel)
			continue
		}
		if !bytes.Equal(data, want) {
			t.Errorf("tar entry %q = %q, want %q", rel, data, want)
		}
	}
}

// testCreateDir tests writing a tar stream to a directory via Create.
func testCreateDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	const src = "test_tar_src"
	const dst = "test_tar_dst"
	if err := fs.MkdirAll(ctx, fsys, src); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("MkdirAll(%q): %v", src, err)
	}
	cleanup(ctx, t, fsys, src)

	data := []byte("copied via tar")
	if err := fs.WriteFile(ctx, fsys, src+"/file.txt", data); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", src+"/file.txt", err)
	}

	err := func() error {
		tr, err := fs.Open(ctx, fsys, src+"/")
		if err != nil {
			return err
		}
		defer tr.Close()
		tw, err := fs.Create(ctx, fsys, dst+"/")
		if err != nil {
			return err
		}
		defer tw.Close()
		_, err = io.Copy(tw, tr)
		return err
	}()
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("directory Create not supported")
		}
		t.Fatalf("tar copy into %q: %v", dst, err)
	}
	cleanup(ctx, t, fsys, dst)

	got, err := fs.ReadFile(ctx, fsys, dst+"/file.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", dst+"/file.txt", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile(%q) = %q, want %q", dst+"/file.txt", got, data)
	}
}
