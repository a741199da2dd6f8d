package fs

import "context"

// A WriteManyFS is a file system that can apply several whole-file writes
// as a single unit.
//
// Native implementations (memfs in particular) check any capacity
// constraints against the combined size of all writes before applying any
// of them, so a write-many call either fully succeeds or leaves every named
// path exactly as it was.
type WriteManyFS interface {
	FS

	// WriteMany writes every path in files to its corresponding content.
	// If the combined write would exceed a backend limit, WriteMany applies
	// none of the writes and returns the limit error.
	WriteMany(ctx context.Context, files map[string][]byte) error
}

// WriteMany writes every path in files to its corresponding content.
// Analogous to: a transactional batch PutObject, tar extraction.
//
// Requires: [WriteManyFS] || [FS] (with [CreateFS])
//
// Without [WriteManyFS], WriteMany applies writes one at a time in
// unspecified order; a failure partway through leaves earlier writes in
// place. Use [WriteManyFS]-backed filesystems when all-or-nothing semantics
// matter.
func WriteMany(ctx context.Context, fsys FS, files map[string][]byte) error {
	if wmfs, ok := fsys.(WriteManyFS); ok {
		return wmfs.WriteMany(ctx, files)
	}
	for name, data := range files {
		if err := WriteFile(ctx, fsys, name, data); err != nil {
			return err
		}
	}
	return nil
}

// A RemoveManyFS is a file system that can remove several paths as a
// single unit.
type RemoveManyFS interface {
	FS

	// RemoveMany removes every named path. Paths that don't exist are
	// ignored, matching os.Remove semantics applied in bulk.
	RemoveMany(ctx context.Context, names []string) error
}

// RemoveMany removes every named path.
// Analogous to: a transactional batch DeleteObjects.
//
// Requires: [RemoveManyFS] || [RemoveFS]
func RemoveMany(ctx context.Context, fsys FS, names []string) error {
	if rmfs, ok := fsys.(RemoveManyFS); ok {
		return rmfs.RemoveMany(ctx, names)
	}
	rfs, ok := fsys.(RemoveFS)
	if !ok {
		return &PathError{Op: "removemany", Path: "", Err: ErrUnsupported}
	}
	for _, name := range names {
		if err := rfs.Remove(ctx, name); err != nil && !errorIsNotExist(err) {
			return err
		}
	}
	return nil
}

func errorIsNotExist(err error) bool {
	pe, ok := err.(*PathError)
	if !ok {
		return false
	}
	return pe.Err == ErrNotExist
}
