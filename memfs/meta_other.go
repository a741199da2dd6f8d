//go:build !unix

package memfs

// Sys returns nil: outside unix, memfs has no [syscall.Stat_t]-shaped value
// to offer.
func (fi *fileInfo) Sys() any { return nil }
