//go:build unix

package memfs

import (
	"os"
	"syscall"
)

// Sys returns a [syscall.Stat_t] carrying the stat fields memfs has a real
// answer for: zero inode and device, a link count of one, and the calling
// process's uid/gid, matching the identity an entry backed by no real
// filesystem object can claim.
func (fi *fileInfo) Sys() any {
	st := &syscall.Stat_t{
		Nlink: 1,
		Uid:   uint32(os.Getuid()),
		Gid:   uint32(os.Getgid()),
		Size:  fi.meta.Size,
	}
	if fi.meta.IsDir {
		st.Mode = 0o040755
	} else {
		st.Mode = 0o100644
	}
	return st
}
