package vfd

import "io"

// RawIO is a thin adapter over a VirtualFD's buffer, implementing the
// read/write/seek/close contract that a higher-level buffered or text I/O
// wrapper expects from a raw file object. It is what an opener callback
// hands back when a caller's fd turns out to be one of ours, instead of a
// real kernel descriptor.
type RawIO struct {
	table *Table
	fd    int

	readable bool
	writable bool
	seekable bool
}

// NewRawIO wraps fd (already open in table) for raw I/O. readable,
// writable, and seekable mirror the access mode the descriptor was opened
// with; a caller that requests an operation the mode doesn't support gets
// io.ErrClosedPipe, matching the real os.File's behavior for a misused
// descriptor closely enough for higher layers that only check the error
// class.
func NewRawIO(table *Table, fd int, readable, writable, seekable bool) *RawIO {
	return &RawIO{table: table, fd: fd, readable: readable, writable: writable, seekable: seekable}
}

func (r *RawIO) Read(p []byte) (int, error) {
	if !r.readable {
		return 0, io.ErrClosedPipe
	}
	return r.table.Read(r.fd, p)
}

func (r *RawIO) Write(p []byte) (int, error) {
	if !r.writable {
		return 0, io.ErrClosedPipe
	}
	return r.table.Write(r.fd, p)
}

func (r *RawIO) Seek(offset int64, whence int) (int64, error) {
	if !r.seekable {
		return 0, io.ErrClosedPipe
	}
	return r.table.Seek(r.fd, offset, whence)
}

func (r *RawIO) Fd() int { return r.fd }

func (r *RawIO) Readable() bool { return r.readable }
func (r *RawIO) Writable() bool { return r.writable }
func (r *RawIO) Seekable() bool { return r.seekable }

// ModeIO returns the readable/writable/seekable bits implied by a mode
// string: "r" read-only, "w"/"a"/"x" write-only (buffered), "+" upgrades to
// read-write, and any mode is seekable unless it's pure-append.
func ModeIO(mode string) (readable, writable, seekable bool) {
	plus := false
	base := byte(0)
	for _, c := range mode {
		switch c {
		case '+':
			plus = true
		case 'r', 'w', 'a', 'x':
			base = byte(c)
		}
	}
	switch base {
	case 'r':
		readable = true
		writable = plus
		seekable = true
	case 'w', 'x':
		writable = true
		readable = plus
		seekable = true
	case 'a':
		writable = true
		readable = plus
		seekable = plus
	default:
		readable = true
	}
	return
}
