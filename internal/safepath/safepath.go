// Package safepath computes the set of real filesystem paths the router
// lets pass through to the operating system even while a virtual filesystem
// is active: the Go toolchain's own installation and module cache.
package safepath

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var (
	once  sync.Once
	roots []string
)

// compute lazily computes GOROOT, GOPATH, and the GOPATH module cache.
// Computed once per process and cached, so repeated calls are idempotent
// under concurrent use.
func compute() []string {
	once.Do(func() {
		var r []string
		if goroot := runtime.GOROOT(); goroot != "" {
			r = append(r, clean(goroot))
		}
		gopath := os.Getenv("GOPATH")
		if gopath == "" {
			if home, err := os.UserHomeDir(); err == nil {
				gopath = filepath.Join(home, "go")
			}
		}
		for _, p := range filepath.SplitList(gopath) {
			if p == "" {
				continue
			}
			r = append(r, clean(p))
			r = append(r, clean(filepath.Join(p, "pkg", "mod")))
		}
		roots = r
	})
	return roots
}

func clean(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return filepath.Clean(abs)
}

// IsSafe reports whether path falls under GOROOT, GOPATH, or the GOPATH
// module cache. Read-shaped routing wrappers fall back to the real
// operating system for paths under these roots even while a virtual
// filesystem is active, since the Go runtime and toolchain read their own
// installation and cached modules directly and must keep working.
func IsSafe(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(abs)
	}
	for _, root := range compute() {
		if abs == root || strings.HasPrefix(abs, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
