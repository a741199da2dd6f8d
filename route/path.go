package route

import (
	"context"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	xfs "lesiw.io/xfs"
)

// chdirFS is implemented by backends (memfs in particular) that track
// their own persisted working directory.
type chdirFS interface {
	Getwd(ctx context.Context) (string, error)
	Chdir(ctx context.Context, dir string) error
}

// Getwd returns the active filesystem's working directory, or the real
// process working directory when no filesystem is active. It never falls
// back to the real filesystem once active, even under a safe system path.
func Getwd(ctx context.Context) (string, error) {
	if fsys := active(ctx); fsys != nil {
		if cfs, ok := fsys.(chdirFS); ok {
			return cfs.Getwd(ctx)
		}
		return "/", nil
	}
	return os.Getwd()
}

// Chdir changes the active filesystem's working directory, or the real
// process's when no filesystem is active.
func Chdir(ctx context.Context, dir string) error {
	if fsys := active(ctx); fsys != nil {
		if cfs, ok := fsys.(chdirFS); ok {
			return notImplemented(fsys, "chdir", cfs.Chdir(ctx, dir))
		}
		return xfs.NewNotImplementedError("", "chdir")
	}
	return os.Chdir(dir)
}

// UserHomeDir returns "/" while a filesystem is active, concealing the real
// home directory, and the real home directory (via go-homedir, which
// additionally handles platforms without passwd-entry lookups) otherwise.
func UserHomeDir(ctx context.Context) (string, error) {
	if active(ctx) != nil {
		return "/", nil
	}
	return homedir.Dir()
}

// ExpandHome maps a leading "~" or "~/..." to "/" or "/..." while a
// filesystem is active, concealing the real home directory; otherwise it
// expands against the real home directory.
func ExpandHome(ctx context.Context, path string) (string, error) {
	if active(ctx) != nil {
		switch {
		case path == "~":
			return "/", nil
		case strings.HasPrefix(path, "~/"):
			return "/" + path[2:], nil
		default:
			return path, nil
		}
	}
	return homedir.Expand(path)
}

// ExpandEnv rewrites $HOME, ${HOME}, and their path-prefixed forms to "/"
// (concealing the real home directory) while a filesystem is active;
// otherwise it delegates to os.ExpandEnv.
func ExpandEnv(ctx context.Context, s string) string {
	if active(ctx) == nil {
		return os.ExpandEnv(s)
	}
	if s == "$HOME" || s == "${HOME}" {
		return "/"
	}
	return os.Expand(s, func(name string) string {
		if name == "HOME" {
			return ""
		}
		return os.Getenv(name)
	})
}

// LookupHome returns the HOME environment variable as the router sees it:
// "/" while a filesystem is active, the real value otherwise.
func LookupHome(ctx context.Context) string {
	if active(ctx) != nil {
		return "/"
	}
	home, _ := homedir.Dir()
	return home
}

// TempDir returns the directory used by Temp for temporary files: the
// active filesystem has no special system temp directory concept, so this
// always reflects the real operating system's; only the virtual FD table's
// own temp-file support is backend-routed.
func TempDir() string {
	return os.TempDir()
}
