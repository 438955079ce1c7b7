package msgkit

import (
	"io/fs"

	"github.com/dmitrymomot/msgkit/pkg/fsutil"
)

// Files is the file-system capability the resolver uses to bootstrap its
// catalog override directory. Inject a fake in tests or a restricted
// implementation in sandboxed deployments.
type Files interface {
	// Exists reports whether path exists on disk.
	Exists(path string) bool
	// EnsureDir creates a directory and any missing parents.
	EnsureDir(path string) error
	// CopyFS seeds a bundled resource tree into dst, leaving files that
	// already exist untouched.
	CopyFS(dst string, fsys fs.FS) error
}

// osFiles is the default Files implementation backed by pkg/fsutil.
type osFiles struct{}

func (osFiles) Exists(path string) bool             { return fsutil.Exists(path) }
func (osFiles) EnsureDir(path string) error         { return fsutil.EnsureDir(path) }
func (osFiles) CopyFS(dst string, fsys fs.FS) error { return fsutil.CopyFS(dst, fsys) }
