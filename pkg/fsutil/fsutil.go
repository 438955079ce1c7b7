package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether path exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates a directory (and any missing parents) with 0755
// permissions. An existing directory is not an error; an existing
// non-directory reports ErrNotDirectory.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("fsutil: mkdir %s: %w", path, err)
	}
	return nil
}

// PurgeDir removes the contents of a directory but keeps the directory
// itself. A nonexistent directory is not an error.
func PurgeDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("fsutil: reading %s: %w", path, err)
	}

	for _, entry := range entries {
		target := filepath.Join(path, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrNotRemoved, target, err)
		}
	}
	return nil
}

// RemoveTree deletes path and everything below it. It verifies the target
// is actually gone afterwards and reports ErrNotRemoved when it survives.
// A nonexistent path is not an error.
func RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotRemoved, path, err)
	}
	if Exists(path) {
		return fmt.Errorf("%w: %s", ErrNotRemoved, path)
	}
	return nil
}

// CopyFile copies a regular file, creating dst's parent directories.
// The destination is truncated if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fsutil: opening %s: %w", src, err)
	}
	defer in.Close()

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("fsutil: creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("fsutil: copying %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("fsutil: closing %s: %w", dst, err)
	}
	return nil
}

// CopyFS copies the file tree rooted at fsys into the dst directory,
// creating directories as needed. Files that already exist on disk are
// left untouched, so deployed overrides survive re-seeding from a
// bundled default.
func CopyFS(dst string, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return EnsureDir(target)
		}
		if Exists(target) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fsutil: reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("fsutil: writing %s: %w", target, err)
		}
		return nil
	})
}
