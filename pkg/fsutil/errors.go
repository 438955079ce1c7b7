package fsutil

import "errors"

// Sentinel errors for file-system operations.
var (
	// ErrNotRemoved reports a delete target that still exists afterwards.
	ErrNotRemoved = errors.New("fsutil: target not removed")
	// ErrNotDirectory reports a path that exists but is not a directory.
	ErrNotDirectory = errors.New("fsutil: not a directory")
)
