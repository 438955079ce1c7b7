// Package fsutil provides small file-system helpers: existence checks,
// directory creation and purging, recursive deletion with verification,
// and seeding a bundled fs.FS resource tree to disk.
//
// The helpers back the file capability the message resolver consumes for
// bootstrapping catalog override directories; they carry no state and are
// safe to call concurrently on distinct paths.
package fsutil
