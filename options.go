package msgkit

import (
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/msgkit/pkg/language"
)

// Option configures the resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report language fallbacks and
// missing keys. Logging is disabled when not set.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithBundled sets the internal bundled catalog source, typically an
// embed.FS shipped inside the binary. Used as the default/fallback and
// to seed the override directory.
func WithBundled(fsys fs.FS) Option {
	return func(r *Resolver) {
		r.bundled = fsys
	}
}

// WithOverrideDir sets the external override directory supplied by the
// deploying user. The path may embed BaseDirToken, which expands to the
// base directory before the path is opened. Catalogs found here take
// precedence over bundled ones.
func WithOverrideDir(path string) Option {
	return func(r *Resolver) {
		r.overrideDir = path
	}
}

// WithBaseDir sets the directory BaseDirToken expands to.
// Defaults to the working directory.
func WithBaseDir(dir string) Option {
	return func(r *Resolver) {
		r.baseDir = dir
	}
}

// WithPrefix sets the catalog filename prefix. Defaults to DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithDefaultLanguage sets the fallback language.
// Defaults to language.Default.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(r *Resolver) {
		if tag != "" {
			r.defaultLang = tag
		}
	}
}

// WithFiles injects a custom file-system capability for bootstrap.
// Defaults to the real file system.
func WithFiles(files Files) Option {
	return func(r *Resolver) {
		if files != nil {
			r.files = files
		}
	}
}
