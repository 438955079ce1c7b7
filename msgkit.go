package msgkit

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dmitrymomot/msgkit/pkg/i18n"
	"github.com/dmitrymomot/msgkit/pkg/language"
	"github.com/dmitrymomot/msgkit/pkg/logger"
)

const (
	// DefaultPrefix is the catalog filename prefix: catalogs are named
	// <prefix>-<code>.properties.
	DefaultPrefix = "messages"

	// BaseDirToken is the placeholder an override directory path may embed
	// to reference the application's base directory.
	BaseDirToken = "${APPDIR}"
)

// Resolver loads message catalogs from a bundled source and an external
// override directory and resolves keys to display strings. The active
// bundle is swapped atomically on Reload, so concurrent lookups never
// observe a partially loaded catalog set.
type Resolver struct {
	bundle atomic.Pointer[i18n.Bundle]

	log         *slog.Logger
	files       Files
	bundled     fs.FS
	overrideDir string
	baseDir     string
	prefix      string
	defaultLang language.Tag
}

// New creates a Resolver and performs the initial load. When an override
// directory is configured it is created if missing and seeded from the
// bundled source, so deployers always find editable catalog files on disk.
// At least one of WithBundled and WithOverrideDir is required.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		log:         logger.NewNope(),
		files:       osFiles{},
		prefix:      DefaultPrefix,
		defaultLang: language.Default,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.bundled == nil && r.overrideDir == "" {
		return nil, fmt.Errorf("%w: no catalog source configured", i18n.ErrNotFound)
	}

	if err := r.expandOverrideDir(); err != nil {
		return nil, err
	}
	if err := r.bootstrap(); err != nil {
		return nil, err
	}

	bundle, err := r.build()
	if err != nil {
		return nil, err
	}
	r.bundle.Store(bundle)
	return r, nil
}

// expandOverrideDir resolves the BaseDirToken placeholder in the override
// path. The base directory defaults to the working directory.
func (r *Resolver) expandOverrideDir() error {
	if !strings.Contains(r.overrideDir, BaseDirToken) {
		return nil
	}
	base := r.baseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("msgkit: resolving base directory: %w", err)
		}
		base = wd
	}
	r.overrideDir = strings.ReplaceAll(r.overrideDir, BaseDirToken, base)
	return nil
}

// bootstrap prepares the override directory: create it when missing and
// seed it from the bundled source without clobbering existing files.
func (r *Resolver) bootstrap() error {
	if r.overrideDir == "" {
		return nil
	}
	if err := r.files.EnsureDir(r.overrideDir); err != nil {
		return fmt.Errorf("msgkit: preparing override dir: %w", err)
	}
	if r.bundled != nil {
		if err := r.files.CopyFS(r.overrideDir, r.bundled); err != nil {
			return fmt.Errorf("msgkit: seeding override dir: %w", err)
		}
	}
	return nil
}

// build assembles a fresh bundle from the configured sources. The override
// directory loads after the bundled source, so its entries win per key.
func (r *Resolver) build() (*i18n.Bundle, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(r.defaultLang),
		i18n.WithFallbackHandler(func(requested, used language.Tag) {
			r.log.Warn("no catalog for language, falling back",
				slog.String("requested", requested.String()),
				slog.String("used", used.String()))
		}),
		i18n.WithMissingKeyHandler(func(lang language.Tag, key string) {
			r.log.Debug("message key not found",
				slog.String("language", lang.String()),
				slog.String("key", key))
		}),
	}

	if r.bundled != nil {
		opts = append(opts, i18n.WithPropertiesFS(r.bundled, r.prefix))
	}
	if r.overrideDir != "" && r.files.Exists(r.overrideDir) {
		opts = append(opts, i18n.WithPropertiesDir(r.overrideDir, r.prefix))
	}

	return i18n.New(opts...)
}

// Reload rebuilds the bundle from the same sources and swaps it in
// atomically. A failed reload keeps the previous bundle active.
func (r *Resolver) Reload() error {
	bundle, err := r.build()
	if err != nil {
		return fmt.Errorf("msgkit: reload: %w", err)
	}
	r.bundle.Store(bundle)
	return nil
}

// Resolve parses a raw language tag against the supported set. An
// unsupported tag falls back to the resolver's default language; the
// event is logged at warning level, never swallowed.
func (r *Resolver) Resolve(tag string) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		if errors.Is(err, language.ErrUnsupported) {
			r.log.Warn("unsupported language tag, using default",
				slog.String("tag", tag),
				slog.String("default", r.defaultLang.String()))
		}
		return r.defaultLang
	}
	return parsed
}

// T resolves key for lang with {name} placeholder substitution. Returns
// the key itself when no catalog holds it.
func (r *Resolver) T(lang language.Tag, key string, vars ...i18n.Vars) string {
	return r.bundle.Load().T(lang, key, vars...)
}

// Tn resolves a pluralized key for count n.
func (r *Resolver) Tn(lang language.Tag, key string, n int, vars ...i18n.Vars) string {
	return r.bundle.Load().Tn(lang, key, n, vars...)
}

// Lookup resolves key for lang with an explicit absent signal and no
// placeholder substitution.
func (r *Resolver) Lookup(lang language.Tag, key string) (string, bool) {
	return r.bundle.Load().Lookup(lang, key)
}

// Translator returns a view bound to a fixed language.
func (r *Resolver) Translator(lang language.Tag) *i18n.Translator {
	return i18n.NewTranslator(r.bundle.Load(), lang)
}

// Languages returns the loaded languages, default first.
func (r *Resolver) Languages() []language.Tag {
	return r.bundle.Load().Languages()
}

// DefaultLanguage returns the resolver's fallback language.
func (r *Resolver) DefaultLanguage() language.Tag {
	return r.defaultLang
}

// OverrideDir returns the resolved external override directory, or ""
// when only the bundled source is configured.
func (r *Resolver) OverrideDir() string {
	return r.overrideDir
}
